package nodetool

import (
	"fmt"
	"strings"
)

const (
	// Binary is the name of the nodetool executable
	Binary = "nodetool"
	// DefaultPort is the JMX port nodetool connects to
	DefaultPort = 7199

	redacted = "********"
)

// ConnectionConfig holds what nodetool needs to reach a node
type ConnectionConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	PasswordFile string
	NodetoolPath string
}

// CommandBuilder assembles nodetool invocations for a single connection
type CommandBuilder struct {
	config ConnectionConfig
}

// NewCommandBuilder returns a builder with defaults applied to config:
// the local FQDN for an empty host and 7199 for an unset port.
func NewCommandBuilder(config ConnectionConfig) *CommandBuilder {
	if config.Host == "" {
		config.Host = LocalFQDN()
	}
	if config.Port == 0 {
		config.Port = DefaultPort
	}
	config.NodetoolPath = normalizePath(config.NodetoolPath)
	return &CommandBuilder{config: config}
}

// Config returns the connection config after defaults were applied
func (b *CommandBuilder) Config() ConnectionConfig {
	return b.config
}

// Build returns the full shell command running sub against the configured node
func (b *CommandBuilder) Build(sub string) string {
	return b.build(sub, false)
}

// Redacted is Build with credentials masked, safe to log
func (b *CommandBuilder) Redacted(sub string) string {
	return b.build(sub, true)
}

func (b *CommandBuilder) build(sub string, redact bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s%s --host %s --port %d", b.config.NodetoolPath, Binary, b.config.Host, b.config.Port)

	if b.config.Username != "" {
		fmt.Fprintf(&sb, " --username %s", b.config.Username)
		switch {
		case b.config.PasswordFile != "":
			file := b.config.PasswordFile
			if redact {
				file = redacted
			}
			fmt.Fprintf(&sb, " --password-file %s", file)
		case b.config.Password != "":
			password := b.config.Password
			if redact {
				password = redacted
			}
			fmt.Fprintf(&sb, " --password %s", quote(password))
		}
	}

	sb.WriteString(" ")
	sb.WriteString(sub)
	return sb.String()
}

func normalizePath(path string) string {
	if path == "" || strings.HasSuffix(path, "/") {
		return path
	}
	return path + "/"
}

// quote wraps s in single quotes, closing and reopening around any embedded quote
func quote(s string) string {
	return "'" + strings.Replace(s, "'", `'\''`, -1) + "'"
}
