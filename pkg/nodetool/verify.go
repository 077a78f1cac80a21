package nodetool

import (
	"context"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// VerifyRequest narrows what nodetool verify checks
type VerifyRequest struct {
	Keyspace string
	Tables   []string
	// Extended checks each cell, beyond the sstable checksums
	Extended bool
}

// VerifyCommand is the verify sub-command bound to a connection
type VerifyCommand struct {
	builder *CommandBuilder
	request VerifyRequest
}

// NewVerifyCommand composes a verify request with a command builder
func NewVerifyCommand(builder *CommandBuilder, request VerifyRequest) *VerifyCommand {
	return &VerifyCommand{builder: builder, request: request}
}

// Fragment returns the verify sub-command with its own flags
func (v *VerifyCommand) Fragment() string {
	cmd := "verify"
	if v.request.Extended {
		cmd += " -e"
	}
	if v.request.Keyspace != "" {
		cmd += " " + v.request.Keyspace
	}
	if len(v.request.Tables) > 0 {
		cmd += " " + strings.Join(v.request.Tables, " ")
	}
	return cmd
}

// Command returns the full shell command
func (v *VerifyCommand) Command() string {
	return v.builder.Build(v.Fragment())
}

// Redacted returns the full shell command with credentials masked
func (v *VerifyCommand) Redacted() string {
	return v.builder.Redacted(v.Fragment())
}

// Run executes nodetool verify once and reports the outcome, failures only show up in the result
func (v *VerifyCommand) Run(ctx context.Context, runner Runner) CommandResult {
	log.Debugf("running [%s]", v.Redacted())

	start := time.Now()
	rc, stdout, stderr := runner.Run(ctx, v.Command())

	log.WithFields(log.Fields{
		"rc":       rc,
		"duration": time.Since(start).Round(time.Millisecond),
		"stdout":   humanize.Bytes(uint64(len(stdout))),
		"stderr":   humanize.Bytes(uint64(len(stderr))),
	}).Debug("nodetool exited")

	if rc == ExitCommandNotFound && v.builder.Config().NodetoolPath == "" {
		if path, err := Locate(afero.NewOsFs()); err == nil {
			log.Warnf("nodetool is not on the PATH but was found at %s, set nodetool_path", path)
		}
	}

	return NewResult(rc, stdout, stderr)
}
