// Package module reads the parameters an automation framework hands to a binary module.
//
// The framework writes the task arguments to a file and passes its path as the only
// argument. The file is json, yaml is accepted as well.
package module

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/threecommaio/cassverify/pkg/nodetool"
	yaml "gopkg.in/yaml.v2"
)

const checkModeKey = "_ansible_check_mode"

// Params are the decoded module arguments
type Params struct {
	Connection nodetool.ConnectionConfig
	Verify     nodetool.VerifyRequest
	CheckMode  bool
}

// Load reads and decodes the args file at filename
func Load(fs afero.Fs, filename string) (*Params, error) {
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read module arguments")
	}
	return Parse(data)
}

// Parse decodes module arguments.
// Errors name the offending key but never include its value.
func Parse(data []byte) (*Params, error) {
	m := make(map[string]interface{})
	if err := json.Unmarshal(data, &m); err != nil {
		m = make(map[string]interface{})
		// decoder errors may quote the input, keep credentials out of them
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, errors.New("module arguments are neither json nor yaml")
		}
	}

	p := &Params{}
	for key, value := range m {
		if value == nil {
			continue
		}
		if err := p.set(key, value); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Params) set(key string, value interface{}) error {
	var err error
	switch key {
	case "host":
		p.Connection.Host, err = toString(key, value)
	case "port":
		p.Connection.Port, err = toInt(key, value)
	case "username":
		p.Connection.Username, err = toString(key, value)
	case "password":
		p.Connection.Password, err = toString(key, value)
	case "password_file":
		p.Connection.PasswordFile, err = toString(key, value)
	case "nodetool_path":
		p.Connection.NodetoolPath, err = toString(key, value)
	case "keyspace":
		p.Verify.Keyspace, err = toString(key, value)
	case "table":
		p.Verify.Tables, err = toTables(value)
	case "extended", "e":
		p.Verify.Extended, err = toBool(key, value)
	case checkModeKey:
		p.CheckMode, err = toBool(key, value)
	default:
		if !strings.HasPrefix(key, "_ansible_") {
			return errors.Errorf("unsupported parameter for module: %s", key)
		}
	}
	return err
}

func typeError(key, want string) error {
	return errors.Errorf("argument %s is of incorrect type, expected %s", key, want)
}

func toString(key string, value interface{}) (string, error) {
	switch value.(type) {
	case []interface{}, map[interface{}]interface{}, map[string]interface{}:
		return "", typeError(key, "str")
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return "", typeError(key, "str")
	}
	return s, nil
}

func toInt(key string, value interface{}) (int, error) {
	if s, ok := value.(string); ok {
		value = strings.TrimSpace(s)
	}
	i, err := cast.ToIntE(value)
	if err != nil {
		return 0, typeError(key, "int")
	}
	return i, nil
}

func toBool(key string, value interface{}) (bool, error) {
	if s, ok := value.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "yes", "on", "y":
			return true, nil
		case "no", "off", "n":
			return false, nil
		}
	}
	b, err := cast.ToBoolE(value)
	if err != nil {
		return false, typeError(key, "bool")
	}
	return b, nil
}

// toTables accepts a single table name or a list of them, keeping the given order
func toTables(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil, nil
		}
		return []string{v}, nil
	case []interface{}:
		tables := make([]string, 0, len(v))
		for idx, t := range v {
			s, err := toString(fmt.Sprintf("table[%d]", idx), t)
			if err != nil {
				return nil, err
			}
			tables = append(tables, s)
		}
		return tables, nil
	}
	return nil, typeError("table", "str or list")
}
