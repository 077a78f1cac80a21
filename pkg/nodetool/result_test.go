package nodetool

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reported(t *testing.T, result CommandResult) map[string]interface{} {
	var buf bytes.Buffer
	require.NoError(t, Report(&buf, result))

	m := make(map[string]interface{})
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestReport(t *testing.T) {
	tests := []struct {
		name   string
		result CommandResult
		want   map[string]interface{}
	}{
		{"success", NewResult(0, "OK", ""), map[string]interface{}{
			"changed": true,
			"msg":     "nodetool verify executed successfully",
			"stdout":  "OK",
		}},
		{"failure", NewResult(1, "", "corrupt"), map[string]interface{}{
			"changed": false,
			"rc":      float64(1),
			"msg":     "nodetool verify did not execute successfully",
			"stderr":  "corrupt",
		}},
		{"whitespace only output", NewResult(0, " \n\t", "\n"), map[string]interface{}{
			"changed": true,
			"msg":     "nodetool verify executed successfully",
		}},
		{"skipped", SkippedResult(), map[string]interface{}{
			"changed": false,
			"skipped": true,
			"msg":     "remote module does not support check mode",
		}},
		{"failed", FailedResult("argument port is of incorrect type, expected int"), map[string]interface{}{
			"changed": false,
			"failed":  true,
			"msg":     "argument port is of incorrect type, expected int",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reported(t, tt.result))
		})
	}
}

func TestNewResult(t *testing.T) {
	result := NewResult(3, "\n  checked 12 sstables  \n", "  Verify of ks.t failed  ")

	assert.False(t, result.Changed)
	assert.Equal(t, 3, result.RC())
	assert.Equal(t, "checked 12 sstables", result.Stdout)
	assert.Equal(t, "Verify of ks.t failed", result.Stderr)
}
