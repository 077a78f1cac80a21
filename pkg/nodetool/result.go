package nodetool

import (
	"encoding/json"
	"io"
	"strings"
)

// CommandResult is the normalized outcome reported back to the caller
type CommandResult struct {
	Changed    bool   `json:"changed"`
	Msg        string `json:"msg"`
	Stdout     string `json:"stdout,omitempty"`
	Stderr     string `json:"stderr,omitempty"`
	ReturnCode *int   `json:"rc,omitempty"`
	Skipped    bool   `json:"skipped,omitempty"`
	Failed     bool   `json:"failed,omitempty"`
}

// NewResult maps a finished nodetool verify run to a CommandResult.
// The return code is only kept when the run failed.
func NewResult(rc int, stdout, stderr string) CommandResult {
	result := CommandResult{
		Stdout: strings.TrimSpace(stdout),
		Stderr: strings.TrimSpace(stderr),
	}
	if rc == 0 {
		result.Changed = true
		result.Msg = "nodetool verify executed successfully"
		return result
	}
	result.ReturnCode = &rc
	result.Msg = "nodetool verify did not execute successfully"
	return result
}

// SkippedResult is reported for check mode runs, nothing is executed
func SkippedResult() CommandResult {
	return CommandResult{Skipped: true, Msg: "remote module does not support check mode"}
}

// FailedResult is reported when the invocation itself could not be set up
func FailedResult(msg string) CommandResult {
	return CommandResult{Failed: true, Msg: msg}
}

// RC returns the return code, zero for successful runs
func (r CommandResult) RC() int {
	if r.ReturnCode == nil {
		return 0
	}
	return *r.ReturnCode
}

// Report writes the result as a single json object
func Report(w io.Writer, result CommandResult) error {
	return json.NewEncoder(w).Encode(result)
}
