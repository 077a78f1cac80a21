package nodetool

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/pkg/errors"
)

// ExitCommandNotFound is the return code reported when the shell could not run the command
const ExitCommandNotFound = 127

// Runner executes a shell command and returns its return code and output
type Runner interface {
	Run(ctx context.Context, command string) (rc int, stdout string, stderr string)
}

// ShellRunner runs commands through a local shell
type ShellRunner struct {
	// Shell defaults to /bin/sh
	Shell string
}

// Run executes command with `<shell> -c` and waits for it to exit
func (r ShellRunner) Run(ctx context.Context, command string) (int, string, string) {
	shell := r.Shell
	if shell == "" {
		shell = "/bin/sh"
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, shell, "-c", command)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return 0, stdout.String(), stderr.String()
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), stdout.String(), stderr.String()
	}

	// the shell itself never started; err names the shell, not the command
	stderr.WriteString(errors.Wrap(err, "cmd.Run").Error())
	return ExitCommandNotFound, stdout.String(), stderr.String()
}
