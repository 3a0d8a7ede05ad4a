package autosys

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result holds the captured output of one external command invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes an external command synchronously and captures its output.
// The production implementation shells out; tests substitute canned results.
type Runner interface {
	Run(ctx context.Context, name string, args []string) (Result, error)
}

// CommandError reports a non-zero exit from an external scheduler command.
// It carries the exit code and the captured stderr so callers can decide
// whether the failure is fatal or merely degrades the report.
type CommandError struct {
	Name     string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Name, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// AsCommandError unwraps err as a *CommandError if possible.
func AsCommandError(err error) (*CommandError, bool) {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// ExecRunner runs commands via os/exec. The zero value is usable.
type ExecRunner struct{}

// Run executes name with args, blocking until the process exits.
// A non-zero exit returns a *CommandError alongside the captured output;
// a start failure (command not found, permission) returns the exec error.
func (ExecRunner) Run(ctx context.Context, name string, args []string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, &CommandError{
				Name:     name,
				Args:     args,
				ExitCode: res.ExitCode,
				Stderr:   res.Stderr,
			}
		}
		return res, fmt.Errorf("run %s: %w", name, err)
	}
	return res, nil
}
