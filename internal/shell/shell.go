// Package shell is the subprocess port used by the repository gateway.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/ruminaider/sync-dot-files/internal/logging"
)

// Result holds the captured output of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command exited with status 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes a command to completion in dir. A non-zero exit status is
// not an error; err is only set when the command could not be run at all.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (Result, error)
}

// Exec runs commands as child processes.
type Exec struct{}

func (Exec) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	logger := logging.Get("shell")
	logger.Debug().Str("dir", dir).Str("command", name).Strs("args", args).Msg("Executing command")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		res.ExitCode = exitErr.ExitCode()
		logger.Trace().Int("exit", res.ExitCode).Str("stderr", res.Stderr).Msg("Command failed")
		return res, nil
	}
	return res, err
}
