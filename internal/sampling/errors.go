package sampling

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
)

// Exit codes used by POSIX shells when a command cannot be run.
const (
	ExitCodeNotExecutable = 126
	ExitCodeNotFound      = 127
)

// LaunchError is returned when the sampling program could not be started.
type LaunchError struct {
	Program string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("sampling: launch %s: %v", e.Program, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Code returns the shell-compatible exit code for the launch failure:
// 127 when the program does not exist, 126 for any other start error.
func (e *LaunchError) Code() int {
	if errors.Is(e.Err, exec.ErrNotFound) || errors.Is(e.Err, fs.ErrNotExist) {
		return ExitCodeNotFound
	}
	return ExitCodeNotExecutable
}

// ExitError is returned when the sampling program ran and exited non-zero.
type ExitError struct {
	Program string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("sampling: %s exited with status %d", e.Program, e.Code)
}
