package runner

import (
	"errors"
	"io/fs"
	"os/exec"
)

// Conventional shell exit codes for a failed exec.
const (
	ExitNotExecutable = 126
	ExitNotFound      = 127
)

// ExitCode maps a failed handoff to the conventional shell exit code:
// 127 when the executable cannot be found, 126 when it exists but cannot
// be run.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return ExitNotFound
	default:
		return ExitNotExecutable
	}
}
