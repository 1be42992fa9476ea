//go:build !windows

package runner

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"

	"github.com/maybe-sudo/maybesudo/internal"
)

// Exec replaces the current process image with argv. Streams, working
// directory, process group and environment are all inherited by the
// replacement; no wrapper code runs after the handoff and the command's
// exit status becomes this process's exit status. Does not return on
// success.
func Exec(argv []string) error {
	if len(argv) == 0 {
		return &exec.Error{Name: "", Err: exec.ErrNotFound}
	}
	path, err := internal.LookupExecutable(argv[0])
	if err != nil {
		return err
	}
	if err := unix.Exec(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}
