//go:build windows

package runner

import (
	"os"
	"os/exec"
	"os/signal"
)

// Exec emulates process-image replacement: the command runs as a child with
// inherited streams and working directory, console interrupts are left to
// the child, and this process exits with the child's exact exit code. Does
// not return on success.
func Exec(argv []string) error {
	if len(argv) == 0 {
		return &exec.Error{Name: "", Err: exec.ErrNotFound}
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// the child owns Ctrl+C for the rest of this process's lifetime
	signal.Ignore(os.Interrupt)

	if err := cmd.Start(); err != nil {
		return err
	}
	err := cmd.Wait()
	if exit, ok := err.(*exec.ExitError); ok {
		os.Exit(exit.ExitCode())
	}
	if err != nil {
		return err
	}
	os.Exit(0)
	return nil
}
