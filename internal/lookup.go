package internal

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/phayes/permbits"
)

// LookupExecutable resolves name against the search path. Unlike
// exec.LookPath, the permission bits are the whole executability decision:
// a candidate that exists but carries no execute bit at all resolves to
// fs.ErrPermission, so callers can tell "present but not invocable" from
// "absent". No process is spawned.
func LookupExecutable(name string) (string, error) {
	if name == "" {
		return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	if strings.ContainsRune(name, os.PathSeparator) {
		if err := checkCandidate(name); err != nil {
			return "", &exec.Error{Name: name, Err: err}
		}
		return name, nil
	}
	var denied error
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			// empty search path entry means the current directory
			dir = "."
		}
		path := filepath.Join(dir, name)
		err := checkCandidate(path)
		if err == nil {
			return path, nil
		}
		if errors.Is(err, fs.ErrPermission) && denied == nil {
			denied = &exec.Error{Name: name, Err: err}
		}
	}
	if denied != nil {
		return "", denied
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// checkCandidate decides whether path is invocable: a regular file whose
// permission bits grant execute to someone. A candidate that exists but is
// not invocable reports fs.ErrPermission.
func checkCandidate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	bits := permbits.FileMode(info.Mode())
	if info.Mode().IsRegular() && (bits.UserExecute() || bits.GroupExecute() || bits.OtherExecute()) {
		return nil
	}
	return fs.ErrPermission
}
