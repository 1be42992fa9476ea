//go:build !windows

package runner

import (
	"github.com/maybe-sudo/maybesudo/internal"
)

// Helpers probed in order. Only helpers able to preserve the caller's
// environment qualify: the wrapped command must see the same variables with
// or without escalation, which rules out doas and pkexec.
var queries = []Helper{
	{Name: "sudo", preserveEnv: "-E"},
}

// FindHelper probes the search path for a usable escalation helper. Pure
// lookup: nothing is spawned. Returns ErrNoHelper when none of the known
// helpers is present and executable.
func FindHelper() (Helper, error) {
	for _, h := range queries {
		path, err := internal.LookupExecutable(h.Name)
		if err != nil {
			continue
		}
		h.Path = path
		return h, nil
	}
	return Helper{}, ErrNoHelper
}
