package maybesudo

import (
	"os"

	"github.com/maybe-sudo/maybesudo/runner"
)

// Decision of how to start the command. Computed once per invocation and
// never reconsidered.
type Decision int

const (
	// Direct runs the command exactly as given.
	Direct Decision = iota
	// Escalated prefixes the command with the escalation helper.
	Escalated
	// DirectFallback runs the command exactly as given because no
	// escalation helper is available on this system.
	DirectFallback
)

func (d Decision) String() string {
	switch d {
	case Direct:
		return "direct"
	case Escalated:
		return "escalated"
	case DirectFallback:
		return "direct-fallback"
	default:
		return "unknown"
	}
}

// Config is the process-wide state. Should be read once at startup (see
// FromEnv) and passed down: the decision depends on nothing else.
type Config struct {
	// Skip the helper probe and run the command without escalation
	DisableEscalation bool
}

// FromEnv reads configuration from the environment. Only the exact value
// "1" disables escalation; malformed values are treated as unset.
func FromEnv() Config {
	return Config{
		DisableEscalation: os.Getenv(EnvDisable) == disabledValue,
	}
}

// Decide picks the execution mode. Pure function: same inputs always give
// the same decision.
func Decide(cfg Config, helperAvailable bool) Decision {
	if cfg.DisableEscalation {
		return Direct
	}
	if helperAvailable {
		return Escalated
	}
	return DirectFallback
}

// Launch transfers control to the command, escalated or not according to
// Decide. It does not return on success: the process image is replaced (or,
// on platforms without exec, the process exits with the command's own exit
// code after it finishes). A returned error always means the handoff itself
// could not be performed.
func Launch(cfg Config, command []string) error {
	var helper runner.Helper
	var available bool
	if !cfg.DisableEscalation {
		h, err := runner.FindHelper()
		available = err == nil
		helper = h
	}
	if Decide(cfg, available) == Escalated {
		return runner.Exec(helper.Wrap(command))
	}
	return runner.Exec(command)
}
