package maybesudo

import (
	"testing"

	"github.com/maybe-sudo/maybesudo/runner"
)

func TestFromEnv(t *testing.T) {
	cases := []struct {
		value    string
		disabled bool
	}{
		{"1", true},
		{"", false},
		{"0", false},
		{"true", false},
		{"yes", false},
		{" 1", false},
	}
	for _, c := range cases {
		t.Setenv(EnvDisable, c.value)
		if cfg := FromEnv(); cfg.DisableEscalation != c.disabled {
			t.Errorf("%s=%q: DisableEscalation = %v, want %v", EnvDisable, c.value, cfg.DisableEscalation, c.disabled)
		}
	}
}

func TestDecide(t *testing.T) {
	cases := []struct {
		disabled  bool
		available bool
		want      Decision
	}{
		{true, true, Direct},
		{true, false, Direct},
		{false, true, Escalated},
		{false, false, DirectFallback},
	}
	for _, c := range cases {
		got := Decide(Config{DisableEscalation: c.disabled}, c.available)
		if got != c.want {
			t.Errorf("Decide(disabled=%v, available=%v) = %v, want %v", c.disabled, c.available, got, c.want)
		}
	}
}

func TestDecideIdempotent(t *testing.T) {
	cfg := Config{}
	first := Decide(cfg, true)
	for i := 0; i < 10; i++ {
		if got := Decide(cfg, true); got != first {
			t.Fatalf("decision changed between calls: %v -> %v", first, got)
		}
	}
}

// Handoff to a non-existent binary must fail with a "not found" code and no
// escalation attempt.
func TestLaunchMissingBinary(t *testing.T) {
	err := Launch(Config{DisableEscalation: true}, []string{"/no/such/binary"})
	if err == nil {
		t.Fatal("expected error")
	}
	if code := runner.ExitCode(err); code != runner.ExitNotFound {
		t.Errorf("exit code = %d, want %d", code, runner.ExitNotFound)
	}
}
