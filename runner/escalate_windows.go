//go:build windows

package runner

// No Windows escalation mechanism preserves both the caller's environment
// and the console streams, so the probe always reports no helper and every
// invocation degrades to direct execution.
func FindHelper() (Helper, error) {
	return Helper{}, ErrNoHelper
}
