package runner

import "errors"

// ErrNoHelper means no usable escalation helper is present in the search
// path. Not a failure: the caller degrades to direct execution.
var ErrNoHelper = errors.New("no escalation helper found")

// Helper is an escalation mechanism resolved in the search path.
type Helper struct {
	Name string // helper binary name, e.g. "sudo"
	Path string // resolved absolute path

	preserveEnv string // flag asking the helper to keep the caller's environment
}

// Wrap prepends the helper invocation to args. args are kept verbatim and
// in order.
func (h Helper) Wrap(args []string) []string {
	ans := make([]string, 0, len(args)+2)
	ans = append(ans, h.Path)
	if h.preserveEnv != "" {
		ans = append(ans, h.preserveEnv)
	}
	ans = append(ans, args...)
	return ans
}
