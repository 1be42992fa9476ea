package maybesudo

const (
	// EnvDisable is checked once at startup. The literal value "1" forces
	// direct execution without escalation; any other value (including empty)
	// keeps the normal probe-based decision.
	EnvDisable = "MAYBESUDO_DISABLE"

	disabledValue = "1"
)
