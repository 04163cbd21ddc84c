package flightplan

import "fmt"

// ValidationError reports user input the engine refuses: a milestone outside
// the projection horizon, a negative amount where none is permitted, a
// malformed field. It is recoverable and meant to be shown to the user.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// invalidf creates a ValidationError with a formatted reason.
func invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ConfigError reports a profile that is missing a required field. It is
// recoverable and meant to be shown to the user.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("profile is missing required field %q", e.Field)
}
