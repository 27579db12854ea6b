package apperrors

import "fmt"

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0 // Indicates successful execution.
	ExitErrorGeneric  = 1 // Indicates a generic error.
	ExitErrorMismatch = 3 // Indicates a self-test mismatch against the reference.
	ExitErrorConfig   = 4 // Indicates a configuration error.
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// AllocError reports that a digit vector could not be grown to the requested
// size. Growth is bounded, so this is a structured, expected failure: callers
// of the arithmetic engine receive it unchanged, with the destination of the
// failed operation left untouched.
type AllocError struct {
	// Digits is the requested digit count that exceeded the container bound.
	Digits int
}

// Error returns the error message for an AllocError.
func (e AllocError) Error() string {
	return fmt.Sprintf("cannot grow digit vector to %d digits", e.Digits)
}

// InconsistencyError reports an internal algebraic defect: an exact-division
// step of an interpolation produced a nonzero remainder. By construction this
// cannot happen for well-formed inputs, so it is surfaced loudly instead of
// silently truncating a wrong result.
type InconsistencyError struct {
	// Op names the step that failed, e.g. "div3".
	Op string
	// Remainder is the unexpected nonzero remainder.
	Remainder uint64
}

// Error returns the error message for an InconsistencyError.
func (e InconsistencyError) Error() string {
	return fmt.Sprintf("internal inconsistency: %s left remainder %d", e.Op, e.Remainder)
}

// ValidationError represents an input validation failure. It identifies which
// argument failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the argument that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError reports a self-test divergence between the engine and the
// reference implementation for a specific operation.
type MismatchError struct {
	// Op is the operation that diverged, e.g. "mul" or "sqr".
	Op string
	// Detail describes the inputs that triggered the divergence.
	Detail string
}

// Error returns the error message for a MismatchError.
func (e MismatchError) Error() string {
	return fmt.Sprintf("self-test mismatch in %s: %s", e.Op, e.Detail)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}
