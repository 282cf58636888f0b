package scheduler

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidClock is returned for times not in 24-hour HH:MM form.
	ErrInvalidClock = errors.New("invalid clock time")
	// ErrDuplicateRole is returned when two roles share a name, ignoring case.
	ErrDuplicateRole = errors.New("duplicate role name")
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
