package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the root of every validation failure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownParticipant is returned when an expense references a
	// participant that does not exist.
	ErrUnknownParticipant = fmt.Errorf("%w: unknown participant", ErrInvalidInput)
)

// ValidationError describes why a field was rejected.
type ValidationError struct {
	Field  string
	Reason string

	// Err is the sentinel this error wraps; ErrInvalidInput when nil.
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidInput
	}
	return e.Err
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
