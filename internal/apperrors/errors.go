// Package apperrors defines the error taxonomy shared by services and
// handlers. Services return these; handlers map them to HTTP status codes in
// exactly one place. No error here is fatal to the process.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a stale reference to a record that no longer exists.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidTransition marks a lifecycle action invoked from a status it
	// is not legal in, e.g. approving a collector that is not pending.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrUnavailable marks a failure to reach the document store. The
	// operator may retry by resubmitting; nothing retries automatically.
	ErrUnavailable = errors.New("store unavailable")

	// ErrGenerationFailed marks a failure of the text-generation collaborator.
	ErrGenerationFailed = errors.New("message generation failed")

	// ErrInvalidCredentials is returned for any login failure. Handlers map
	// it to one generic message so the response never reveals which field
	// was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports bad operator input, naming the offending field so
// the dashboard can surface it inline.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation builds a ValidationError for a field.
func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Unavailable wraps a store error so it matches ErrUnavailable while keeping
// the underlying cause in the message.
func Unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// GenerationFailed wraps a collaborator error so it matches
// ErrGenerationFailed while keeping the underlying cause in the message.
func GenerationFailed(err error) error {
	return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
}
