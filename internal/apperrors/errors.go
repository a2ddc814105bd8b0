// Package apperrors holds the error kinds shared by the domain packages and
// the HTTP layer: user input problems, business-rule conflicts and lookups
// that found nothing.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// ValidationError is a missing or malformed field. The message is safe to
// show to the user as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError is a request that is well formed but breaks a business rule,
// e.g. disbursements not totalling 100% or a unit that is already booked.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Validation builds a ValidationError with no field attached
func Validation(message string) error {
	return &ValidationError{Message: message}
}

// FieldValidation builds a ValidationError for a named field
func FieldValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// Conflict builds a ConflictError
func Conflict(message string) error {
	return &ConflictError{Message: message}
}

// Conflictf builds a ConflictError with a formatted message
func Conflictf(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err wraps a ValidationError
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsConflict reports whether err wraps a ConflictError
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}
