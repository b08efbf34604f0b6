// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidRole is returned when a user role is not one of the known roles.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidAmount is returned when a monetary amount is missing,
	// not numeric, or not strictly positive.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrUnauthorized is returned when an operation is not permitted
	// for the authenticated identity.
	ErrUnauthorized = errors.New("unauthorized operation")

	// ErrForbidden is returned when the authenticated identity lacks the
	// role required for an operation.
	ErrForbidden = errors.New("forbidden operation")
)

// ValidationError carries the field that failed validation along with a
// human-readable reason. It wraps one of the sentinel errors above so that
// callers can still match with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError wrapping the given sentinel.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
