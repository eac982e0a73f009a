// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for authentication operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrUserAlreadyExists indicates that a user with the given email already exists.
	// This is returned during registration when attempting to create a duplicate user.
	ErrUserAlreadyExists = errors.New("user with this email already exists")

	// ErrUserNotFound indicates that no user was found with the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates that the provided credentials are incorrect.
	// It is deliberately the same for an unknown email and a wrong password so
	// the response does not reveal whether the email is registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAlreadyAuthenticated indicates that a registration was attempted on a
	// session that already has a bound principal.
	ErrAlreadyAuthenticated = errors.New("session is already authenticated")
)

// ValidationError describes a user-correctable registration input failure.
// The message is safe to show to the user as a flash message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given user-facing message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
