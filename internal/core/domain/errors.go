package domain

import (
	"errors"
	"fmt"
)

// Authentication failures carry the exact message the presentation layer
// shows verbatim; callers branch only for HTTP status mapping.
var (
	ErrAccountNotFound    = errors.New("User not found. Please check your email or register first.")
	ErrInvalidCredentials = errors.New("Invalid credentials. Please check your email and password.")
	ErrEmailTaken         = errors.New("Email already exists. Please use a different email or try logging in.")
	ErrInvalidPhone       = errors.New("Please enter a valid phone number.")
)

// RoleMismatchError reports a login with the wrong role selected for an
// existing account. Actual is the role the account is registered under.
type RoleMismatchError struct {
	Actual Role
}

func (e *RoleMismatchError) Error() string {
	return fmt.Sprintf("Invalid role selected. This account is registered as %s.", e.Actual.DisplayName())
}
