package domain

import "time"

// Identity models a registered account in the clinic portal.
// The email is the case-insensitive unique key across the registry; the ID
// is unique and immutable once assigned. Identities are never mutated or
// deleted after creation.
type Identity struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Role        Role      `json:"role"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FullName returns "First Last" for display.
func (i *Identity) FullName() string {
	return i.FirstName + " " + i.LastName
}

// AuthResult is the success outcome of a login or registration attempt.
// Token is an opaque placeholder string with no verification semantics.
// Failures are reported as typed errors, not as a result variant.
type AuthResult struct {
	User    *Identity `json:"user"`
	Token   string    `json:"token"`
	Message string    `json:"message"`
}
