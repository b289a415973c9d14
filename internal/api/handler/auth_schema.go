package handler

import "github.com/ktuclinic/portal-auth/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=admin doctor nurse receptionist patient"`
}

type registerRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"password"    validate:"required"`
	FirstName   string `json:"firstName"   validate:"required"`
	LastName    string `json:"lastName"    validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Role        string `json:"role"        validate:"required,oneof=admin doctor nurse receptionist patient"`
}

// authResponse mirrors domain.AuthResult on the wire.
type authResponse struct {
	User    *domain.Identity `json:"user"`
	Token   string           `json:"token"`
	Message string           `json:"message"`
}

// sessionResponse is the observable session state: identity-or-none plus
// the busy flag.
type sessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	Busy          bool             `json:"busy"`
	User          *domain.Identity `json:"user,omitempty"`
	FullName      string           `json:"fullName,omitempty"`
}

type rolesResponse struct {
	Roles []domain.RoleInfo `json:"roles"`
}

type identitiesResponse struct {
	Identities []*domain.Identity `json:"identities"`
	Count      int                `json:"count"`
}
