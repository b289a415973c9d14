package ports

import (
	"context"

	"github.com/ktuclinic/portal-auth/internal/core/domain"
)

// RegisterInput carries everything a registration attempt needs.
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Role        domain.Role
}

// CredentialAuthority validates login and registration requests against the
// identity registry and produces an AuthResult or a typed domain error.
// Both operations simulate network latency and honour ctx cancellation: a
// cancelled call applies no session or registry mutation.
type CredentialAuthority interface {
	Login(ctx context.Context, email, password string, role domain.Role) (*domain.AuthResult, error)
	Register(ctx context.Context, in RegisterInput) (*domain.AuthResult, error)
}
