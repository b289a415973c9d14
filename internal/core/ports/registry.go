package ports

import (
	"context"

	"github.com/ktuclinic/portal-auth/internal/core/domain"
)

// IdentityRegistry is the append-only set of known identities, owned
// exclusively by the credential authority's wiring. Emails are unique
// case-insensitively; there is no removal operation.
type IdentityRegistry interface {
	// FindByEmail looks up an identity by case-insensitive email match,
	// returning domain.ErrAccountNotFound when no entry exists.
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	// Create appends a new identity, returning domain.ErrEmailTaken when an
	// entry with the same email (case-insensitive) already exists.
	Create(ctx context.Context, identity *domain.Identity) error
	// All returns a snapshot of every registered identity.
	All(ctx context.Context) ([]*domain.Identity, error)
}
