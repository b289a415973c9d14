// Package registry provides the in-memory identity registry. The portal is
// a mock: the registry starts with one seeded administrator and grows by
// one entry per successful registration. Nothing is ever removed.
package registry

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ktuclinic/portal-auth/internal/core/domain"
)

// Memory is an append-only identity registry keyed by lower-cased email.
type Memory struct {
	mu         sync.RWMutex
	identities map[string]*domain.Identity
	order      []string
}

// NewMemory builds a registry pre-populated with the seed administrator.
func NewMemory(seedAdminEmail string) *Memory {
	m := &Memory{identities: make(map[string]*domain.Identity)}
	m.seed(&domain.Identity{
		ID:        "1",
		Email:     strings.ToLower(seedAdminEmail),
		FirstName: "System",
		LastName:  "Administrator",
		Role:      domain.RoleAdmin,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	})
	return m
}

func (m *Memory) seed(identity *domain.Identity) {
	m.identities[identity.Email] = identity
	m.order = append(m.order, identity.Email)
}

// FindByEmail looks up an identity by case-insensitive email match.
func (m *Memory) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	identity, ok := m.identities[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return clone(identity), nil
}

// Create appends a new identity, enforcing case-insensitive email
// uniqueness.
func (m *Memory) Create(_ context.Context, identity *domain.Identity) error {
	key := strings.ToLower(identity.Email)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.identities[key]; exists {
		return domain.ErrEmailTaken
	}
	m.identities[key] = clone(identity)
	m.order = append(m.order, key)
	return nil
}

// All returns every identity in insertion order.
func (m *Memory) All(_ context.Context) ([]*domain.Identity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Identity, 0, len(m.order))
	for _, key := range m.order {
		out = append(out, clone(m.identities[key]))
	}
	return out, nil
}

// clone keeps callers from aliasing the registry's records.
func clone(identity *domain.Identity) *domain.Identity {
	copy := *identity
	return &copy
}
