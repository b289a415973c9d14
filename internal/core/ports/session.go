package ports

import (
	"context"

	"github.com/ktuclinic/portal-auth/internal/core/domain"
)

// SessionSlot persists the serialized active identity under a single fixed
// key. Implementations carry no schema version and no integrity check: the
// payload is the plain JSON identity object.
type SessionSlot interface {
	// Load returns the stored payload, or (nil, nil) when the slot is empty.
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
	Clear(ctx context.Context) error
}

// SessionController is the slice of the session store the credential
// authority drives: the busy flag around every attempt, and activation of
// the matched identity on a successful login.
type SessionController interface {
	SetBusy(busy bool)
	Activate(ctx context.Context, identity *domain.Identity)
}
