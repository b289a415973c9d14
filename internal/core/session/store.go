// Package session tracks the single active identity for the running client,
// together with a busy flag the presentation layer uses to disable input
// while a login or registration is pending.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ktuclinic/portal-auth/internal/core/domain"
	"github.com/ktuclinic/portal-auth/internal/core/ports"
)

// Snapshot is the observable state pushed to listeners on every change.
type Snapshot struct {
	User *domain.Identity
	Busy bool
}

// Listener receives state snapshots. Listeners are invoked synchronously,
// in registration order, in the order changes are emitted.
type Listener func(Snapshot)

type subscriber struct {
	id int
	fn Listener
}

// Store holds the current session. At most one identity is active at a
// time; every state change is persisted to the session slot and pushed to
// subscribers. Slot failures are swallowed: persistence is best-effort and
// never blocks the in-memory session.
type Store struct {
	slot ports.SessionSlot
	log  zerolog.Logger

	mu        sync.Mutex
	current   *domain.Identity
	busy      bool
	nextID    int
	listeners []subscriber
}

// New builds a Store backed by the given slot. Call Restore before first
// use to pick up a persisted session from a previous run.
func New(slot ports.SessionSlot, log zerolog.Logger) *Store {
	return &Store{slot: slot, log: log}
}

// RestoreOutcome reports what Restore found in the slot. Informational
// only: restore failures are swallowed, never surfaced as errors.
type RestoreOutcome string

const (
	RestoreEmpty     RestoreOutcome = "empty"
	RestoreRestored  RestoreOutcome = "restored"
	RestoreMalformed RestoreOutcome = "malformed"
)

// Restore reads the persisted slot at startup. A missing slot leaves no
// active identity; a malformed payload is logged, the slot is cleared, and
// no error reaches the caller.
func (s *Store) Restore(ctx context.Context) RestoreOutcome {
	payload, err := s.slot.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("session slot unreadable, starting unauthenticated")
		return RestoreEmpty
	}
	if payload == nil {
		return RestoreEmpty
	}

	var identity domain.Identity
	if err := json.Unmarshal(payload, &identity); err != nil || identity.ID == "" || identity.Email == "" {
		s.log.Warn().Err(err).Msg("discarding malformed persisted session")
		if err := s.slot.Clear(ctx); err != nil {
			s.log.Warn().Err(err).Msg("failed to clear malformed session slot")
		}
		return RestoreMalformed
	}

	s.mu.Lock()
	s.current = &identity
	s.mu.Unlock()
	s.log.Info().Str("email", identity.Email).Str("role", string(identity.Role)).Msg("session restored")
	s.notify()
	return RestoreRestored
}

// Activate makes identity the active session and persists it. A failed
// slot write is logged and swallowed; the in-memory session still becomes
// active.
func (s *Store) Activate(ctx context.Context, identity *domain.Identity) {
	if payload, err := json.Marshal(identity); err != nil {
		s.log.Warn().Err(err).Msg("failed to serialize session")
	} else if err := s.slot.Save(ctx, payload); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist session")
	}

	s.mu.Lock()
	s.current = identity
	s.mu.Unlock()
	s.notify()
}

// Clear logs the user out: the slot is removed and the active identity
// unset, synchronously.
func (s *Store) Clear(ctx context.Context) {
	if err := s.slot.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear session slot")
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	s.notify()
}

// SetBusy toggles the busy flag and notifies subscribers.
func (s *Store) SetBusy(busy bool) {
	s.mu.Lock()
	s.busy = busy
	s.mu.Unlock()
	s.notify()
}

// Current returns the active identity, or nil when unauthenticated.
func (s *Store) Current() *domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Busy reports whether an authentication attempt is pending.
func (s *Store) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// IsAuthenticated reports whether an identity is active.
func (s *Store) IsAuthenticated() bool {
	return s.Current() != nil
}

// HasRole reports whether the active identity holds the given role.
func (s *Store) HasRole(role domain.Role) bool {
	current := s.Current()
	return current != nil && current.Role == role
}

// IsAdmin reports whether the active identity is an administrator.
func (s *Store) IsAdmin() bool {
	return s.HasRole(domain.RoleAdmin)
}

// FullName returns the active identity's display name, or "" when
// unauthenticated.
func (s *Store) FullName() string {
	current := s.Current()
	if current == nil {
		return ""
	}
	return current.FullName()
}

// Subscribe registers a listener and returns its cancel function.
// Listeners registered first are notified first.
func (s *Store) Subscribe(fn Listener) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// notify pushes the current snapshot to every listener, outside the lock so
// listeners may call back into the store.
func (s *Store) notify() {
	s.mu.Lock()
	snap := Snapshot{User: s.current, Busy: s.busy}
	subs := make([]subscriber, len(s.listeners))
	copy(subs, s.listeners)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(snap)
	}
}
