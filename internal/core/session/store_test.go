package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ktuclinic/portal-auth/internal/core/domain"
	"github.com/ktuclinic/portal-auth/internal/infrastructure/slot"
)

func testIdentity() *domain.Identity {
	return &domain.Identity{
		ID:        "u1",
		Email:     "ama@x.com",
		FirstName: "Ama",
		LastName:  "Boateng",
		Role:      domain.RoleNurse,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}

func TestRestore_EmptySlot(t *testing.T) {
	store := New(slot.NewMemory(), zerolog.Nop())

	if outcome := store.Restore(context.Background()); outcome != RestoreEmpty {
		t.Fatalf("expected empty outcome, got %s", outcome)
	}
	if store.IsAuthenticated() {
		t.Fatalf("empty slot must not yield an active identity")
	}
}

func TestRestore_WellFormed(t *testing.T) {
	s := slot.NewMemory()
	payload, _ := json.Marshal(testIdentity())
	if err := s.Save(context.Background(), payload); err != nil {
		t.Fatalf("seed slot: %v", err)
	}

	store := New(s, zerolog.Nop())
	if outcome := store.Restore(context.Background()); outcome != RestoreRestored {
		t.Fatalf("expected restored outcome, got %s", outcome)
	}

	if !store.IsAuthenticated() {
		t.Fatalf("expected an active identity")
	}
	if store.FullName() != "Ama Boateng" {
		t.Fatalf("unexpected full name: %q", store.FullName())
	}
	if !store.HasRole(domain.RoleNurse) || store.HasRole(domain.RoleDoctor) {
		t.Fatalf("role accessors wrong for %+v", store.Current())
	}
	if store.IsAdmin() {
		t.Fatalf("nurse is not an admin")
	}
}

func TestRestore_MalformedPayload_ClearsSlot(t *testing.T) {
	s := slot.NewMemory()
	if err := s.Save(context.Background(), []byte("{corrupted")); err != nil {
		t.Fatalf("seed slot: %v", err)
	}

	store := New(s, zerolog.Nop())
	if outcome := store.Restore(context.Background()); outcome != RestoreMalformed {
		t.Fatalf("expected malformed outcome, got %s", outcome)
	}
	if store.IsAuthenticated() {
		t.Fatalf("malformed slot must not yield an active identity")
	}

	payload, err := s.Load(context.Background())
	if err != nil || payload != nil {
		t.Fatalf("malformed slot should have been cleared, got %q %v", payload, err)
	}
}

func TestRestore_MissingFields_TreatedAsMalformed(t *testing.T) {
	s := slot.NewMemory()
	// Valid JSON, but not a well-formed identity.
	if err := s.Save(context.Background(), []byte(`{"role":"admin"}`)); err != nil {
		t.Fatalf("seed slot: %v", err)
	}

	store := New(s, zerolog.Nop())
	if outcome := store.Restore(context.Background()); outcome != RestoreMalformed {
		t.Fatalf("expected malformed outcome, got %s", outcome)
	}
}

func TestActivate_PersistsAndNotifies(t *testing.T) {
	s := slot.NewMemory()
	store := New(s, zerolog.Nop())

	var snaps []Snapshot
	store.Subscribe(func(snap Snapshot) { snaps = append(snaps, snap) })

	identity := testIdentity()
	store.Activate(context.Background(), identity)

	if store.Current() == nil || store.Current().ID != "u1" {
		t.Fatalf("identity not active: %+v", store.Current())
	}

	payload, err := s.Load(context.Background())
	if err != nil || payload == nil {
		t.Fatalf("expected persisted payload, got %v", err)
	}
	var stored domain.Identity
	if err := json.Unmarshal(payload, &stored); err != nil || stored.ID != "u1" {
		t.Fatalf("persisted payload mismatch: %v %+v", err, stored)
	}

	if len(snaps) != 1 || snaps[0].User == nil || snaps[0].User.ID != "u1" {
		t.Fatalf("expected one snapshot with the identity, got %+v", snaps)
	}
}

type failingSlot struct{}

func (failingSlot) Load(context.Context) ([]byte, error) {
	return nil, errors.New("storage unavailable")
}

func (failingSlot) Save(context.Context, []byte) error { return errors.New("storage unavailable") }

func (failingSlot) Clear(context.Context) error { return errors.New("storage unavailable") }

func TestActivate_SlotWriteFailureSwallowed(t *testing.T) {
	store := New(failingSlot{}, zerolog.Nop())

	store.Activate(context.Background(), testIdentity())
	if !store.IsAuthenticated() {
		t.Fatalf("in-memory session must become active even when persistence fails")
	}
}

func TestClear_Logout(t *testing.T) {
	s := slot.NewMemory()
	store := New(s, zerolog.Nop())
	store.Activate(context.Background(), testIdentity())

	store.Clear(context.Background())

	if store.IsAuthenticated() {
		t.Fatalf("logout must unset the identity")
	}
	if store.FullName() != "" {
		t.Fatalf("full name should be empty after logout, got %q", store.FullName())
	}
	payload, err := s.Load(context.Background())
	if err != nil || payload != nil {
		t.Fatalf("logout must clear the slot, got %q %v", payload, err)
	}
}

func TestListeners_RegistrationOrder(t *testing.T) {
	store := New(slot.NewMemory(), zerolog.Nop())

	var order []string
	store.Subscribe(func(Snapshot) { order = append(order, "first") })
	store.Subscribe(func(Snapshot) { order = append(order, "second") })

	store.SetBusy(true)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("listeners must fire in registration order, got %v", order)
	}
}

func TestSetBusy_SnapshotsCarryFlag(t *testing.T) {
	store := New(slot.NewMemory(), zerolog.Nop())

	var snaps []Snapshot
	store.Subscribe(func(snap Snapshot) { snaps = append(snaps, snap) })

	store.SetBusy(true)
	store.SetBusy(false)

	if len(snaps) != 2 || !snaps[0].Busy || snaps[1].Busy {
		t.Fatalf("expected busy snapshots [true false], got %+v", snaps)
	}
	if store.Busy() {
		t.Fatalf("busy flag should be reset")
	}
}

func TestUnsubscribe_StopsNotifications(t *testing.T) {
	store := New(slot.NewMemory(), zerolog.Nop())

	calls := 0
	cancel := store.Subscribe(func(Snapshot) { calls++ })

	store.SetBusy(true)
	cancel()
	store.SetBusy(false)

	if calls != 1 {
		t.Fatalf("expected exactly one notification before cancel, got %d", calls)
	}
}
