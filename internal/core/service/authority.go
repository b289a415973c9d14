package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ktuclinic/portal-auth/internal/core/domain"
	"github.com/ktuclinic/portal-auth/internal/core/ports"
)

// Seed administrator account. The registry is pre-populated with it, and it
// is the only account whose password is actually checked: every other
// account accepts any non-empty password. A stub policy, not a security
// boundary.
const (
	SeedAdminEmail    = "admin@ktu.edu.gh"
	seedAdminPassword = "admin123"
)

const (
	defaultLoginDelay    = 1500 * time.Millisecond
	defaultRegisterDelay = 2 * time.Second
)

// CredentialAuthority validates login and registration requests against the
// identity registry, drives the session store's busy flag, and simulates
// network latency before delivering each result.
type CredentialAuthority struct {
	registry      ports.IdentityRegistry
	sessions      ports.SessionController
	logger        zerolog.Logger
	loginDelay    time.Duration
	registerDelay time.Duration
}

// NewCredentialAuthority builds a CredentialAuthority. Non-positive delays
// fall back to the defaults (1.5s login, 2s registration).
func NewCredentialAuthority(
	registry ports.IdentityRegistry,
	sessions ports.SessionController,
	logger zerolog.Logger,
	loginDelay, registerDelay time.Duration,
) *CredentialAuthority {
	if loginDelay <= 0 {
		loginDelay = defaultLoginDelay
	}
	if registerDelay <= 0 {
		registerDelay = defaultRegisterDelay
	}
	return &CredentialAuthority{
		registry:      registry,
		sessions:      sessions,
		logger:        logger,
		loginDelay:    loginDelay,
		registerDelay: registerDelay,
	}
}

// Login authenticates email/password against the registry and checks the
// claimed role. The outcome is computed up front and delivered after the
// simulated round-trip; if ctx is cancelled during the wait the attempt is
// abandoned and no session mutation happens. The busy flag is set on entry
// and released exactly once on every exit path.
func (a *CredentialAuthority) Login(ctx context.Context, email, password string, role domain.Role) (*domain.AuthResult, error) {
	a.sessions.SetBusy(true)
	defer a.sessions.SetBusy(false)

	result, authErr := a.authenticate(ctx, email, password, role)

	if err := a.simulateLatency(ctx, a.loginDelay); err != nil {
		a.logger.Debug().Str("email", email).Msg("login abandoned before completion")
		return nil, err
	}

	if authErr != nil {
		a.logger.Info().Str("email", email).Str("role", string(role)).Err(authErr).Msg("login rejected")
		return nil, authErr
	}

	a.sessions.Activate(ctx, result.User)
	a.logger.Info().Str("email", result.User.Email).Str("role", string(result.User.Role)).Msg("login successful")
	return result, nil
}

func (a *CredentialAuthority) authenticate(ctx context.Context, email, password string, role domain.Role) (*domain.AuthResult, error) {
	user, err := a.registry.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if strings.EqualFold(user.Email, SeedAdminEmail) {
		if password != seedAdminPassword {
			return nil, domain.ErrInvalidCredentials
		}
	} else if password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if user.Role != role {
		return nil, &domain.RoleMismatchError{Actual: user.Role}
	}

	return &domain.AuthResult{
		User:    user,
		Token:   mintToken(),
		Message: "Login successful",
	}, nil
}

// Register validates the request and appends a new identity to the
// registry. The registry mutation happens only after the simulated
// round-trip, so a cancelled call leaves the registry untouched.
// Registration never activates a session; the caller logs in afterwards.
func (a *CredentialAuthority) Register(ctx context.Context, in ports.RegisterInput) (*domain.AuthResult, error) {
	a.sessions.SetBusy(true)
	defer a.sessions.SetBusy(false)

	regErr := a.validateRegistration(ctx, in)

	if err := a.simulateLatency(ctx, a.registerDelay); err != nil {
		a.logger.Debug().Str("email", in.Email).Msg("registration abandoned before completion")
		return nil, err
	}

	if regErr != nil {
		a.logger.Info().Str("email", in.Email).Err(regErr).Msg("registration rejected")
		return nil, regErr
	}

	identity := &domain.Identity{
		ID:          uuid.NewString(),
		Email:       strings.ToLower(in.Email),
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Role:        in.Role,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}

	if err := a.registry.Create(ctx, identity); err != nil {
		return nil, err
	}

	a.logger.Info().Str("email", identity.Email).Str("role", string(identity.Role)).Str("id", identity.ID).Msg("identity registered")

	return &domain.AuthResult{
		User:    identity,
		Token:   mintToken(),
		Message: "Registration successful",
	}, nil
}

func (a *CredentialAuthority) validateRegistration(ctx context.Context, in ports.RegisterInput) error {
	_, err := a.registry.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrAccountNotFound):
		return fmt.Errorf("register: %w", err)
	}

	if !domain.ValidPhoneNumber(in.PhoneNumber) {
		return domain.ErrInvalidPhone
	}
	return nil
}

// simulateLatency emulates the network round-trip of a real auth backend.
// Returns ctx.Err() when the caller goes away before the delay elapses.
func (a *CredentialAuthority) simulateLatency(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// mintToken returns an opaque per-call token. It carries no verification
// semantics: no signature, no expiry.
func mintToken() string {
	b := make([]byte, 9)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("mock-jwt-token-%x", time.Now().UnixNano())
	}
	return fmt.Sprintf("mock-jwt-token-%x", b)
}
