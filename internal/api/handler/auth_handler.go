package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ktuclinic/portal-auth/internal/api/metrics"
	"github.com/ktuclinic/portal-auth/internal/core/domain"
	"github.com/ktuclinic/portal-auth/internal/core/ports"
	"github.com/ktuclinic/portal-auth/internal/core/session"
)

// AuthHandler exposes the credential authority and session store to the
// presentation layer. It performs no branching on failures beyond status
// mapping: error messages are surfaced verbatim.
type AuthHandler struct {
	authority ports.CredentialAuthority
	sessions  *session.Store
	registry  ports.IdentityRegistry
}

func NewAuthHandler(authority ports.CredentialAuthority, sessions *session.Store, registry ports.IdentityRegistry) *AuthHandler {
	return &AuthHandler{authority: authority, sessions: sessions, registry: registry}
}

// Login authenticates an email/password/role triple.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	result, err := h.authority.Login(c.Request().Context(), req.Email, req.Password, domain.Role(req.Role))
	metrics.AuthDuration.WithLabelValues("login").Observe(time.Since(start).Seconds())
	metrics.LoginsTotal.WithLabelValues(loginOutcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{User: result.User, Token: result.Token, Message: result.Message})
}

// Register creates a new identity in the registry.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	result, err := h.authority.Register(c.Request().Context(), ports.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Role:        domain.Role(req.Role),
	})
	metrics.AuthDuration.WithLabelValues("register").Observe(time.Since(start).Seconds())
	metrics.RegistrationsTotal.WithLabelValues(registerOutcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{User: result.User, Token: result.Token, Message: result.Message})
}

// Logout clears the session synchronously.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Clear(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current identity-or-none and the busy flag.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	current := h.sessions.Current()
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: current != nil,
		Busy:          h.sessions.Busy(),
		User:          current,
		FullName:      h.sessions.FullName(),
	})
}

// Roles returns the fixed role metadata catalog.
//
// @Summary      Role catalog
// @Tags         auth
// @Produce      json
// @Success      200  {object}  rolesResponse
// @Router       /auth/roles [get]
func (h *AuthHandler) Roles(c echo.Context) error {
	return c.JSON(http.StatusOK, rolesResponse{Roles: domain.RoleCatalog()})
}

// Identities lists every registered identity. Admin only.
//
// @Summary      List registered identities
// @Tags         admin
// @Produce      json
// @Success      200  {object}  identitiesResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/identities [get]
func (h *AuthHandler) Identities(c echo.Context) error {
	identities, err := h.registry.All(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identitiesResponse{Identities: identities, Count: len(identities)})
}

func loginOutcome(err error) string {
	var mismatch *domain.RoleMismatchError
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.As(err, &mismatch):
		return "role_mismatch"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "error"
	}
}

func registerOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrEmailTaken):
		return "email_taken"
	case errors.Is(err, domain.ErrInvalidPhone):
		return "invalid_phone"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "error"
	}
}
