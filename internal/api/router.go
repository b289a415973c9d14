package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ktuclinic/portal-auth/internal/api/handler"
	"github.com/ktuclinic/portal-auth/internal/api/metrics"
	"github.com/ktuclinic/portal-auth/internal/api/middleware"
	"github.com/ktuclinic/portal-auth/internal/core/domain"
	"github.com/ktuclinic/portal-auth/internal/core/ports"
	"github.com/ktuclinic/portal-auth/internal/core/session"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when the session slot does not use the redis backend.
func NewRouter(
	authority ports.CredentialAuthority,
	sessions *session.Store,
	registry ports.IdentityRegistry,
	rdb *redis.Client,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("clinicauth"))

	// Mirror session state into the gauge. Listeners run synchronously in
	// registration order, so the gauge tracks every change as it happens.
	sessions.Subscribe(func(snap session.Snapshot) {
		if snap.User != nil {
			metrics.ActiveSession.Set(1)
		} else {
			metrics.ActiveSession.Set(0)
		}
	})
	if sessions.IsAuthenticated() {
		// A session restored before this listener existed still counts.
		metrics.ActiveSession.Set(1)
	}

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(authority, sessions, registry)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)
	e.GET("/auth/roles", authHandler.Roles)

	// --- Admin routes (active session must be an administrator) ---
	admin := e.Group("/admin", middleware.RequireRole(sessions, domain.RoleAdmin))
	admin.GET("/identities", authHandler.Identities)

	// --- Health probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – is redis up (when configured)?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
