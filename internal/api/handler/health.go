package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready — readiness probe. The only
// external dependency is Redis, and only when the session slot uses the
// redis backend; with the memory or file backend the service is always
// ready.
type ReadinessHandler struct {
	redis *redis.Client
}

// NewReadinessHandler builds the probe. rdb may be nil when no Redis
// backend is configured.
func NewReadinessHandler(rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{redis: rdb}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	resp := readinessResponse{
		Status:       "ready",
		Dependencies: make(map[string]dependencyStatus),
	}

	if h.redis != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		if err := h.redis.Ping(ctx).Err(); err != nil {
			resp.Status = "not_ready"
			resp.Dependencies["redis"] = dependencyStatus{Status: "down", Error: err.Error()}
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		resp.Dependencies["redis"] = dependencyStatus{Status: "up"}
	}

	return c.JSON(http.StatusOK, resp)
}
