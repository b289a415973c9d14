package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ktuclinic/portal-auth/internal/core/domain"
	"github.com/ktuclinic/portal-auth/internal/core/session"
)

// RequireRole enforces role-based access using the active session. The
// portal is a single-user client, so the active session is the caller.
func RequireRole(store *session.Store, allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current := store.Current()
			if current == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
			}
			if _, ok := allowed[current.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
