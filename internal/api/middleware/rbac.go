package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/postboard/postboard-api/internal/api/metrics"
	"github.com/postboard/postboard-api/internal/core/domain"
	"github.com/postboard/postboard-api/internal/core/ports"
)

// RequireRole admits only callers whose role ranks at or above required.
// It resolves the identity itself, so it replaces Auth on a route.
func RequireRole(resolver ports.IdentityResolver, required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := resolver.ResolveWithRole(c.Request().Context(), c.Request().Header, required)
			if err != nil {
				metrics.AuthAttemptsTotal.WithLabelValues("resolve", "unauthorized").Inc()
				return domain.ErrUnauthorized
			}

			metrics.AuthAttemptsTotal.WithLabelValues("resolve", "success").Inc()
			c.Set(IdentityKey, user)
			return next(c)
		}
	}
}
