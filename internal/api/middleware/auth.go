package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/postboard/postboard-api/internal/api/metrics"
	"github.com/postboard/postboard-api/internal/core/domain"
	"github.com/postboard/postboard-api/internal/core/ports"
)

// IdentityKey is the echo.Context key holding the resolved *domain.User.
const IdentityKey = "identity"

// Auth resolves the bearer token of every request and injects the caller's
// identity into the context.
func Auth(resolver ports.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := resolver.Resolve(c.Request().Context(), c.Request().Header)
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
