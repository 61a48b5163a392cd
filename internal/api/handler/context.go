package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/postboard/postboard-api/internal/api/middleware"
	"github.com/postboard/postboard-api/internal/core/domain"
)

// currentUser returns the identity injected by the Auth or RequireRole
// middleware. A route mounted without either has no identity and is refused.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.IdentityKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
