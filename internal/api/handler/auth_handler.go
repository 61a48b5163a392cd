package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/postboard/postboard-api/internal/api/metrics"
	"github.com/postboard/postboard-api/internal/core/domain"
	"github.com/postboard/postboard-api/internal/core/ports"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	authService ports.AuthService
	events      EventDispatcher
}

// NewAuthHandler creates an AuthHandler. A nil dispatcher disables the audit trail.
func NewAuthHandler(authService ports.AuthService, events EventDispatcher) *AuthHandler {
	if events == nil {
		events = noopDispatcher{}
	}
	return &AuthHandler{authService: authService, events: events}
}

// Register creates a new identity with role User and returns it with a token.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Email and password"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /users [post]
// @Router       /users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password)
	h.events.Enqueue(authEvent(domain.AuthEventRegister, req.Email, user))
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "error").Inc()
		return err
	}

	return h.respondWithToken(c, "register", user)
}

// Login authenticates an identity by email and password.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Email and password"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	// Validation failures are reported like any other failed login.
	if err := c.Validate(&req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "unauthorized").Inc()
		return domain.ErrUnauthorized
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	h.events.Enqueue(authEvent(domain.AuthEventLogin, req.Email, user))
	if err != nil {
		result := "unauthorized"
		if !errors.Is(err, domain.ErrUnauthorized) {
			result = "error"
		}
		metrics.AuthAttemptsTotal.WithLabelValues("login", result).Inc()
		return err
	}

	return h.respondWithToken(c, "login", user)
}

func (h *AuthHandler) respondWithToken(c echo.Context, operation string, user *domain.User) error {
	token, err := h.authService.IssueToken(user)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues(operation, "error").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues(operation, "success").Inc()
	return c.JSON(http.StatusOK, authResponse{User: user, Token: token})
}
