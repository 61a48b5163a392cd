package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/postboard/postboard-api/internal/api/handler"
	"github.com/postboard/postboard-api/internal/api/middleware"
	"github.com/postboard/postboard-api/internal/core/domain"
	"github.com/postboard/postboard-api/internal/core/ports"
)

// Dependencies are the collaborators the router mounts.
type Dependencies struct {
	Log      zerolog.Logger
	Resolver ports.IdentityResolver

	Auth   *handler.AuthHandler
	Users  *handler.UserHandler
	Posts  *handler.PostHandler
	Health *handler.HealthHandler
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("postboard"))

	authenticated := middleware.Auth(deps.Resolver)
	adminOnly := middleware.RequireRole(deps.Resolver, domain.RoleAdmin)

	// --- Users ---
	e.POST("/users", deps.Auth.Register)
	e.POST("/users/register", deps.Auth.Register)
	e.POST("/users/login", deps.Auth.Login)
	e.GET("/users/me", deps.Users.Me, authenticated)
	e.GET("/users", deps.Users.List, adminOnly)
	e.GET("/users/:id", deps.Users.Get, adminOnly)

	// --- Posts ---
	e.GET("/posts", deps.Posts.List)
	e.GET("/posts/:id", deps.Posts.Get)
	e.POST("/posts", deps.Posts.Create, authenticated)

	// --- Status and probes (no auth required) ---
	e.GET("/status", deps.Health.Status)
	e.GET("/health", deps.Health.Liveness)
	e.GET("/health/ready", deps.Health.Readiness)

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
