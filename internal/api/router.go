package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/accessd/accessd/internal/api/handler"
	"github.com/accessd/accessd/internal/api/middleware"
	"github.com/accessd/accessd/internal/core/ports"
	"github.com/accessd/accessd/internal/infrastructure/config"
	healthhandlers "github.com/accessd/accessd/internal/infrastructure/http/handlers"
)

// Deps carries the collaborators the router wires into handlers and guards.
// Everything is constructed at startup and injected; no hidden globals.
type Deps struct {
	Config *config.Config
	Store  ports.CredentialStore
	Tokens ports.TokenService
	Auth   ports.AuthService
	Mongo  *mongo.Database
	Redis  *redis.Client
	Log    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log, d.Config.Debug())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accessd"))

	// Every request resolves identity exactly once before any handler runs.
	e.Use(middleware.ResolveIdentity(middleware.AuthMode(d.Config.AuthMode), d.Store, d.Tokens, d.Log))

	// --- Application routes ---
	authHandler := handler.NewAuthHandler(d.Auth)
	applyRoutes(e, routeTable(authHandler), d.Tokens, d.Config.QuerySecret)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
