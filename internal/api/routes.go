package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accessd/accessd/internal/api/handler"
	"github.com/accessd/accessd/internal/api/middleware"
	"github.com/accessd/accessd/internal/core/domain"
	"github.com/accessd/accessd/internal/core/ports"
)

// Protection enumerates the guard kinds a route can declare. Routes carry
// their protection as data so the table can be inspected and tested apart
// from the Echo dispatch machinery.
type Protection int

const (
	// Public routes run with whatever identity the interceptor resolved,
	// guest included.
	Public Protection = iota
	// QuerySecret routes require the configured literal in the "password"
	// query parameter. Independent of the identity model.
	QuerySecret
	// Bearer routes require a valid signed token and receive its subject id
	// as an explicit handler argument.
	Bearer
	// MinPrivilege routes require the resolved identity to meet MinLevel.
	MinPrivilege
)

// Route is one entry of the declarative route table.
type Route struct {
	Method     string
	Path       string
	Protection Protection
	// MinLevel applies only when Protection is MinPrivilege.
	MinLevel domain.PrivilegeLevel
	// Handler serves every protection kind except Bearer.
	Handler echo.HandlerFunc
	// Subject serves Bearer routes.
	Subject middleware.SubjectHandler
}

// routeTable declares every application route and its protection.
func routeTable(auth *handler.AuthHandler) []Route {
	return []Route{
		{Method: http.MethodPost, Path: "/api/register", Protection: Public, Handler: auth.Register},
		{Method: http.MethodPost, Path: "/api/login", Protection: Public, Handler: auth.Login},
		{Method: http.MethodGet, Path: "/protected/data", Protection: Bearer, Subject: handler.ProtectedData},
		{Method: http.MethodGet, Path: "/guest-demo", Protection: Public, Handler: handler.GuestDemo},
		{Method: http.MethodGet, Path: "/admin-demo", Protection: MinPrivilege, MinLevel: domain.PrivilegeAdmin, Handler: handler.AdminDemo},
		{Method: http.MethodGet, Path: "/secret-demo", Protection: QuerySecret, Handler: handler.SecretDemo},
	}
}

// applyRoutes registers each table entry on the Echo instance, wrapping the
// handler with the guard its protection kind demands.
func applyRoutes(e *echo.Echo, routes []Route, tokens ports.TokenService, querySecret string) {
	for _, r := range routes {
		switch r.Protection {
		case QuerySecret:
			e.Add(r.Method, r.Path, r.Handler, middleware.QuerySecret(querySecret))
		case Bearer:
			e.Add(r.Method, r.Path, middleware.RequireBearer(tokens, r.Subject))
		case MinPrivilege:
			e.Add(r.Method, r.Path, r.Handler, middleware.RequirePrivilege(r.MinLevel))
		default:
			e.Add(r.Method, r.Path, r.Handler)
		}
	}
}
