package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/accessd/accessd/internal/api/metrics"
	"github.com/accessd/accessd/internal/core/domain"
)

// RequirePrivilege gates a route on the resolved identity's tier. Gates are
// stateless and composable; chaining several applies the strictest. Rejection
// maps to 403 via the central error handler.
func RequirePrivilege(min domain.PrivilegeLevel) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !Allowed(IdentityFrom(c), min) {
				metrics.PrivilegeDenialsTotal.WithLabelValues(min.String()).Inc()
				return domain.ErrInsufficientPrivilege
			}
			return next(c)
		}
	}
}

// Allowed is the bare gate predicate, for handlers that check privilege
// inline rather than declaratively.
func Allowed(id domain.Identity, min domain.PrivilegeLevel) bool {
	return domain.MeetsMinimum(id.Privilege, min)
}
