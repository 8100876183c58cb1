package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accessd/accessd/internal/api/metrics"
	"github.com/accessd/accessd/internal/core/ports"
)

// Route guards attach an independent protection axis to a handler, outside
// the identity/privilege model. Both variants fail closed: any missing,
// malformed or mismatched credential rejects before the handler runs.

// QuerySecret accepts the request only when the "password" query parameter
// matches the configured literal. It never touches the resolved identity.
//
// The comparison is constant-time, unlike the template this preserves, whose
// plain string equality was a timing side channel. The external contract is
// unchanged. Secrets in query strings still end up in access logs; prefer the
// bearer guard for anything that matters.
func QuerySecret(secret string) echo.MiddlewareFunc {
	expected := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			supplied := []byte(c.QueryParam("password"))
			if len(supplied) == 0 || subtle.ConstantTimeCompare(supplied, expected) != 1 {
				metrics.GuardRejectionsTotal.WithLabelValues("query_secret").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			return next(c)
		}
	}
}

// SubjectHandler is a handler that receives the verified token subject as an
// explicit argument instead of reading ambient context, keeping its
// dependency visible and testable.
type SubjectHandler func(c echo.Context, userID int64) error

// RequireBearer wraps a SubjectHandler so it only runs for a valid,
// non-expired bearer token. No store lookup happens here; the token alone
// proves the subject.
func RequireBearer(tokens ports.TokenService, h SubjectHandler) echo.HandlerFunc {
	return func(c echo.Context) error {
		credential, ok := bearerValue(c)
		if !ok {
			metrics.GuardRejectionsTotal.WithLabelValues("bearer").Inc()
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		userID, err := tokens.Verify(credential)
		observeTokenResult(err)
		if err != nil {
			metrics.GuardRejectionsTotal.WithLabelValues("bearer").Inc()
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		return h(c, userID)
	}
}
