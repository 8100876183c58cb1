package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accessd/accessd/internal/api/middleware"
)

// Demo handlers exercising each protection kind. They double as smoke-test
// targets for the route table.

// ProtectedData receives the verified token subject explicitly from the
// bearer route guard.
func ProtectedData(c echo.Context, userID int64) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message": "access granted",
		"user":    userID,
	})
}

// GuestDemo is public; it reports the resolved identity's tier to make the
// interceptor's guest fallback observable.
func GuestDemo(c echo.Context) error {
	id := middleware.IdentityFrom(c)
	return c.JSON(http.StatusOK, map[string]string{
		"message":   "guest endpoint",
		"privilege": id.Privilege.String(),
	})
}

// AdminDemo sits behind a privilege gate requiring the admin tier.
func AdminDemo(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "admin access granted",
	})
}

// SecretDemo sits behind the query-secret guard.
func SecretDemo(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "secret route accessed",
	})
}
