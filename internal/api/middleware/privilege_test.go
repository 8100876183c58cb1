package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/accessd/accessd/internal/core/domain"
)

func contextWithIdentity(id domain.Identity) echo.Context {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	setIdentity(c, id)
	return c
}

func TestRequirePrivilege_AllPairs(t *testing.T) {
	levels := []domain.PrivilegeLevel{domain.PrivilegeGuest, domain.PrivilegeUser, domain.PrivilegeAdmin}

	for _, actual := range levels {
		for _, required := range levels {
			c := contextWithIdentity(domain.Identity{Privilege: actual})

			called := false
			err := RequirePrivilege(required)(func(c echo.Context) error {
				called = true
				return c.NoContent(http.StatusOK)
			})(c)

			if actual >= required {
				if err != nil || !called {
					t.Fatalf("privilege %v against minimum %v: expected acceptance, err=%v called=%v", actual, required, err, called)
				}
			} else {
				if !errors.Is(err, domain.ErrInsufficientPrivilege) {
					t.Fatalf("privilege %v against minimum %v: expected ErrInsufficientPrivilege, got %v", actual, required, err)
				}
				if called {
					t.Fatalf("handler ran despite insufficient privilege")
				}
			}
		}
	}
}

func TestRequirePrivilege_ChainedGatesStrictestApplies(t *testing.T) {
	c := contextWithIdentity(domain.Identity{Privilege: domain.PrivilegeUser})

	handler := RequirePrivilege(domain.PrivilegeUser)(
		RequirePrivilege(domain.PrivilegeAdmin)(func(c echo.Context) error {
			t.Fatalf("handler must not run")
			return nil
		}))

	if err := handler(c); !errors.Is(err, domain.ErrInsufficientPrivilege) {
		t.Fatalf("expected ErrInsufficientPrivilege from the stricter gate, got %v", err)
	}
}

func TestRequirePrivilege_UnresolvedRequestIsGuest(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := RequirePrivilege(domain.PrivilegeUser)(func(c echo.Context) error {
		t.Fatalf("handler must not run")
		return nil
	})(c)

	if !errors.Is(err, domain.ErrInsufficientPrivilege) {
		t.Fatalf("expected ErrInsufficientPrivilege, got %v", err)
	}
}

func TestAllowed(t *testing.T) {
	if !Allowed(domain.Identity{Privilege: domain.PrivilegeAdmin}, domain.PrivilegeUser) {
		t.Fatalf("admin must meet the user minimum")
	}
	if Allowed(domain.GuestIdentity(), domain.PrivilegeUser) {
		t.Fatalf("guest must not meet the user minimum")
	}
}
