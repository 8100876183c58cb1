package api

import (
	"net/http"
	"testing"

	"github.com/accessd/accessd/internal/api/handler"
	"github.com/accessd/accessd/internal/core/domain"
)

func TestRouteTable_Declarations(t *testing.T) {
	table := routeTable(handler.NewAuthHandler(nil))

	find := func(method, path string) *Route {
		for i := range table {
			if table[i].Method == method && table[i].Path == path {
				return &table[i]
			}
		}
		t.Fatalf("route %s %s missing from table", method, path)
		return nil
	}

	if r := find(http.MethodPost, "/api/register"); r.Protection != Public {
		t.Fatalf("/api/register must be public")
	}
	if r := find(http.MethodPost, "/api/login"); r.Protection != Public {
		t.Fatalf("/api/login must be public")
	}
	if r := find(http.MethodGet, "/protected/data"); r.Protection != Bearer || r.Subject == nil {
		t.Fatalf("/protected/data must be bearer-guarded with a subject handler")
	}
	if r := find(http.MethodGet, "/secret-demo"); r.Protection != QuerySecret {
		t.Fatalf("/secret-demo must be query-secret guarded")
	}
	if r := find(http.MethodGet, "/admin-demo"); r.Protection != MinPrivilege || r.MinLevel != domain.PrivilegeAdmin {
		t.Fatalf("/admin-demo must require the admin tier")
	}
}

func TestRouteTable_EveryEntryHasAHandlerForItsKind(t *testing.T) {
	for _, r := range routeTable(handler.NewAuthHandler(nil)) {
		if r.Protection == Bearer {
			if r.Subject == nil {
				t.Fatalf("%s %s: bearer route without subject handler", r.Method, r.Path)
			}
			if r.Handler != nil {
				t.Fatalf("%s %s: bearer route must not carry a plain handler", r.Method, r.Path)
			}
			continue
		}
		if r.Handler == nil {
			t.Fatalf("%s %s: route without handler", r.Method, r.Path)
		}
		if r.Subject != nil {
			t.Fatalf("%s %s: non-bearer route must not carry a subject handler", r.Method, r.Path)
		}
	}
}
