package authz

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emperjs/shopfront/internal/api/authapi"
	"github.com/emperjs/shopfront/internal/app/session"
)

func reqWithRoles(roles ...string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if roles == nil {
		return req
	}
	return session.WithState(req, session.State{
		Session: authapi.Session{Authenticated: true, UserID: "u1", DisplayName: "Ada", Roles: roles},
	})
}

func TestUserCtx(t *testing.T) {
	roles, name, userID, ok := UserCtx(reqWithRoles("Seller", " Admin "))
	if !ok {
		t.Fatal("expected ok")
	}
	if name != "Ada" || userID != "u1" {
		t.Fatalf("name/id = %q/%q", name, userID)
	}
	if len(roles) != 2 || roles[0] != "seller" || roles[1] != "admin" {
		t.Fatalf("roles = %v", roles)
	}

	if _, _, _, ok := UserCtx(reqWithRoles()); ok {
		t.Fatal("anonymous request must not report ok")
	}
}

func TestRoleChecks(t *testing.T) {
	cases := []struct {
		name  string
		roles []string
		check func(*http.Request) bool
		want  bool
	}{
		{"owner is admin", []string{"owner"}, IsAdmin, true},
		{"admin is admin", []string{"admin"}, IsAdmin, true},
		{"seller is not admin", []string{"seller"}, IsAdmin, false},
		{"seller can manage products", []string{"seller"}, CanManageProducts, true},
		{"tester cannot manage products", []string{"tester"}, CanManageProducts, false},
		{"owner can manage users", []string{"owner"}, CanManageUsers, true},
		{"seller cannot manage users", []string{"seller"}, CanManageUsers, false},
		{"anonymous fails everything", nil, CanManageProducts, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.check(reqWithRoles(tc.roles...)); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}
