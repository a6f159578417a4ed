package testutil

import (
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"

	"github.com/emperjs/shopfront/internal/api/authapi"
	"github.com/emperjs/shopfront/internal/app/session"
)

// TestUser represents session data for testing HTTP handlers.
type TestUser struct {
	ID    string
	Name  string
	Email string
	Roles []string
}

// OwnerUser returns a TestUser with the owner role.
func OwnerUser() TestUser {
	return TestUser{
		ID:    uuid.NewString(),
		Name:  "Test Owner",
		Email: "owner@test.com",
		Roles: []string{"owner"},
	}
}

// AdminUser returns a TestUser with the admin role.
func AdminUser() TestUser {
	return TestUser{
		ID:    uuid.NewString(),
		Name:  "Test Admin",
		Email: "admin@test.com",
		Roles: []string{"admin"},
	}
}

// SellerUser returns a TestUser with the seller role.
func SellerUser() TestUser {
	return TestUser{
		ID:    uuid.NewString(),
		Name:  "Test Seller",
		Email: "seller@test.com",
		Roles: []string{"seller"},
	}
}

// TesterUser returns a TestUser with the tester role.
func TesterUser() TestUser {
	return TestUser{
		ID:    uuid.NewString(),
		Name:  "Test Tester",
		Email: "tester@test.com",
		Roles: []string{"tester"},
	}
}

// WithUser adds a session to the request context for testing authenticated
// handlers. This bypasses the session middleware and injects the session
// directly.
func WithUser(r *http.Request, user TestUser) *http.Request {
	return session.WithState(r, session.State{
		Session: authapi.Session{
			Authenticated: true,
			UserID:        user.ID,
			DisplayName:   user.Name,
			Email:         user.Email,
			Roles:         user.Roles,
		},
	})
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewAuthenticatedRequest creates an HTTP request with a session in context.
func NewAuthenticatedRequest(method, target string, user TestUser) *http.Request {
	return WithUser(httptest.NewRequest(method, target, nil), user)
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertRedirect checks for a redirect to the expected location.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if r.Code != http.StatusSeeOther && r.Code != http.StatusFound && r.Code != http.StatusMovedPermanently {
		t.Errorf("expected redirect status, got %d", r.Code)
	}
	location := r.Header().Get("Location")
	if location != expectedLocation {
		t.Errorf("redirect location: got %q, want %q", location, expectedLocation)
	}
}
