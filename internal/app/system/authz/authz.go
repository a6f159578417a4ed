// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/emperjs/shopfront/internal/app/session"
)

// UserCtx returns the caller's roles (lowercased), display name, user ID,
// and a found flag. ok=false means anonymous; callers can trust ok=true
// means an authenticated session.
func UserCtx(r *http.Request) (roles []string, name string, userID string, ok bool) {
	sess, ok := session.Current(r)
	if !ok {
		return nil, "", "", false
	}
	roles = make([]string, 0, len(sess.Roles))
	for _, role := range sess.Roles {
		roles = append(roles, strings.ToLower(strings.TrimSpace(role)))
	}
	return roles, sess.DisplayName, sess.UserID, true
}

// HasAnyRole reports whether the caller holds any of the given roles.
// Returns false if no user is present (i.e., not signed in).
func HasAnyRole(r *http.Request, want ...string) bool {
	roles, _, _, ok := UserCtx(r)
	if !ok {
		return false
	}
	for _, w := range want {
		w = strings.ToLower(strings.TrimSpace(w))
		for _, have := range roles {
			if have == w {
				return true
			}
		}
	}
	return false
}

// HasRole is a convenience wrapper for a single role.
func HasRole(r *http.Request, role string) bool {
	return HasAnyRole(r, role)
}

// IsOwner reports whether the caller holds the owner role.
func IsOwner(r *http.Request) bool {
	return HasAnyRole(r, "owner")
}

// IsAdmin reports whether the caller can use the administration console.
// Note: owners are also considered admins for permission purposes.
func IsAdmin(r *http.Request) bool {
	return HasAnyRole(r, "admin", "owner")
}

// IsSeller reports whether the caller holds the seller role.
func IsSeller(r *http.Request) bool {
	return HasAnyRole(r, "seller")
}

// CanManageProducts reports whether the caller may create and delete
// catalog products.
func CanManageProducts(r *http.Request) bool {
	return HasAnyRole(r, "admin", "owner", "seller")
}

// CanManageUsers reports whether the caller may edit role assignments.
func CanManageUsers(r *http.Request) bool {
	return IsAdmin(r)
}
