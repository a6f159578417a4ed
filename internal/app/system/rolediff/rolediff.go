// Package rolediff computes which of a user's roles an acting principal
// may edit, and whether an edited role set differs from the server-
// confirmed one.
//
// The allow-lists are fixed: owners manage admin, seller, and tester;
// admins manage seller only. Everything outside the actor's allow-list is
// invisible to the editor and always carried by the server, never by us.
package rolediff

import (
	"github.com/emperjs/shopfront/internal/app/system/normalize"
)

// RoleOwner is the top-level role. Rows holding it are never editable.
const RoleOwner = "owner"

var (
	ownerManaged = []string{"admin", "seller", "tester"}
	adminManaged = []string{"seller"}
)

// AllowedRoles returns the roles the acting principal may grant or
// revoke, in canonical order. Principals that are neither owner nor admin
// manage nothing.
func AllowedRoles(actorRoles []string) []string {
	actor := normalize.Selection(actorRoles)
	if contains(actor, RoleOwner) {
		return append([]string(nil), ownerManaged...)
	}
	if contains(actor, "admin") {
		return append([]string(nil), adminManaged...)
	}
	return nil
}

// ManagedCurrent filters a user's server-confirmed roles down to those
// within the actor's allow-list. This seeds the draft and is the baseline
// for the dirty computation.
func ManagedCurrent(userRoles, allowed []string) []string {
	user := normalize.Selection(userRoles)
	out := make([]string, 0, len(allowed))
	for _, role := range normalize.Selection(allowed) {
		if contains(user, role) {
			out = append(out, role)
		}
	}
	return out
}

// Dirty reports whether the draft differs from the server-confirmed
// managed set, order- and case-insensitively. Save and Reset are enabled
// only while dirty.
func Dirty(draft, current []string) bool {
	return !normalize.EqualSelections(draft, current)
}

// Editable reports whether the actor may edit a row at all. The actor's
// own row and any row holding the owner role are off limits regardless of
// the actor's privileges.
func Editable(actorUserID, rowUserID string, rowRoles, allowed []string) bool {
	if len(allowed) == 0 {
		return false
	}
	if actorUserID != "" && actorUserID == rowUserID {
		return false
	}
	return !contains(normalize.Selection(rowRoles), RoleOwner)
}

// HoldsOwner reports whether a role set includes the owner role.
func HoldsOwner(roles []string) bool {
	return contains(normalize.Selection(roles), RoleOwner)
}

// WithinScope reports whether every role in the draft is inside the
// actor's allow-list. A draft that reaches outside is rejected before any
// request is made.
func WithinScope(draft, allowed []string) bool {
	allow := normalize.Selection(allowed)
	for _, role := range normalize.Selection(draft) {
		if !contains(allow, role) {
			return false
		}
	}
	return true
}

func contains(sorted []string, v string) bool {
	for _, s := range sorted {
		if s == v {
			return true
		}
	}
	return false
}
