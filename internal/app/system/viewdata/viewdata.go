// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"

	"github.com/emperjs/shopfront/internal/app/session"
	"github.com/emperjs/shopfront/internal/app/system/authz"
	"github.com/emperjs/shopfront/internal/app/system/flash"
)

// SiteName is the storefront's display name.
const SiteName = "Emper Shop"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type catalogPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := catalogPageData{
//	    BaseVM: viewdata.NewBaseVM(w, r, "Shop", "/"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName string

	// Session context (from session.Load middleware)
	IsLoggedIn   bool
	UserName     string
	Roles        []string
	SessionError string

	// Navigation gates
	IsAdmin           bool
	CanManageProducts bool

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string

	// One-shot notices drained from the flash cookie
	Notices []flash.Notice
}

// NewBaseVM creates a fully populated BaseVM for a page. Draining the
// flash cookie writes a Set-Cookie header, so call it before rendering.
//
// Parameters:
//   - w: the response writer (flash drain)
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(w http.ResponseWriter, r *http.Request, title, backDefault string) BaseVM {
	roles, name, _, signedIn := authz.UserCtx(r)
	st := session.StateFrom(r)

	return BaseVM{
		SiteName:          SiteName,
		IsLoggedIn:        signedIn,
		UserName:          displayName(name, st),
		Roles:             roles,
		SessionError:      st.Err,
		IsAdmin:           authz.IsAdmin(r),
		CanManageProducts: authz.CanManageProducts(r),
		Title:             title,
		BackURL:           httpnav.ResolveBackURL(r, backDefault),
		CurrentPath:       httpnav.CurrentPath(r),
		CSRFToken:         csrf.Token(r),
		Notices:           flash.Pop(w, r),
	}
}

func displayName(name string, st session.State) string {
	if name != "" {
		return name
	}
	return st.Session.Email
}
