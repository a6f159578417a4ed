// internal/app/features/logout/handler.go
package logout

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/authapi"
	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/app/session"
	"github.com/emperjs/shopfront/internal/app/system/flash"
	"github.com/emperjs/shopfront/internal/app/system/timeouts"
)

type Handler struct {
	Auth     *authapi.Client
	Sessions *session.Store
	Log      *zap.Logger
}

func NewHandler(auth *authapi.Client, sessions *session.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:     auth,
		Sessions: sessions,
		Log:      logger,
	}
}

// ServeLogout handles POST /logout.
//
// The session lives at the auth service, so sign-out is an API call with
// the caller's cookies. On failure the session is left untouched: we
// surface the error and return the caller to where they were, sign-out
// control intact.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Auth.Logout(ctx, client.CredentialsFrom(r)); err != nil {
		h.Log.Warn("logout failed", zap.Error(err))
		flash.Error(w, r, "Sign out failed: "+client.Message(err, "the sign-in service did not respond")+". You are still signed in.")
		h.redirect(w, r, backTarget(r))
		return
	}

	h.Sessions.Publish()
	flash.Success(w, r, "You have been signed out.")
	h.redirect(w, r, "/")
}

// HTMX handling: use HX-Redirect to force a client-side navigation.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, dest string) {
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", dest)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func backTarget(r *http.Request) string {
	if ref := r.Header.Get("Referer"); ref != "" {
		return ref
	}
	return "/"
}
