package session

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/emperjs/shopfront/internal/api/authapi"
	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/app/system/normalize"
)

// Load resolves the caller's session once per request and attaches it to
// the context. Lookup failures degrade to anonymous; the page renders
// either way.
//
// cookieName is the auth service's session cookie. When set, requests
// that do not carry it are anonymous by definition and skip the auth
// roundtrip entirely; blank means always ask.
func Load(store *Store, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st := State{Session: authapi.Anonymous()}
			if cookieName != "" {
				if _, err := r.Cookie(cookieName); err != nil {
					next.ServeHTTP(w, WithState(r, st))
					return
				}
			}
			sess, err := store.Resolve(r.Context(), client.CredentialsFrom(r))
			if err != nil {
				st.Err = err.Error()
			} else {
				st.Session = sess
			}
			next.ServeHTTP(w, WithState(r, st))
		})
	}
}

// RequireSignedIn gates a route on an authenticated session.
// If not signed in:
//   - HTMX: sends HX-Redirect to /login?return=...
//   - HTML: 303 redirect to /login?return=...
//   - API:  401 Unauthorized with a plain error body.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := Current(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		redirectToLogin(w, r)
	})
}

// RequireRole gates a route on the session holding at least one of the
// allowed roles. Unauthenticated callers get login-redirect semantics;
// authenticated callers without the role get /forbidden.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := Current(r)
			if !ok {
				redirectToLogin(w, r)
				return
			}

			for _, role := range normalize.Selection(sess.Roles) {
				if _, has := set[role]; has {
					next.ServeHTTP(w, r)
					return
				}
			}

			if r.Header.Get("HX-Request") == "true" {
				w.Header().Set("HX-Redirect", "/forbidden")
				w.WriteHeader(http.StatusForbidden)
				return
			}
			if wantsHTML(r) {
				http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
				return
			}
			http.Error(w, "forbidden", http.StatusForbidden)
		})
	}
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	ret := url.QueryEscape(r.URL.RequestURI())

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/login?return="+ret)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if wantsHTML(r) {
		http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
		return
	}
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

func wantsHTML(r *http.Request) bool {
	if r.Header.Get("HX-Request") == "true" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
