// Package session loads the caller's remote session into request context
// and gates routes on it.
//
// The session record lives in the auth service; this package never stores
// identity locally. A failed lookup degrades to an anonymous session with
// the error kept alongside, so pages still render.
package session

import (
	"context"
	"net/http"

	"github.com/emperjs/shopfront/internal/api/authapi"
)

// State is what Load attaches to the request context: the resolved
// session plus the lookup error, if any. Err set means Session is the
// anonymous fallback, not a confirmed sign-out.
type State struct {
	Session authapi.Session
	Err     string
}

type ctxKey struct{}

// Current returns the session for the request. ok reports whether the
// caller is authenticated; an anonymous or missing session returns the
// zero Session and false.
func Current(r *http.Request) (authapi.Session, bool) {
	st, found := r.Context().Value(ctxKey{}).(State)
	if !found || !st.Session.Authenticated {
		return authapi.Session{}, false
	}
	return st.Session, true
}

// StateFrom returns the full load state, including any lookup error.
func StateFrom(r *http.Request) State {
	st, found := r.Context().Value(ctxKey{}).(State)
	if !found {
		return State{Session: authapi.Anonymous()}
	}
	return st
}

// WithState returns a request carrying the given state. Handler tests use
// this to skip the Load middleware.
func WithState(r *http.Request, st State) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ctxKey{}, st))
}
