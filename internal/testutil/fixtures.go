package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// FakeAPI starts an httptest server standing in for the storefront API.
// Routes map "METHOD /path" to a handler; unmatched requests 404 with a
// test failure message in the body.
func FakeAPI(t *testing.T, routes map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := routes[r.Method+" "+r.URL.Path]; ok {
			h(w, r)
			return
		}
		t.Errorf("unexpected API call: %s %s", r.Method, r.URL.Path)
		http.Error(w, "unexpected call", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// JSONHandler responds 200 with the JSON encoding of v.
func JSONHandler(v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
}

// ErrorHandler responds with the given status and a plain-text body, the
// way the storefront API reports failures.
func ErrorHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, body, status)
	}
}
