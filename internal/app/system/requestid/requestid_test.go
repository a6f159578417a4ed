package requestid

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddleware_GeneratesWhenMissing(t *testing.T) {
	var got string
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromRequest(r)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if got == "" {
		t.Fatal("request ID not generated")
	}
	if rr.Header().Get("X-Request-ID") != got {
		t.Fatal("response header does not match context value")
	}
}

func TestMiddleware_PreservesCallerID(t *testing.T) {
	var got string
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromRequest(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-77")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got != "upstream-77" {
		t.Fatalf("request ID = %q", got)
	}
}
