package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, zap.NewNop())
}

func TestGetJSON_ForwardsCookies(t *testing.T) {
	var gotCookie string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte(`{"ok":true}`))
	})

	var out struct {
		OK bool `json:"ok"`
	}
	err := c.GetJSON(context.Background(), Credentials("sid=abc; theme=dark"), "/ping", nil, &out)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if gotCookie != "sid=abc; theme=dark" {
		t.Fatalf("cookie header = %q", gotCookie)
	}
	if !out.OK {
		t.Fatal("response not decoded")
	}
}

func TestGetJSON_AnonymousSendsNoCookie(t *testing.T) {
	var hadCookie bool
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hadCookie = r.Header["Cookie"]
		w.Write([]byte(`{}`))
	})

	if err := c.GetJSON(context.Background(), "", "/ping", nil, &struct{}{}); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if hadCookie {
		t.Fatal("anonymous request must not carry a Cookie header")
	}
}

func TestNon2xx_ErrorCarriesRawBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slug already taken", http.StatusConflict)
	})

	err := c.GetJSON(context.Background(), "", "/thing", nil, &struct{}{})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := Message(err, "fallback"); got != "slug already taken" {
		t.Fatalf("Message = %q", got)
	}
	if !IsStatus(err, http.StatusConflict) {
		t.Fatalf("IsStatus(409) false for %v", err)
	}
}

func TestNon2xx_EmptyBodyFallsBackToStatusText(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := c.GetJSON(context.Background(), "", "/thing", nil, &struct{}{})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != http.StatusText(http.StatusBadGateway) {
		t.Fatalf("Error() = %q", got)
	}
}

func TestSendJSON_SetsContentType(t *testing.T) {
	var gotCT, gotMethod string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		gotMethod = r.Method
		w.Write([]byte(`{}`))
	})

	body := map[string]string{"name": "x"}
	if err := c.SendJSON(context.Background(), "", "PATCH", "/thing", nil, body, nil); err != nil {
		t.Fatalf("SendJSON: %v", err)
	}
	if gotMethod != "PATCH" {
		t.Fatalf("method = %q", gotMethod)
	}
	if gotCT != "application/json" {
		t.Fatalf("content type = %q", gotCT)
	}
}
