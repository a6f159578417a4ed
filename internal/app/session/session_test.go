package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/authapi"
	"github.com/emperjs/shopfront/internal/api/client"
)

func testStore(t *testing.T, handler http.HandlerFunc) *Store {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	core := client.New(srv.URL, 5*time.Second, zap.NewNop())
	return NewStore(authapi.New(core), zap.NewNop())
}

func TestResolve_AuthenticatedSession(t *testing.T) {
	store := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/session" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"authenticated":true,"userId":"u1","roles":["seller"],"email":"a@b.c"}`))
	})

	sess, err := store.Resolve(context.Background(), "sid=abc")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !sess.Authenticated || sess.UserID != "u1" {
		t.Fatalf("session = %+v", sess)
	}
}

func TestResolve_FailureDegradesToAnonymous(t *testing.T) {
	store := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "auth service down", http.StatusBadGateway)
	})

	sess, err := store.Resolve(context.Background(), "sid=abc")
	if err == nil {
		t.Fatal("expected error")
	}
	if sess.Authenticated {
		t.Fatal("failed lookup must degrade to anonymous")
	}
}

func TestResolve_ReturnsCallerOwnSession(t *testing.T) {
	store := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("Cookie") {
		case "sid=alice":
			w.Write([]byte(`{"authenticated":true,"userId":"alice"}`))
		case "sid=bob":
			w.Write([]byte(`{"authenticated":true,"userId":"bob"}`))
		default:
			w.Write([]byte(`{"authenticated":false}`))
		}
	})

	alice, err := store.Resolve(context.Background(), "sid=alice")
	if err != nil {
		t.Fatalf("Resolve alice: %v", err)
	}
	bob, err := store.Resolve(context.Background(), "sid=bob")
	if err != nil {
		t.Fatalf("Resolve bob: %v", err)
	}

	// Each caller gets exactly their own session; the store keeps no
	// shared last-resolved copy that one user could read of another.
	if alice.UserID != "alice" || bob.UserID != "bob" {
		t.Fatalf("sessions mixed: alice=%q bob=%q", alice.UserID, bob.UserID)
	}
}

func TestSubscribe_PublishSignalsAndCancelStops(t *testing.T) {
	store := testStore(t, func(w http.ResponseWriter, r *http.Request) {})

	ch, cancel := store.Subscribe()
	store.Publish()
	select {
	case <-ch:
	default:
		t.Fatal("subscriber should have been signaled")
	}

	cancel()
	store.Publish()
	select {
	case <-ch:
		t.Fatal("cancelled subscriber must not be signaled")
	default:
	}
}

func TestLoad_AttachesStateAndError(t *testing.T) {
	store := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	var got State
	h := Load(store, "sid")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = StateFrom(r)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "abc"})
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got.Session.Authenticated {
		t.Fatal("degraded session must be anonymous")
	}
	if got.Err == "" {
		t.Fatal("lookup error must be recorded")
	}
}

func TestLoad_SkipsLookupWithoutSessionCookie(t *testing.T) {
	store := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no session cookie: the auth service must not be asked")
	})

	var got State
	h := Load(store, "sid")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = StateFrom(r)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got.Session.Authenticated {
		t.Fatal("cookieless request must be anonymous")
	}
	if got.Err != "" {
		t.Fatalf("cookieless request is not an error, got %q", got.Err)
	}
}

func TestLoad_BlankCookieNameAlwaysResolves(t *testing.T) {
	asked := false
	store := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		asked = true
		w.Write([]byte(`{"authenticated":false}`))
	})

	h := Load(store, "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !asked {
		t.Fatal("blank cookie name must always resolve")
	}
}

func TestRequireSignedIn_RedirectsHTML(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/shop?page=2", nil)
	req.Header.Set("Accept", "text/html")

	RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/login?return=%2Fshop%3Fpage%3D2" {
		t.Fatalf("location = %q", loc)
	}
}

func TestRequireSignedIn_HTMXRedirectHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/shop", nil)
	req.Header.Set("HX-Request", "true")

	RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Header().Get("HX-Redirect") == "" {
		t.Fatal("HX-Redirect not set")
	}
}

func TestRequireRole(t *testing.T) {
	signedIn := func(roles ...string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Accept", "text/html")
		return WithState(req, State{Session: authapi.Session{Authenticated: true, UserID: "u1", Roles: roles}})
	}

	t.Run("allowed role passes", func(t *testing.T) {
		rr := httptest.NewRecorder()
		var ran bool
		RequireRole("admin", "owner")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ran = true
		})).ServeHTTP(rr, signedIn("Admin"))
		if !ran {
			t.Fatal("handler should run for admin")
		}
	})

	t.Run("wrong role forbidden", func(t *testing.T) {
		rr := httptest.NewRecorder()
		RequireRole("admin", "owner")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		})).ServeHTTP(rr, signedIn("tester"))
		if rr.Code != http.StatusSeeOther {
			t.Fatalf("status = %d", rr.Code)
		}
		if loc := rr.Header().Get("Location"); loc != "/forbidden" {
			t.Fatalf("location = %q", loc)
		}
	})
}
