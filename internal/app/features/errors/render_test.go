package errors_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	uierrors "github.com/emperjs/shopfront/internal/app/features/errors"
	"github.com/emperjs/shopfront/internal/app/system/requestid"
	"github.com/emperjs/shopfront/internal/testutil"
)

func TestServerError_LogsRequestID(t *testing.T) {
	testutil.BootTemplates(t)
	core, logs := observer.New(zap.WarnLevel)
	errLog := uierrors.NewErrorLogger(zap.New(core))

	rec := httptest.NewRecorder()
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		errLog.ServerError(w, r, "list products", fmt.Errorf("boom"))
	}))
	req := httptest.NewRequest("GET", "/products", nil)
	req.Header.Set("X-Request-ID", "req-123")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("log entries: got %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if got := fields["request_id"]; got != "req-123" {
		t.Errorf("request_id field: got %v, want %q", got, "req-123")
	}
}

func TestAPIError_LogsRequestID(t *testing.T) {
	testutil.BootTemplates(t)
	core, logs := observer.New(zap.WarnLevel)
	errLog := uierrors.NewErrorLogger(zap.New(core))

	rec := httptest.NewRecorder()
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		errLog.APIError(w, r, "load profile", fmt.Errorf("remote said no"))
	}))
	req := httptest.NewRequest("GET", "/seller", nil)
	req.Header.Set("X-Request-ID", "req-456")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadGateway)
	}
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("log entries: got %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-456" {
		t.Errorf("request_id field: got %v, want %q", got, "req-456")
	}
}
