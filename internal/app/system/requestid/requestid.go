// Package requestid tags every request with an X-Request-ID for log
// correlation across the app and the storefront API.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey struct{}

// Middleware ensures each request has a request ID. It reads X-Request-ID
// if provided; otherwise it generates a UUID. The value is stored in
// context and echoed in the response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx := context.WithValue(r.Context(), ctxKey{}, rid)
		w.Header().Set("X-Request-ID", rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromRequest returns the request ID, or "" if the middleware did not run.
func FromRequest(r *http.Request) string {
	rid, _ := r.Context().Value(ctxKey{}).(string)
	return rid
}

// Field returns the request ID as a zap field for log correlation.
func Field(r *http.Request) zap.Field {
	return zap.String("request_id", FromRequest(r))
}
