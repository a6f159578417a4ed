package health

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/authapi"
	"github.com/emperjs/shopfront/internal/app/system/timeouts"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Auth *authapi.Client
	Log  *zap.Logger
}

// NewHandler constructs a health Handler with the auth client and logger.
func NewHandler(auth *authapi.Client, logger *zap.Logger) *Handler {
	return &Handler{Auth: auth, Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	API     string `json:"api"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "api":"reachable" }
//
// On storefront API failure: 503 and
//
//	{ "status":"error", "api":"unreachable", "message":"Storefront API unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	// An anonymous session fetch doubles as the reachability probe: it
	// must answer 200 whether or not anyone is signed in.
	if _, err := h.Auth.Session(ctx, ""); err != nil {
		h.Log.Error("health-check: storefront api unreachable", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:  "error",
			API:     "unreachable",
			Message: "Storefront API unavailable",
			Error:   err.Error(),
		})
		return
	}

	_ = json.NewEncoder(w).Encode(healthResponse{Status: "ok", API: "reachable"})
}
