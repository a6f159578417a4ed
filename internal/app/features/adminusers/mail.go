package adminusers

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/api/usersapi"
	uierrors "github.com/emperjs/shopfront/internal/app/features/errors"
	"github.com/emperjs/shopfront/internal/app/system/authz"
	"github.com/emperjs/shopfront/internal/app/system/normalize"
	"github.com/emperjs/shopfront/internal/app/system/timeouts"
)

// ServeSystemMailSave handles POST /admin/mail. Only owners may change
// the system-wide fallback sender.
func (h *Handler) ServeSystemMailSave(w http.ResponseWriter, r *http.Request) {
	if !authz.IsOwner(r) {
		uierrors.RenderForbidden(w, r, "Only the owner can change the system email provider.")
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	provider := normalize.Selector(r.PostFormValue("provider"))
	if provider != "google" && provider != "microsoft" {
		h.redirectWithError(w, r, "/admin/requests", "Provider must be google or microsoft.")
		return
	}
	status := normalize.Selector(r.PostFormValue("status"))
	if status != "active" && status != "inactive" {
		status = "active"
	}

	in := usersapi.ConnectionInput{
		Provider:     provider,
		AccountEmail: normalize.Email(r.PostFormValue("account_email")),
		SenderEmail:  normalize.Email(r.PostFormValue("sender_email")),
		SenderName:   strings.TrimSpace(r.PostFormValue("sender_name")),
		Status:       status,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Users.UpsertSystemEmailProvider(ctx, client.CredentialsFrom(r), in); err != nil {
		h.Log.Warn("system email provider save failed", zap.Error(err))
		h.redirectWithError(w, r, "/admin/requests",
			client.Message(err, "Failed to save system email provider settings."))
		return
	}

	h.redirectWithSuccess(w, r, "/admin/requests", "System email provider settings saved.")
}

// ServeSystemMailDelete handles POST /admin/mail/delete.
func (h *Handler) ServeSystemMailDelete(w http.ResponseWriter, r *http.Request) {
	if !authz.IsOwner(r) {
		uierrors.RenderForbidden(w, r, "Only the owner can change the system email provider.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Users.DeleteSystemEmailProvider(ctx, client.CredentialsFrom(r)); err != nil {
		h.Log.Warn("system email provider delete failed", zap.Error(err))
		h.redirectWithError(w, r, "/admin/requests",
			client.Message(err, "Failed to remove system email provider settings."))
		return
	}

	h.redirectWithSuccess(w, r, "/admin/requests", "System email provider settings removed.")
}
