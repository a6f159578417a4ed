package sellerprofile

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/api/sellerapi"
	"github.com/emperjs/shopfront/internal/api/usersapi"
	"github.com/emperjs/shopfront/internal/app/system/flash"
	"github.com/emperjs/shopfront/internal/app/system/normalize"
	"github.com/emperjs/shopfront/internal/app/system/timeouts"
)

// ServeMailSave handles POST /seller/mail: create or replace the
// profile's email provider connection.
func (h *Handler) ServeMailSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	profileID := strings.TrimSpace(r.PostFormValue("id"))
	back := workspaceURL(r.PostFormValue("current_slug"))
	if profileID == "" {
		flash.Error(w, r, "No profile loaded.")
		http.Redirect(w, r, "/seller", http.StatusSeeOther)
		return
	}

	provider := normalize.Selector(r.PostFormValue("provider"))
	if provider != "google" && provider != "microsoft" {
		flash.Error(w, r, "Provider must be google or microsoft.")
		http.Redirect(w, r, back, http.StatusSeeOther)
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

	if _, err := h.Seller.UpsertEmailProvider(ctx, client.CredentialsFrom(r),
		sellerapi.Selector{ID: profileID}, in); err != nil {
		h.Log.Warn("email provider save failed",
			zap.String("profile_id", profileID), zap.Error(err))
		flash.Error(w, r, client.Message(err, "Failed to save email provider settings."))
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	flash.Success(w, r, "Email provider settings saved.")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// ServeMailDelete handles POST /seller/mail/delete.
func (h *Handler) ServeMailDelete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	profileID := strings.TrimSpace(r.PostFormValue("id"))
	back := workspaceURL(r.PostFormValue("current_slug"))
	if profileID == "" {
		flash.Error(w, r, "No profile loaded.")
		http.Redirect(w, r, "/seller", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Seller.DeleteEmailProvider(ctx, client.CredentialsFrom(r),
		sellerapi.Selector{ID: profileID}); err != nil {
		h.Log.Warn("email provider delete failed",
			zap.String("profile_id", profileID), zap.Error(err))
		flash.Error(w, r, client.Message(err, "Failed to remove email provider settings."))
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	flash.Success(w, r, "Email provider settings removed.")
	http.Redirect(w, r, back, http.StatusSeeOther)
}
