package sellerprofile

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/api/sellerapi"
	"github.com/emperjs/shopfront/internal/app/system/flash"
	"github.com/emperjs/shopfront/internal/app/system/normalize"
	"github.com/emperjs/shopfront/internal/app/system/timeouts"
)

// ServeIdentityUpdate handles POST /seller/profile: patch the loaded
// profile's slug, display name, and member-list visibility. Redirects to
// the updated slug so the reload finds the renamed profile.
func (h *Handler) ServeIdentityUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	profileID := strings.TrimSpace(r.PostFormValue("id"))
	backSlug := r.PostFormValue("current_slug")
	if profileID == "" {
		flash.Error(w, r, "No profile loaded.")
		http.Redirect(w, r, "/seller", http.StatusSeeOther)
		return
	}

	slug := normalize.Slug(r.PostFormValue("slug"))
	displayName := strings.TrimSpace(r.PostFormValue("display_name"))
	memberListPublic := r.PostFormValue("member_list_public") != ""

	if slug == "" || displayName == "" {
		flash.Error(w, r, "Slug and display name are required.")
		http.Redirect(w, r, workspaceURL(backSlug), http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	patch := sellerapi.ProfilePatch{
		Slug:               &slug,
		DisplayName:        &displayName,
		IsMemberListPublic: &memberListPublic,
	}
	updated, err := h.Seller.UpdateProfile(ctx, client.CredentialsFrom(r),
		sellerapi.Selector{ID: profileID}, patch)
	if err != nil {
		h.Log.Warn("seller profile update failed",
			zap.String("profile_id", profileID), zap.Error(err))
		flash.Error(w, r, client.Message(err, "Failed to update seller profile."))
		http.Redirect(w, r, workspaceURL(backSlug), http.StatusSeeOther)
		return
	}

	flash.Success(w, r, "Seller profile updated.")
	http.Redirect(w, r, workspaceURL(updated.Slug), http.StatusSeeOther)
}
