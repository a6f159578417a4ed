package sellerprofile

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/api/sellerapi"
	"github.com/emperjs/shopfront/internal/app/system/flash"
	"github.com/emperjs/shopfront/internal/app/system/normalize"
	"github.com/emperjs/shopfront/internal/app/system/timeouts"
)

// ServeInviteCreate handles POST /seller/invites. The success notice
// distinguishes an existing account added on the spot from an invite
// whose email delivery was queued or skipped.
func (h *Handler) ServeInviteCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	profileID := strings.TrimSpace(r.PostFormValue("id"))
	backSlug := r.PostFormValue("current_slug")
	email := normalize.Email(r.PostFormValue("email"))
	role := normalize.Selector(r.PostFormValue("role"))

	back := workspaceURL(backSlug)
	if profileID == "" {
		flash.Error(w, r, "No profile loaded.")
		http.Redirect(w, r, "/seller", http.StatusSeeOther)
		return
	}
	if email == "" {
		flash.Error(w, r, "Invite email is required.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}
	if role != "admin" && role != "member" {
		role = "member"
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	result, err := h.Seller.CreateInvite(ctx, client.CredentialsFrom(r),
		sellerapi.Selector{ID: profileID}, email, role)
	if err != nil {
		h.Log.Warn("invite create failed",
			zap.String("profile_id", profileID), zap.Error(err))
		flash.Error(w, r, client.Message(err, "Failed to create invite."))
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	if result.AcceptedImmediately {
		flash.Success(w, r, "User existed and was added immediately.")
	} else {
		flash.Success(w, r, fmt.Sprintf("Invite created (%s).", result.Delivery))
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// ServeInviteRevoke handles POST /seller/invites/revoke. Only pending
// invites can be revoked; the API rejects anything else.
func (h *Handler) ServeInviteRevoke(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	inviteID := strings.TrimSpace(r.PostFormValue("invite_id"))
	back := workspaceURL(r.PostFormValue("current_slug"))
	if inviteID == "" {
		flash.Error(w, r, "No invite selected.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Seller.RevokeInvite(ctx, client.CredentialsFrom(r), inviteID); err != nil {
		h.Log.Warn("invite revoke failed", zap.String("invite_id", inviteID), zap.Error(err))
		flash.Error(w, r, client.Message(err, "Failed to revoke invite."))
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	flash.Success(w, r, "Invite revoked.")
	http.Redirect(w, r, back, http.StatusSeeOther)
}
