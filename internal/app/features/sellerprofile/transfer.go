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
	"github.com/emperjs/shopfront/internal/app/system/timeouts"
)

// ServeTransfer handles POST /seller/transfer: start an ownership
// transfer to another member by user id. The transfer completes only
// when the target confirms.
func (h *Handler) ServeTransfer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	profileID := strings.TrimSpace(r.PostFormValue("id"))
	targetUserID := strings.TrimSpace(r.PostFormValue("target_user_id"))
	back := workspaceURL(r.PostFormValue("current_slug"))

	if profileID == "" {
		flash.Error(w, r, "No profile loaded.")
		http.Redirect(w, r, "/seller", http.StatusSeeOther)
		return
	}
	if targetUserID == "" {
		flash.Error(w, r, "Target user id is required.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	result, err := h.Seller.StartOwnershipTransfer(ctx, client.CredentialsFrom(r),
		sellerapi.Selector{ID: profileID}, targetUserID)
	if err != nil {
		h.Log.Warn("ownership transfer failed",
			zap.String("profile_id", profileID), zap.Error(err))
		flash.Error(w, r, client.Message(err, "Failed to create ownership transfer."))
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	flash.Success(w, r, fmt.Sprintf("Transfer request created (%s).", result.Delivery))
	http.Redirect(w, r, back, http.StatusSeeOther)
}
