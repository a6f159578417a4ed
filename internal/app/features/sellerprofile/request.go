package sellerprofile

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/app/system/flash"
	"github.com/emperjs/shopfront/internal/app/system/normalize"
	"github.com/emperjs/shopfront/internal/app/system/timeouts"
)

// ServeRequestCreate handles POST /seller/request: submit a new
// seller-profile access request for admin review.
func (h *Handler) ServeRequestCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	slug := normalize.Slug(r.PostFormValue("slug"))
	displayName := strings.TrimSpace(r.PostFormValue("display_name"))
	note := strings.TrimSpace(r.PostFormValue("note"))

	if slug == "" || displayName == "" {
		flash.Error(w, r, "Slug and display name are required.")
		http.Redirect(w, r, "/seller", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Seller.CreateRequest(ctx, client.CredentialsFrom(r), slug, displayName, note)
	if err != nil {
		h.Log.Warn("seller profile request failed", zap.String("slug", slug), zap.Error(err))
		flash.Error(w, r, client.Message(err, "Failed to submit request."))
		http.Redirect(w, r, "/seller", http.StatusSeeOther)
		return
	}

	flash.Success(w, r, fmt.Sprintf("Request submitted: %s", created.ID))
	http.Redirect(w, r, "/seller", http.StatusSeeOther)
}
