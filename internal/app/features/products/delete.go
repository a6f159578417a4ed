package products

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/app/system/flash"
	"github.com/emperjs/shopfront/internal/app/system/timeouts"
)

// ServeDelete handles POST /products/delete. The success notice reports
// what the API cleaned up alongside the product record.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	id := strings.TrimSpace(r.PostFormValue("id"))
	if id == "" {
		flash.Error(w, r, "No product selected.")
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	result, err := h.Shop.Delete(ctx, client.CredentialsFrom(r), id)
	if err != nil {
		h.Log.Warn("product delete failed", zap.String("product_id", id), zap.Error(err))
		flash.Error(w, r, client.Message(err, "Delete failed."))
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}

	flash.Success(w, r, fmt.Sprintf(
		"Deleted %q. Image metadata removed: %d. Orphan tags removed: %d.",
		result.Deleted.Name,
		result.Cleanup.DeletedImageMetadataCount,
		result.Cleanup.DeletedUnreferencedTags,
	))
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}
