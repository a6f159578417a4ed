package adminusers

import (
	"net/http"
	"strings"

	"github.com/emperjs/shopfront/internal/app/system/flash"
)

// safeBack keeps redirect targets on-site. Anything that is not a local
// absolute path falls back to the console root.
func safeBack(back, fallback string) string {
	if !strings.HasPrefix(back, "/") || strings.HasPrefix(back, "//") {
		return fallback
	}
	return back
}

func (h *Handler) redirectWithSuccess(w http.ResponseWriter, r *http.Request, back, msg string) {
	flash.Success(w, r, msg)
	http.Redirect(w, r, safeBack(back, "/admin/users"), http.StatusSeeOther)
}

func (h *Handler) redirectWithError(w http.ResponseWriter, r *http.Request, back, msg string) {
	flash.Error(w, r, msg)
	http.Redirect(w, r, safeBack(back, "/admin/users"), http.StatusSeeOther)
}
