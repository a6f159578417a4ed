package adminusers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the admin console routes. The mount point requires the
// admin or owner role; the system mail writes check owner themselves.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/admin/requests", http.StatusSeeOther)
	})
	r.Get("/requests", h.ServeRequests)
	r.Post("/requests/review", h.ServeRequestReview)
	r.Get("/users", h.ServeUsers)
	r.Post("/users/roles", h.ServeRolesSave)
	r.Post("/users/preview", h.ServeFilterPreview)
	r.Post("/mail", h.ServeSystemMailSave)
	r.Post("/mail/delete", h.ServeSystemMailDelete)
	return r
}
