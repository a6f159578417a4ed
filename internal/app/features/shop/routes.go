package shop

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the public catalog routes.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeCatalog)
	r.Post("/preview", h.ServePreview)
	return r
}
