package products

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the product management routes. Access is restricted at
// the mount point to roles that can manage products.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.ServeCreate)
	r.Post("/delete", h.ServeDelete)
	return r
}
