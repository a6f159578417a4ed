package sellerprofile

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the seller workspace routes. The mount point requires a
// signed-in session with the seller, admin, or owner role.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeWorkspace)
	r.Post("/request", h.ServeRequestCreate)
	r.Post("/profile", h.ServeIdentityUpdate)
	r.Post("/invites", h.ServeInviteCreate)
	r.Post("/invites/revoke", h.ServeInviteRevoke)
	r.Post("/transfer", h.ServeTransfer)
	r.Post("/mail", h.ServeMailSave)
	r.Post("/mail/delete", h.ServeMailDelete)
	return r
}
