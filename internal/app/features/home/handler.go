// internal/app/features/home/handler.go
package home

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/app/system/viewdata"
)

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeHome handles GET /.
func (h *Handler) ServeHome(w http.ResponseWriter, r *http.Request) {
	data := viewdata.NewBaseVM(w, r, "", "/")
	templates.Render(w, r, "home", data)
}
