// internal/app/features/login/handler.go
package login

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/authapi"
	"github.com/emperjs/shopfront/internal/app/session"
	"github.com/emperjs/shopfront/internal/app/system/viewdata"
)

type Handler struct {
	Auth    *authapi.Client
	BaseURL string
	Log     *zap.Logger
}

// NewHandler constructs a login Handler. baseURL is this app's external
// origin; the auth service redirects back to it after sign-in.
func NewHandler(auth *authapi.Client, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:    auth,
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Log:     logger,
	}
}

type pageData struct {
	viewdata.BaseVM
	GoogleURL    string
	MicrosoftURL string
}

// ServeLogin handles GET /login. Sign-in happens entirely at the auth
// service; this page only offers the provider start links. An already
// signed-in caller is sent home.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := session.Current(r); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	returnTo := h.returnTarget(query.Get(r, "return"))
	data := pageData{
		BaseVM:       viewdata.NewBaseVM(w, r, "Sign in", "/"),
		GoogleURL:    h.Auth.LoginStartURL(authapi.ProviderGoogle, returnTo),
		MicrosoftURL: h.Auth.LoginStartURL(authapi.ProviderMicrosoft, returnTo),
	}
	templates.Render(w, r, "login", data)
}

// returnTarget turns the relative return param into an absolute URL on
// this app. Absolute or protocol-relative values are rejected so the
// auth service can never be pointed off-site.
func (h *Handler) returnTarget(ret string) string {
	if ret == "" || !strings.HasPrefix(ret, "/") || strings.HasPrefix(ret, "//") {
		ret = "/"
	}
	return h.BaseURL + ret
}
