package sellerprofile

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/api/sellerapi"
	"github.com/emperjs/shopfront/internal/api/usersapi"
	"github.com/emperjs/shopfront/internal/app/session"
	"github.com/emperjs/shopfront/internal/app/system/authz"
	"github.com/emperjs/shopfront/internal/app/system/normalize"
	"github.com/emperjs/shopfront/internal/app/system/timeouts"
	"github.com/emperjs/shopfront/internal/app/system/viewdata"
)

type workspaceData struct {
	viewdata.BaseVM

	Selector  string
	LoadError string

	Profile *sellerapi.Profile
	Members []sellerapi.Member
	Invites []sellerapi.Invite
	Mail    mailForm

	CanEditIdentity  bool
	CanManageTeam    bool
	CanTransfer      bool
	CanConfigureMail bool
}

// mailForm mirrors the email provider connection into form fields, with
// defaults for the unconfigured case.
type mailForm struct {
	Configured   bool
	Provider     string
	AccountEmail string
	SenderEmail  string
	SenderName   string
	Status       string
}

func newMailForm(conn *usersapi.Connection) mailForm {
	if conn == nil {
		return mailForm{Provider: "microsoft", Status: "active"}
	}
	return mailForm{
		Configured:   true,
		Provider:     conn.Provider,
		AccountEmail: conn.AccountEmail,
		SenderEmail:  conn.SenderEmail,
		SenderName:   conn.SenderName,
		Status:       conn.Status,
	}
}

// ServeWorkspace handles GET /seller. Without a slug it shows the
// request and load forms; with one it loads the profile bundle. Members,
// invites, and the email provider degrade to empty on failure so a
// partial outage still shows the profile.
func (h *Handler) ServeWorkspace(w http.ResponseWriter, r *http.Request) {
	data := workspaceData{
		BaseVM:   viewdata.NewBaseVM(w, r, "Seller profile", "/"),
		Selector: normalize.Selector(query.Get(r, "slug")),
		Mail:     newMailForm(nil),
	}

	if data.Selector == "" {
		templates.Render(w, r, "seller_workspace", data)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	creds := client.CredentialsFrom(r)
	sel := sellerapi.Selector{Slug: data.Selector}

	profile, err := h.Seller.Profile(ctx, creds, sel)
	if err != nil {
		h.Log.Warn("seller profile load failed",
			zap.String("slug", data.Selector), zap.Error(err))
		data.LoadError = client.Message(err, "Failed to load seller profile.")
		templates.Render(w, r, "seller_workspace", data)
		return
	}
	data.Profile = &profile

	if members, err := h.Seller.Members(ctx, creds, sel); err == nil {
		data.Members = members
	} else {
		h.Log.Debug("members unavailable", zap.Error(err))
	}
	if invites, err := h.Seller.Invites(ctx, creds, sel); err == nil {
		data.Invites = invites
	} else {
		h.Log.Debug("invites unavailable", zap.Error(err))
	}
	if conn, err := h.Seller.EmailProvider(ctx, creds, sel); err == nil {
		data.Mail = newMailForm(conn)
	} else {
		h.Log.Debug("email provider unavailable", zap.Error(err))
	}

	h.applyCapabilities(&data, r)
	templates.Render(w, r, "seller_workspace", data)
}

// applyCapabilities derives what the signed-in user may do with the
// loaded profile. A site owner can do everything; otherwise capability
// follows the user's membership role on this profile.
func (h *Handler) applyCapabilities(data *workspaceData, r *http.Request) {
	siteOwner := authz.IsOwner(r)

	memberRole := ""
	if sess, ok := session.Current(r); ok {
		for _, m := range data.Members {
			if m.UserID == sess.UserID {
				memberRole = m.Role
				break
			}
		}
	}

	data.CanEditIdentity = siteOwner || memberRole == "owner"
	data.CanManageTeam = siteOwner || memberRole == "owner" || memberRole == "admin"
	data.CanTransfer = siteOwner || memberRole == "owner"
	data.CanConfigureMail = siteOwner || memberRole == "owner"
}

// workspaceURL is the redirect target after a mutation, reloading the
// workspace for the given slug.
func workspaceURL(slug string) string {
	slug = normalize.Selector(slug)
	if slug == "" {
		return "/seller"
	}
	return "/seller?slug=" + url.QueryEscape(slug)
}
