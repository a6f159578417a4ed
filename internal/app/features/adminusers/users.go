package adminusers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/api/usersapi"
	uierrors "github.com/emperjs/shopfront/internal/app/features/errors"
	"github.com/emperjs/shopfront/internal/app/system/authz"
	"github.com/emperjs/shopfront/internal/app/system/filterstate"
	"github.com/emperjs/shopfront/internal/app/system/normalize"
	"github.com/emperjs/shopfront/internal/app/system/paging"
	"github.com/emperjs/shopfront/internal/app/system/rolediff"
	"github.com/emperjs/shopfront/internal/app/system/timeouts"
	"github.com/emperjs/shopfront/internal/app/system/viewdata"
)

type usersData struct {
	viewdata.BaseVM

	Filters   filterstate.UserFilters
	Providers []checkOptionVM
	RoleNames []checkOptionVM

	Rows      []userRowVM
	Nav       paging.Nav
	Total     int
	LoadError string

	// Back is the canonical URL of this table view, used by row forms to
	// return to the same filters and page.
	Back string

	FilterStatus filterStatusVM
}

type userRowVM struct {
	ID     string
	Name   string
	Email  string
	Roles  []string
	Active bool

	Editable bool
	Hint     string
	Editor   []roleCheckVM
}

type roleCheckVM struct {
	Role    string
	Checked bool
}

type checkOptionVM struct {
	Value   string
	Checked bool
}

func checkOptions(values, selected []string) []checkOptionVM {
	chosen := make(map[string]bool, len(selected))
	for _, v := range selected {
		chosen[v] = true
	}
	out := make([]checkOptionVM, 0, len(values))
	for _, v := range normalize.Selection(values) {
		out = append(out, checkOptionVM{Value: v, Checked: chosen[v]})
	}
	return out
}

type filterStatusVM struct {
	Pending bool
}

// parseUserFilters reads the committed admin filters and page index from
// the query string. pages is the last-known page count carried on
// pagination links; zero means unknown.
func parseUserFilters(r *http.Request) (f filterstate.UserFilters, page, pages int) {
	f = filterstate.UserFilters{
		Name:          query.Search(r, "name"),
		Email:         query.Get(r, "email"),
		SellerProfile: query.Get(r, "seller_profile"),
		Providers:     normalize.CSV(query.Get(r, "providers")),
		Roles:         normalize.CSV(query.Get(r, "roles")),
	}.Normalize()
	page = normalize.PositiveInt(query.Get(r, "page"), 1, 1, 1_000_000)
	pages = normalize.PositiveInt(query.Get(r, "pages"), 0, 1, 1_000_000)
	return f, page, pages
}

// userFilterQuery renders committed filters plus a page index back into
// the canonical /admin/users query string. totalPages rides along on
// non-first pages so an out-of-range index is caught before any fetch.
func userFilterQuery(f filterstate.UserFilters, page, totalPages int) string {
	vals := url.Values{}
	if f.Name != "" {
		vals.Set("name", f.Name)
	}
	if f.Email != "" {
		vals.Set("email", f.Email)
	}
	if f.SellerProfile != "" {
		vals.Set("seller_profile", f.SellerProfile)
	}
	if len(f.Providers) > 0 {
		vals.Set("providers", normalize.JoinCSV(f.Providers))
	}
	if len(f.Roles) > 0 {
		vals.Set("roles", normalize.JoinCSV(f.Roles))
	}
	if page > 1 {
		vals.Set("page", strconv.Itoa(page))
		if totalPages > 0 {
			vals.Set("pages", strconv.Itoa(totalPages))
		}
	}
	if len(vals) == 0 {
		return "/admin/users"
	}
	return "/admin/users?" + vals.Encode()
}

// ServeUsers handles GET /admin/users: the filtered, paged user table
// with a role editor per row. Rows the actor may not touch (self, owner
// accounts, roles above their scope) render read-only.
func (h *Handler) ServeUsers(w http.ResponseWriter, r *http.Request) {
	f, page, pages := parseUserFilters(r)

	data := usersData{
		BaseVM:  viewdata.NewBaseVM(w, r, "Admin: users", "/"),
		Filters: f,
		Back:    userFilterQuery(f, page, pages),
	}

	if !paging.ValidIndex(page, pages) {
		data.LoadError = "That page is out of range."
		templates.Render(w, r, "admin_users", data)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	listing, err := h.Users.List(ctx, client.CredentialsFrom(r), usersapi.ListQuery{
		Name:          f.Name,
		Email:         f.Email,
		SellerProfile: f.SellerProfile,
		Providers:     f.Providers,
		Roles:         f.Roles,
		Page:          page,
		PageSize:      paging.AdminPageSize,
	})
	if err != nil {
		h.Log.Warn("user list failed", zap.Error(err))
		data.LoadError = client.Message(err, "Unable to process users request.")
		templates.Render(w, r, "admin_users", data)
		return
	}

	actorRoles, _, actorID, _ := authz.UserCtx(r)
	allowed := rolediff.AllowedRoles(actorRoles)

	for _, u := range listing.Users {
		data.Rows = append(data.Rows, newUserRow(u, actorID, allowed))
	}
	data.Providers = checkOptions(listing.Filters.EmailProviders, f.Providers)
	data.RoleNames = checkOptions(listing.Filters.Roles, f.Roles)
	data.Total = listing.Page.TotalItems
	data.Nav = paging.BuildNav(listing.Page, func(index int) string {
		return userFilterQuery(f, index, listing.Page.TotalPages)
	})

	templates.Render(w, r, "admin_users", data)
}

func newUserRow(u usersapi.Record, actorID string, allowed []string) userRowVM {
	roles := normalize.Selection(u.Roles)
	row := userRowVM{
		ID:     u.ID,
		Name:   u.DisplayName,
		Email:  u.Email,
		Roles:  roles,
		Active: u.Active(),
	}
	if row.Name == "" {
		row.Name = u.Email
	}

	row.Editable = rolediff.Editable(actorID, u.ID, roles, allowed)
	if !row.Editable {
		switch {
		case u.ID == actorID:
			row.Hint = "Self"
		case rolediff.HoldsOwner(roles):
			row.Hint = "Owner"
		default:
			row.Hint = "Read-only"
		}
		return row
	}

	current := rolediff.ManagedCurrent(roles, allowed)
	checked := make(map[string]bool, len(current))
	for _, role := range current {
		checked[role] = true
	}
	for _, role := range allowed {
		row.Editor = append(row.Editor, roleCheckVM{Role: role, Checked: checked[role]})
	}
	return row
}

// ServeRolesSave handles POST /admin/users/roles: replace the managed
// portion of one user's roles and return to the filtered table.
func (h *Handler) ServeRolesSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	userID := r.PostFormValue("user_id")
	draft := normalize.Selection(r.PostForm["roles"])
	back := r.PostFormValue("back")
	if back == "" {
		back = "/admin/users"
	}

	if userID == "" {
		h.redirectWithError(w, r, back, "No user selected.")
		return
	}

	actorRoles, _, actorID, _ := authz.UserCtx(r)
	allowed := rolediff.AllowedRoles(actorRoles)
	if !rolediff.WithinScope(draft, allowed) || userID == actorID {
		uierrors.RenderForbidden(w, r, "You may not change these roles.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Users.SetRoles(ctx, client.CredentialsFrom(r), userID, draft)
	if err != nil {
		h.Log.Warn("role save failed", zap.String("user_id", userID), zap.Error(err))
		h.redirectWithError(w, r, back, client.Message(err, "Failed to update roles."))
		return
	}

	name := updated.DisplayName
	if name == "" {
		name = updated.Email
	}
	h.redirectWithSuccess(w, r, back, "Roles updated for "+name+".")
}

// ServeFilterPreview handles POST /admin/users/preview, the htmx
// endpoint behind the filter form. Purely local comparison of draft
// against committed filters.
func (h *Handler) ServeFilterPreview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	draft := filterstate.UserFilters{
		Name:          r.PostFormValue("name"),
		Email:         r.PostFormValue("email"),
		SellerProfile: r.PostFormValue("seller_profile"),
		Providers:     normalize.Selection(r.PostForm["providers"]),
		Roles:         normalize.Selection(r.PostForm["roles"]),
	}
	committed := filterstate.UserFilters{
		Name:          r.PostFormValue("committed_name"),
		Email:         r.PostFormValue("committed_email"),
		SellerProfile: r.PostFormValue("committed_seller_profile"),
		Providers:     normalize.Selection(r.PostForm["committed_providers"]),
		Roles:         normalize.Selection(r.PostForm["committed_roles"]),
	}

	templates.RenderSnippet(w, "admin_filter_status", filterStatusVM{
		Pending: filterstate.Pending(draft, committed),
	})
}
