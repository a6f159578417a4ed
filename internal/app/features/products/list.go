package products

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/app/system/filterstate"
	"github.com/emperjs/shopfront/internal/app/system/normalize"
	"github.com/emperjs/shopfront/internal/app/system/paging"
	"github.com/emperjs/shopfront/internal/app/system/timeouts"
	"github.com/emperjs/shopfront/internal/app/system/viewdata"
)

type listData struct {
	viewdata.BaseVM

	Products  []rowVM
	Nav       paging.Nav
	Total     int
	LoadError string

	Form createForm
}

type rowVM struct {
	ID       string
	Slug     string
	Name     string
	Price    string
	Active   bool
	ImageURL string
}

// ServeList handles GET /products: the management table plus the create
// form.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, createForm{Currency: defaultCurrency, IsActive: true})
}

// renderList fetches the newest-first product table and renders the
// management page around the given form state. Create failures re-enter
// here so the form keeps what the user typed.
func (h *Handler) renderList(w http.ResponseWriter, r *http.Request, form createForm) {
	data := listData{
		BaseVM: viewdata.NewBaseVM(w, r, "Manage products", "/"),
		Form:   form,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	page := normalize.PositiveInt(query.Get(r, "page"), 1, 1, 1_000_000)
	listing, err := h.Shop.List(ctx, client.CredentialsFrom(r),
		filterstate.ProductFilters{Sort: "date"}, page, paging.AdminPageSize)
	if err != nil {
		h.Log.Warn("product list failed", zap.Error(err))
		data.LoadError = client.Message(err, "Products could not be loaded.")
		templates.Render(w, r, "products_manage", data)
		return
	}

	for _, p := range listing.Data {
		data.Products = append(data.Products, rowVM{
			ID:       p.ID,
			Slug:     p.Slug,
			Name:     p.Name,
			Price:    formatPrice(p.PriceCents, p.Currency),
			Active:   p.IsActive,
			ImageURL: p.ImageURL,
		})
	}
	data.Total = listing.Page.TotalItems
	data.Nav = paging.BuildNav(listing.Page, func(index int) string {
		if index == 1 {
			return "/products"
		}
		return "/products?page=" + strconv.Itoa(index)
	})

	templates.Render(w, r, "products_manage", data)
}

func formatPrice(cents int64, currency string) string {
	return fmt.Sprintf("%s %.2f", currency, float64(cents)/100)
}
