package shop

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/api/shopapi"
	"github.com/emperjs/shopfront/internal/app/system/filterstate"
	"github.com/emperjs/shopfront/internal/app/system/paging"
	"github.com/emperjs/shopfront/internal/app/system/timeouts"
	"github.com/emperjs/shopfront/internal/app/system/viewdata"
)

type catalogData struct {
	viewdata.BaseVM

	Products []cardVM
	Nav      paging.Nav
	Total    int

	// Committed filter state, echoed into the form controls.
	Search      string
	Tags        []string
	Min         string
	Max         string
	Sort        string
	SortOptions []sortOptionVM
	TagFacets   []tagFacetVM

	// Validation or load failure; when set the product grid is empty.
	FilterError  string
	LoadError    string
	FilterStatus filterStatusVM
}

type sortOptionVM struct {
	Key      string
	Label    string
	Selected bool
}

type tagFacetVM struct {
	Value   string
	Label   string
	Count   int
	Checked bool
}

var sortLabels = map[string]string{
	"date":      "Newest",
	"priceAsc":  "Price: low to high",
	"priceDesc": "Price: high to low",
	"name":      "Name",
}

type cardVM struct {
	Slug        string
	Name        string
	Description string
	Price       string
	Author      string
	ImageURL    string
	Tags        []string
}

// ServeCatalog handles GET /shop.
//
// The query string is the committed filter state: form submission and
// pagination links replace it wholesale, and only those page loads reach
// the storefront API. An impossible price range renders immediately with
// the validation message and no request.
func (h *Handler) ServeCatalog(w http.ResponseWriter, r *http.Request) {
	f, page, pages, parseErr := parseFilters(r)

	data := catalogData{
		BaseVM: viewdata.NewBaseVM(w, r, "Shop", "/"),
		Search: f.Search,
		Tags:   f.Tags,
		Sort:   f.Sort,
	}
	for _, key := range filterstate.ProductSortKeys {
		data.SortOptions = append(data.SortOptions, sortOptionVM{
			Key:      key,
			Label:    sortLabels[key],
			Selected: key == f.Sort,
		})
	}
	if f.MinCents != nil {
		data.Min = centsToUnits(*f.MinCents)
	}
	if f.MaxCents != nil {
		data.Max = centsToUnits(*f.MaxCents)
	}

	if parseErr != "" {
		data.FilterError = parseErr
		data.FilterStatus = filterStatusVM{Error: parseErr}
		templates.Render(w, r, "shop_catalog", data)
		return
	}
	if err := f.Validate(); err != nil {
		data.FilterError = err.Error()
		data.FilterStatus = filterStatusVM{Error: data.FilterError}
		templates.Render(w, r, "shop_catalog", data)
		return
	}
	// Pagination links carry the last-known page count; an index past it
	// is rejected here, not forwarded.
	if !paging.ValidIndex(page, pages) {
		data.FilterError = "That page is out of range."
		templates.Render(w, r, "shop_catalog", data)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	creds := client.CredentialsFrom(r)

	listing, err := h.Shop.List(ctx, creds, f, page, paging.CatalogPageSize)
	if err != nil {
		h.Log.Warn("catalog list failed", zap.Error(err))
		data.LoadError = client.Message(err, "The shop could not be loaded. Please try again.")
		templates.Render(w, r, "shop_catalog", data)
		return
	}

	for _, p := range listing.Data {
		data.Products = append(data.Products, newCardVM(p))
	}
	data.Total = listing.Page.TotalItems
	data.Nav = paging.BuildNav(listing.Page, func(index int) string {
		return pageURL(f, index, listing.Page.TotalPages)
	})

	if opts, err := h.options.Get(ctx); err == nil {
		checked := make(map[string]bool, len(f.Tags))
		for _, tag := range f.Tags {
			checked[tag] = true
		}
		for _, opt := range opts.Tags {
			label := opt.Label
			if label == "" {
				label = opt.Value
			}
			data.TagFacets = append(data.TagFacets, tagFacetVM{
				Value:   opt.Value,
				Label:   label,
				Count:   opt.Count,
				Checked: checked[opt.Value],
			})
		}
	} else {
		h.Log.Debug("filter options unavailable", zap.Error(err))
	}

	templates.Render(w, r, "shop_catalog", data)
}

func newCardVM(p shopapi.Product) cardVM {
	return cardVM{
		Slug:        p.Slug,
		Name:        p.Name,
		Description: sanitizeText(p.Description),
		Price:       formatPrice(p.PriceCents, p.Currency),
		Author:      p.AuthorDisplayName,
		ImageURL:    p.ImageURL,
		Tags:        p.Tags,
	}
}
