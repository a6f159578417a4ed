package shop

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"

	"github.com/emperjs/shopfront/internal/app/system/filterstate"
	"github.com/emperjs/shopfront/internal/app/system/normalize"
)

// parseFilters reads the committed catalog filters and page index from
// the query string. Malformed price input surfaces as a parse message so
// the page can show it without fetching. pages is the last-known total
// page count carried on pagination links; zero means unknown.
func parseFilters(r *http.Request) (f filterstate.ProductFilters, page, pages int, parseErr string) {
	f.Search = query.Search(r, "search")
	f.Tags = normalize.CSV(query.Get(r, "tags"))
	f.Sort = query.Get(r, "sort")

	if cents, set, ok := normalize.OptionalCents(query.Get(r, "min")); !ok {
		parseErr = "Minimum price must be a non-negative amount."
	} else if set {
		f.MinCents = &cents
	}
	if cents, set, ok := normalize.OptionalCents(query.Get(r, "max")); !ok {
		parseErr = "Maximum price must be a non-negative amount."
	} else if set {
		f.MaxCents = &cents
	}

	f = f.Normalize()
	page = normalize.PositiveInt(query.Get(r, "page"), 1, 1, 1_000_000)
	pages = normalize.PositiveInt(query.Get(r, "pages"), 0, 1, 1_000_000)
	return f, page, pages, parseErr
}

// filterQuery renders committed filters plus a page index back into a
// query string, the canonical link format for pagination and sort links.
// totalPages rides along on non-first pages so an out-of-range index can
// be rejected before any fetch.
func filterQuery(f filterstate.ProductFilters, page, totalPages int) string {
	vals := url.Values{}
	if f.Search != "" {
		vals.Set("search", f.Search)
	}
	if len(f.Tags) > 0 {
		vals.Set("tags", normalize.JoinCSV(f.Tags))
	}
	if f.MinCents != nil {
		vals.Set("min", centsToUnits(*f.MinCents))
	}
	if f.MaxCents != nil {
		vals.Set("max", centsToUnits(*f.MaxCents))
	}
	if f.Sort != "" && f.Sort != "date" {
		vals.Set("sort", f.Sort)
	}
	if page > 1 {
		vals.Set("page", strconv.Itoa(page))
		if totalPages > 0 {
			vals.Set("pages", strconv.Itoa(totalPages))
		}
	}
	if len(vals) == 0 {
		return ""
	}
	return "?" + vals.Encode()
}

func centsToUnits(cents int64) string {
	if cents%100 == 0 {
		return strconv.FormatInt(cents/100, 10)
	}
	return strconv.FormatFloat(float64(cents)/100, 'f', 2, 64)
}

// pageURL builds the pagination link target for a page index.
func pageURL(f filterstate.ProductFilters, index, totalPages int) string {
	q := filterQuery(f, index, totalPages)
	if q == "" {
		return "/shop"
	}
	return "/shop" + q
}
