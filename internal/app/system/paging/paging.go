// Package paging models the server-driven page state returned by the
// remote API and the page-number navigation rendered around it.
//
// The API owns pagination: each list response carries an index/size/total
// snapshot that replaces the previous one wholesale. This package only
// validates requested indexes locally and computes the bounded window of
// page links shown under a list.
package paging

import (
	"net/http"

	"github.com/emperjs/shopfront/internal/app/system/normalize"
)

// CatalogPageSize is the default page size for the public catalog.
const CatalogPageSize = 24

// AdminPageSize is the default page size for admin list views.
const AdminPageSize = 20

// RequestsPageSize is the page size for the seller-profile request queue.
const RequestsPageSize = 50

// MaxPageSize bounds client-supplied page sizes.
const MaxPageSize = 100

// WindowSize is the maximum number of page links shown at once.
const WindowSize = 8

// Page is the server-supplied pagination snapshot. It is read-only from
// the app's perspective and replaced on every successful fetch.
type Page struct {
	Index      int  `json:"index"`
	Size       int  `json:"size"`
	TotalItems int  `json:"totalItems"`
	TotalPages int  `json:"totalPages"`
	HasPrev    bool `json:"hasPrev"`
	HasNext    bool `json:"hasNext"`
}

// ParseIndex extracts the 1-based "page" query parameter, defaulting to 1.
func ParseIndex(r *http.Request) int {
	return normalize.PositiveInt(r.URL.Query().Get("page"), 1, 1, 1<<30)
}

// ParseSize extracts the "pageSize" query parameter bounded to
// [1, MaxPageSize], defaulting to def.
func ParseSize(r *http.Request, def int) int {
	return normalize.PositiveInt(r.URL.Query().Get("pageSize"), def, 1, MaxPageSize)
}

// ValidIndex reports whether a requested index may be sent to the API.
// Indexes below 1 are always invalid; indexes above a known nonzero
// totalPages are rejected locally without a request.
func ValidIndex(index, totalPages int) bool {
	if index < 1 {
		return false
	}
	if totalPages > 0 && index > totalPages {
		return false
	}
	return true
}

// Window returns a contiguous run of at most WindowSize page numbers
// centered on index and clamped to [1, totalPages]. An unknown or empty
// total yields a nil window.
func Window(index, totalPages int) []int {
	if totalPages < 1 {
		return nil
	}
	if index < 1 {
		index = 1
	}
	if index > totalPages {
		index = totalPages
	}

	start := index - WindowSize/2
	if start < 1 {
		start = 1
	}
	end := start + WindowSize - 1
	if end > totalPages {
		end = totalPages
		if start = end - WindowSize + 1; start < 1 {
			start = 1
		}
	}

	window := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		window = append(window, p)
	}
	return window
}

// Compute derives a full Page snapshot from totals, for endpoints that
// only return counts.
func Compute(index, size, totalItems int) Page {
	if size < 1 {
		size = 1
	}
	totalPages := (totalItems + size - 1) / size
	return Page{
		Index:      index,
		Size:       size,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasPrev:    index > 1,
		HasNext:    totalPages > 0 && index < totalPages,
	}
}
