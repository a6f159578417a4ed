// Package filterstate models the draft/committed filter pattern shared by
// the catalog and admin list views.
//
// A Draft is edited freely by form input and never causes a request. The
// Committed state is replaced only by an explicit Apply action and is the
// sole input to a fetch. Committed snapshots are always canonical
// (normalized multi-value fields), so comparing two snapshots is plain
// field and ordered-slice comparison.
package filterstate

import (
	"fmt"

	"github.com/emperjs/shopfront/internal/app/system/normalize"
)

// Filters is implemented by a view's filter record. Normalize returns the
// canonical form; Equal compares two canonical snapshots.
type Filters[F any] interface {
	Normalize() F
	Equal(F) bool
}

// Pending reports whether a draft differs from the committed state, i.e.
// whether the Apply control should be enabled. Both sides are compared in
// canonical form.
func Pending[F Filters[F]](draft, committed F) bool {
	return !draft.Normalize().Equal(committed.Normalize())
}

// ProductFilters is the catalog filter record. Prices are minor currency
// units; nil bounds mean unset.
type ProductFilters struct {
	Search   string
	Tags     []string
	MinCents *int64
	MaxCents *int64
	Sort     string
}

// ProductSortKeys are the sort orders the catalog offers, in display order.
var ProductSortKeys = []string{"date", "priceAsc", "priceDesc", "name"}

// Normalize returns the canonical form of f.
func (f ProductFilters) Normalize() ProductFilters {
	out := ProductFilters{
		Search:   normalize.Name(f.Search),
		Tags:     normalize.Selection(f.Tags),
		MinCents: f.MinCents,
		MaxCents: f.MaxCents,
		Sort:     normalize.Selector(f.Sort),
	}
	if out.Sort == "" {
		out.Sort = "date"
	}
	return out
}

// Equal compares canonical snapshots field by field.
func (f ProductFilters) Equal(other ProductFilters) bool {
	return f.Search == other.Search &&
		equalStrings(f.Tags, other.Tags) &&
		equalBound(f.MinCents, other.MinCents) &&
		equalBound(f.MaxCents, other.MaxCents) &&
		f.Sort == other.Sort
}

// Validate rejects impossible price ranges before any request is issued.
func (f ProductFilters) Validate() error {
	if f.MinCents != nil && f.MaxCents != nil && *f.MinCents > *f.MaxCents {
		return fmt.Errorf("minimum price %.2f is above maximum price %.2f",
			float64(*f.MinCents)/100, float64(*f.MaxCents)/100)
	}
	return nil
}

// UserFilters is the admin users filter record.
type UserFilters struct {
	Name          string
	Email         string
	SellerProfile string
	Providers     []string
	Roles         []string
}

// Normalize returns the canonical form of f. The email, selector, and
// multi-value fields are case-insensitive; the name search preserves case.
func (f UserFilters) Normalize() UserFilters {
	return UserFilters{
		Name:          normalize.Name(f.Name),
		Email:         normalize.Email(f.Email),
		SellerProfile: normalize.Selector(f.SellerProfile),
		Providers:     normalize.Selection(f.Providers),
		Roles:         normalize.Selection(f.Roles),
	}
}

// Equal compares canonical snapshots field by field.
func (f UserFilters) Equal(other UserFilters) bool {
	return f.Name == other.Name &&
		f.Email == other.Email &&
		f.SellerProfile == other.SellerProfile &&
		equalStrings(f.Providers, other.Providers) &&
		equalStrings(f.Roles, other.Roles)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalBound(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
