package shop

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/emperjs/shopfront/internal/app/system/filterstate"
	"github.com/emperjs/shopfront/internal/app/system/normalize"
)

type filterStatusVM struct {
	Pending bool
	Error   string
}

// ServePreview handles POST /shop/preview, the htmx endpoint behind the
// filter form's change events. It compares the draft fields against the
// committed hidden fields and re-renders the status strip. Purely local:
// no storefront request is made until the form is actually applied.
func (h *Handler) ServePreview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	draft, parseErr := formFilters(r, "")
	committed, _ := formFilters(r, "committed_")

	vm := filterStatusVM{Error: parseErr}
	if parseErr == "" {
		if err := draft.Validate(); err != nil {
			vm.Error = err.Error()
		}
	}
	vm.Pending = filterstate.Pending(draft, committed)

	templates.RenderSnippet(w, "shop_filter_status", vm)
}

// formFilters reads a filter record from form fields with the given
// name prefix. The committed copy travels in hidden "committed_" fields
// so the preview needs no server-side state.
func formFilters(r *http.Request, prefix string) (filterstate.ProductFilters, string) {
	var f filterstate.ProductFilters
	var parseErr string

	f.Search = r.PostFormValue(prefix + "search")
	f.Tags = normalize.Selection(r.PostForm[prefix+"tags"])
	f.Sort = r.PostFormValue(prefix + "sort")

	if cents, set, ok := normalize.OptionalCents(r.PostFormValue(prefix + "min")); !ok {
		parseErr = "Minimum price must be a non-negative amount."
	} else if set {
		f.MinCents = &cents
	}
	if cents, set, ok := normalize.OptionalCents(r.PostFormValue(prefix + "max")); !ok {
		parseErr = "Maximum price must be a non-negative amount."
	} else if set {
		f.MaxCents = &cents
	}

	return f.Normalize(), parseErr
}
