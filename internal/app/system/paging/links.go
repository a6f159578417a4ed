package paging

// Link is one entry in a rendered pagination control.
type Link struct {
	Index   int
	URL     string
	Current bool
}

// Nav is the view model for the shared pagination partial.
type Nav struct {
	Window  []Link
	HasPrev bool
	HasNext bool
	PrevURL string
	NextURL string
}

// BuildNav renders the page window into links. urlFor maps a page index
// to the href that loads it with the current committed filters.
func BuildNav(p Page, urlFor func(index int) string) Nav {
	nav := Nav{HasPrev: p.HasPrev, HasNext: p.HasNext}
	for _, idx := range Window(p.Index, p.TotalPages) {
		nav.Window = append(nav.Window, Link{
			Index:   idx,
			URL:     urlFor(idx),
			Current: idx == p.Index,
		})
	}
	if p.HasPrev {
		nav.PrevURL = urlFor(p.Index - 1)
	}
	if p.HasNext {
		nav.NextURL = urlFor(p.Index + 1)
	}
	return nav
}
