package shop

import (
	"context"
	"sync"
	"time"

	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/api/shopapi"
	"github.com/emperjs/shopfront/internal/app/system/fetchstate"
)

// optionsCache holds the catalog's filter options (tags, currencies,
// authors) for the TTL the server advertises. Concurrent refreshes race;
// the coordinator keeps the last-started fetch so a stale slow response
// never replaces a fresher one.
type optionsCache struct {
	shop *shopapi.Client

	coord fetchstate.Coordinator[shopapi.FilterOptions]

	mu        sync.Mutex
	fetchedAt time.Time
	ttl       time.Duration
}

func newOptionsCache(shop *shopapi.Client) *optionsCache {
	return &optionsCache{shop: shop}
}

// Get returns cached options while fresh, otherwise refreshes. Filter
// options are public catalog data, so the fetch is anonymous and shared
// across callers.
func (c *optionsCache) Get(ctx context.Context) (shopapi.FilterOptions, error) {
	c.mu.Lock()
	fresh := c.ttl > 0 && time.Since(c.fetchedAt) < c.ttl
	c.mu.Unlock()

	if fresh {
		if opts, phase, err := c.coord.Snapshot(); phase == fetchstate.Loaded && err == nil {
			return opts, nil
		}
	}

	token := c.coord.Begin()
	opts, err := c.shop.FilterOptions(ctx, client.Credentials(""))
	if c.coord.Commit(token, opts, err) && err == nil {
		c.mu.Lock()
		c.fetchedAt = time.Now()
		c.ttl = time.Duration(opts.CacheTTLSeconds) * time.Second
		c.mu.Unlock()
	}
	if err != nil {
		// Serve the previous snapshot if one exists; options are decoration,
		// not the product list itself.
		c.mu.Lock()
		hadSuccess := !c.fetchedAt.IsZero()
		c.mu.Unlock()
		if hadSuccess {
			prev, _, _ := c.coord.Snapshot()
			return prev, nil
		}
		return shopapi.FilterOptions{}, err
	}
	return opts, nil
}
