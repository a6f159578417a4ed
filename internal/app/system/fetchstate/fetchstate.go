// Package fetchstate coordinates re-entrant fetches for a piece of shared
// view state, such as the cached catalog filter options.
//
// The contract is last-applied-wins. Every fetch run captures a token at
// start; only the run holding the most recent token may commit its result.
// A slower response for an older token is discarded on arrival, so state
// never regresses to a stale fetch that happened to resolve last.
package fetchstate

import "sync"

// Phase is the lifecycle of a fetched value.
type Phase int

const (
	Idle Phase = iota
	Loading
	Loaded
	Errored
)

// String returns the lowercase phase name used in logs and templates.
func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Errored:
		return "errored"
	default:
		return "idle"
	}
}

// Coordinator guards one fetched value of type R.
// The zero value is ready to use and starts Idle.
type Coordinator[R any] struct {
	mu    sync.Mutex
	token uint64
	phase Phase
	value R
	err   error
}

// Begin starts a fetch run and returns its token. The phase becomes
// Loading and any in-flight run with an older token loses the right to
// commit.
func (c *Coordinator[R]) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token++
	c.phase = Loading
	return c.token
}

// Commit stores a run's outcome if the token is still current. It reports
// whether the result was accepted; stale results are dropped unchanged.
func (c *Coordinator[R]) Commit(token uint64, value R, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.token {
		return false
	}
	if err != nil {
		c.phase = Errored
		c.err = err
		return true
	}
	c.phase = Loaded
	c.value = value
	c.err = nil
	return true
}

// Snapshot returns the committed value, phase, and error. During Loading
// or after Errored the value is the last committed one (zero before any
// commit).
func (c *Coordinator[R]) Snapshot() (R, Phase, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.phase, c.err
}

// Reset returns the coordinator to Idle with the zero value, invalidating
// any in-flight run.
func (c *Coordinator[R]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero R
	c.token++
	c.phase = Idle
	c.value = zero
	c.err = nil
}
