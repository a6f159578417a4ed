package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/authapi"
	"github.com/emperjs/shopfront/internal/api/client"
)

// Store resolves sessions against the auth service and broadcasts
// "session changed" signals to subscribers.
//
// Sessions are per-request, per-credential: Resolve returns only the
// caller's result and keeps no shared copy.
type Store struct {
	auth *authapi.Client
	log  *zap.Logger

	mu   sync.Mutex
	subs map[uint64]chan struct{}
	next uint64
}

func NewStore(auth *authapi.Client, logger *zap.Logger) *Store {
	return &Store{
		auth: auth,
		log:  logger,
		subs: make(map[uint64]chan struct{}),
	}
}

// Resolve fetches the caller's session. On any transport or non-2xx
// failure it returns the anonymous session and the error; callers render
// normally and may surface the error, but must not treat it as a
// confirmed sign-out.
func (s *Store) Resolve(ctx context.Context, creds client.Credentials) (authapi.Session, error) {
	sess, err := s.auth.Session(ctx, creds)
	if err != nil {
		s.log.Debug("session lookup failed", zap.Error(err))
		return authapi.Anonymous(), err
	}
	return sess, nil
}

// Subscribe registers for session-change signals. The returned cancel
// must be called when the subscriber goes away; signals are dropped, not
// queued, when the subscriber is not receiving.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	ch := make(chan struct{}, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
	return ch, cancel
}

// Publish signals every subscriber that the session changed. Each
// subscriber refreshes independently; no session data rides the signal.
func (s *Store) Publish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
