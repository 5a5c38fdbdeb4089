// Package memory is an in-memory implementation of the session store, used
// by tests and as a dependency-free default.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/tsimard/playerdex/internal/dependencies/clock"
	"github.com/tsimard/playerdex/internal/model"
	"github.com/tsimard/playerdex/internal/session"
)

type entry struct {
	claims    model.Claims
	expiresAt time.Time
}

// Store is an in-memory implementation of the session store
type Store struct {
	clock clock.Clock

	mu       sync.RWMutex
	sessions map[string]entry
}

// Ensure Store implements the interface
var _ session.Store = (*Store)(nil)

// New creates a new in-memory session store
func New(clk clock.Clock) *Store {
	return &Store{
		clock:    clk,
		sessions: make(map[string]entry),
	}
}

// Close implements the interface; there is nothing to release
func (s *Store) Close() error {
	return nil
}

func (s *Store) Save(ctx context.Context, token string, claims model.Claims, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = entry{
		claims:    claims,
		expiresAt: s.clock.Now().Add(ttl),
	}
	return nil
}

func (s *Store) Get(ctx context.Context, token string) (model.Claims, error) {
	s.mu.RLock()
	e, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return model.Claims{}, session.ErrNotFound
	}

	if s.clock.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return model.Claims{}, session.ErrNotFound
	}

	return e.claims, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
