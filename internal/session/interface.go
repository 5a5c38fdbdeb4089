// Package session stores the server-side mirror of issued session tokens:
// the claims each opaque token carries. Invalidation deletes the mirror, so
// a revoked token can never authenticate again even if the client keeps it.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/tsimard/playerdex/internal/model"
)

// ErrNotFound means the token has no stored claims (never issued, expired,
// or invalidated)
var ErrNotFound = errors.New("session not found")

// Store defines the interface for session claim persistence
type Store interface {
	Save(ctx context.Context, token string, claims model.Claims, ttl time.Duration) error
	Get(ctx context.Context, token string) (model.Claims, error)
	Delete(ctx context.Context, token string) error
	Close() error
}
