// Package storage defines the datastore contract the request pipeline
// depends on. Implementations are single-shot and retry-free: a failure
// propagates immediately.
package storage

import (
	"context"

	"github.com/tsimard/playerdex/internal/model"
)

// Store defines the interface for player and account persistence.
// Write operations report how many rows they affected so callers can tell
// "nothing matched" (not found) apart from success; more than one affected
// row for a keyed write is an integrity fault the caller must surface.
type Store interface {
	// Player operations
	CountPlayers(ctx context.Context) (int, error)
	ListPlayers(ctx context.Context, limit, offset int, orderBy []string) ([]model.Player, error)
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	InsertPlayer(ctx context.Context, p *model.Player) (int64, error)
	ReplacePlayer(ctx context.Context, id model.PlayerID, p *model.Player) (int64, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) (int64, error)

	// Account operations. Accounts are soft-deleted: DeactivateUser flips the
	// active flag and the username stays reserved against re-registration.
	FindActiveUser(ctx context.Context, username, hashedPassword string) (*model.UserAccount, error)
	InsertUser(ctx context.Context, username, hashedPassword string) (int64, error)
	DeactivateUser(ctx context.Context, id model.UserID, username string) (int64, error)
	UpdateUserPassword(ctx context.Context, id model.UserID, hashedPassword string) (int64, error)

	Close() error
}
