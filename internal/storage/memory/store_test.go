package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsimard/playerdex/internal/model"
)

func newTestPlayer(username string, level int) *model.Player {
	return &model.Player{
		Username: username,
		Password: "secret",
		Email:    username + "@example.com",
		Level:    level,
		Platform: "pc",
	}
}

func TestPlayerInsertAndGet(t *testing.T) {
	s := New()
	ctx := context.Background()

	n, err := s.InsertPlayer(ctx, newTestPlayer("alice", 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	p, err := s.GetPlayer(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.PlayerID(1), p.ID)
	assert.Equal(t, "alice", p.Username)
	assert.Equal(t, 10, p.Level)

	_, err = s.GetPlayer(ctx, 99)
	assert.ErrorIs(t, err, model.ErrPlayerNotFound)
}

func TestPlayerIDsAreSequential(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, name := range []string{"alice", "bob", "carol"} {
		_, err := s.InsertPlayer(ctx, newTestPlayer(name, 1))
		require.NoError(t, err)
	}

	count, err := s.CountPlayers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	p, err := s.GetPlayer(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "carol", p.Username)
}

func TestPlayerReplace(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, err := s.InsertPlayer(ctx, newTestPlayer("alice", 10))
	require.NoError(t, err)

	updated := newTestPlayer("alice", 42)
	n, err := s.ReplacePlayer(ctx, 1, updated)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	p, err := s.GetPlayer(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 42, p.Level)
	// The stored row keeps the path id, not whatever the payload carried
	assert.Equal(t, model.PlayerID(1), p.ID)

	n, err = s.ReplacePlayer(ctx, 99, updated)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestPlayerDelete(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, err := s.InsertPlayer(ctx, newTestPlayer("alice", 10))
	require.NoError(t, err)

	n, err := s.DeletePlayer(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = s.GetPlayer(ctx, 1)
	assert.ErrorIs(t, err, model.ErrPlayerNotFound)

	n, err = s.DeletePlayer(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestListPlayersWindow(t *testing.T) {
	s := New()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := s.InsertPlayer(ctx, newTestPlayer(string(rune('a'+i)), i+1))
		require.NoError(t, err)
	}

	players, err := s.ListPlayers(ctx, 2, 2, []string{"id"})
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, model.PlayerID(3), players[0].ID)
	assert.Equal(t, model.PlayerID(4), players[1].ID)

	// limit past the end is clamped
	players, err = s.ListPlayers(ctx, 10, 3, []string{"id"})
	require.NoError(t, err)
	assert.Len(t, players, 2)

	// offset past the end yields an empty slice
	players, err = s.ListPlayers(ctx, 10, 5, []string{"id"})
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestListPlayersOrdering(t *testing.T) {
	s := New()
	ctx := context.Background()

	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	seed := []*model.Player{
		{Username: "carol", Email: "carol@example.com", Level: 5, LastConnection: &late},
		{Username: "alice", Email: "alice@example.com", Level: 5, LastConnection: &early},
		{Username: "bob", Email: "bob@example.com", Level: 3},
	}
	for _, p := range seed {
		_, err := s.InsertPlayer(ctx, p)
		require.NoError(t, err)
	}

	players, err := s.ListPlayers(ctx, 10, 0, []string{"username"})
	require.NoError(t, err)
	assert.Equal(t, "alice", players[0].Username)
	assert.Equal(t, "bob", players[1].Username)
	assert.Equal(t, "carol", players[2].Username)

	// Secondary column breaks ties in the first
	players, err = s.ListPlayers(ctx, 10, 0, []string{"level", "username"})
	require.NoError(t, err)
	assert.Equal(t, "bob", players[0].Username)
	assert.Equal(t, "alice", players[1].Username)
	assert.Equal(t, "carol", players[2].Username)

	// Players without a last connection sort before everyone else
	players, err = s.ListPlayers(ctx, 10, 0, []string{"last_connection"})
	require.NoError(t, err)
	assert.Equal(t, "bob", players[0].Username)
	assert.Equal(t, "alice", players[1].Username)
	assert.Equal(t, "carol", players[2].Username)
}

func TestUserLifecycle(t *testing.T) {
	s := New()
	ctx := context.Background()

	n, err := s.InsertUser(ctx, "alice", "hash1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	u, err := s.FindActiveUser(ctx, "alice", "hash1")
	require.NoError(t, err)
	assert.Equal(t, model.UserID(1), u.ID)
	assert.Equal(t, model.RoleUser, u.Role)
	assert.True(t, u.Active)

	_, err = s.FindActiveUser(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
	_, err = s.FindActiveUser(ctx, "nobody", "hash1")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestInsertUserDuplicate(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, err := s.InsertUser(ctx, "alice", "hash1")
	require.NoError(t, err)

	_, err = s.InsertUser(ctx, "alice", "hash2")
	assert.ErrorIs(t, err, model.ErrUsernameExists)
}

func TestDeactivateReservesUsername(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, err := s.InsertUser(ctx, "alice", "hash1")
	require.NoError(t, err)

	n, err := s.DeactivateUser(ctx, 1, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// Login no longer works, but the username stays taken
	_, err = s.FindActiveUser(ctx, "alice", "hash1")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
	_, err = s.InsertUser(ctx, "alice", "hash3")
	assert.ErrorIs(t, err, model.ErrUsernameExists)

	// Mismatched id/username pair touches nothing
	n, err = s.DeactivateUser(ctx, 1, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestUpdateUserPassword(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, err := s.InsertUser(ctx, "alice", "hash1")
	require.NoError(t, err)

	n, err := s.UpdateUserPassword(ctx, 1, "hash2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = s.FindActiveUser(ctx, "alice", "hash1")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
	u, err := s.FindActiveUser(ctx, "alice", "hash2")
	require.NoError(t, err)
	assert.Equal(t, "hash2", u.Password)

	n, err = s.UpdateUserPassword(ctx, 99, "hash3")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestSetUserRole(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, err := s.InsertUser(ctx, "alice", "hash1")
	require.NoError(t, err)

	s.SetUserRole("alice", model.RoleEditor)

	u, err := s.FindActiveUser(ctx, "alice", "hash1")
	require.NoError(t, err)
	assert.Equal(t, model.RoleEditor, u.Role)
}
