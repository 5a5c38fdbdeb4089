// Package memory is an in-memory implementation of the storage interface,
// used by tests and as a dependency-free default.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/tsimard/playerdex/internal/model"
	"github.com/tsimard/playerdex/internal/storage"
)

// Store is an in-memory implementation of the storage interface
type Store struct {
	mu sync.RWMutex

	players      map[model.PlayerID]*model.Player
	nextPlayerID model.PlayerID

	users         map[model.UserID]*model.UserAccount
	usernameIndex map[string]model.UserID
	nextUserID    model.UserID
}

// Ensure Store implements the interface
var _ storage.Store = (*Store)(nil)

// New creates a new in-memory store
func New() *Store {
	return &Store{
		players:       make(map[model.PlayerID]*model.Player),
		nextPlayerID:  1,
		users:         make(map[model.UserID]*model.UserAccount),
		usernameIndex: make(map[string]model.UserID),
		nextUserID:    1,
	}
}

// Close implements the interface; there is nothing to release
func (s *Store) Close() error {
	return nil
}

// Player operations

func (s *Store) CountPlayers(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players), nil
}

func (s *Store) ListPlayers(ctx context.Context, limit, offset int, orderBy []string) ([]model.Player, error) {
	s.mu.RLock()
	all := make([]model.Player, 0, len(s.players))
	for _, p := range s.players {
		all = append(all, *p)
	}
	s.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool {
		return playerLess(&all[i], &all[j], orderBy)
	})

	if offset >= len(all) {
		return []model.Player{}, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (s *Store) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *Store) InsertPlayer(ctx context.Context, p *model.Player) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	cp.ID = s.nextPlayerID
	s.nextPlayerID++
	s.players[cp.ID] = &cp
	return 1, nil
}

func (s *Store) ReplacePlayer(ctx context.Context, id model.PlayerID, p *model.Player) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[id]; !ok {
		return 0, nil
	}
	cp := *p
	cp.ID = id
	s.players[id] = &cp
	return 1, nil
}

func (s *Store) DeletePlayer(ctx context.Context, id model.PlayerID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[id]; !ok {
		return 0, nil
	}
	delete(s.players, id)
	return 1, nil
}

// Account operations

func (s *Store) FindActiveUser(ctx context.Context, username, hashedPassword string) (*model.UserAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	u := s.users[id]
	if !u.Active || u.Password != hashedPassword {
		return nil, model.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *Store) InsertUser(ctx context.Context, username, hashedPassword string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Inactive accounts keep their username reserved
	if _, ok := s.usernameIndex[username]; ok {
		return 0, model.ErrUsernameExists
	}
	u := &model.UserAccount{
		ID:       s.nextUserID,
		Username: username,
		Password: hashedPassword,
		Role:     model.RoleUser,
		Active:   true,
	}
	s.nextUserID++
	s.users[u.ID] = u
	s.usernameIndex[username] = u.ID
	return 1, nil
}

func (s *Store) DeactivateUser(ctx context.Context, id model.UserID, username string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok || u.Username != username {
		return 0, nil
	}
	u.Active = false
	return 1, nil
}

func (s *Store) UpdateUserPassword(ctx context.Context, id model.UserID, hashedPassword string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return 0, nil
	}
	u.Password = hashedPassword
	return 1, nil
}

// SetUserRole adjusts a stored account's role (test helper; the API itself
// never changes roles)
func (s *Store) SetUserRole(username string, role model.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.usernameIndex[username]; ok {
		s.users[id].Role = role
	}
}

// playerLess compares two players over the ordered column list
func playerLess(a, b *model.Player, orderBy []string) bool {
	for _, field := range orderBy {
		switch field {
		case "id":
			if a.ID != b.ID {
				return a.ID < b.ID
			}
		case "username":
			if a.Username != b.Username {
				return strings.Compare(a.Username, b.Username) < 0
			}
		case "email":
			if a.Email != b.Email {
				return strings.Compare(a.Email, b.Email) < 0
			}
		case "level":
			if a.Level != b.Level {
				return a.Level < b.Level
			}
		case "last_connection":
			at, bt := a.LastConnection, b.LastConnection
			switch {
			case at == nil && bt == nil:
			case at == nil:
				return true
			case bt == nil:
				return false
			case !at.Equal(*bt):
				return at.Before(*bt)
			}
		}
	}
	return false
}
