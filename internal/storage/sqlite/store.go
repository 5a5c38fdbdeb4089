// Package sqlite is the SQL-backed implementation of the storage interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/tsimard/playerdex/internal/model"
	"github.com/tsimard/playerdex/internal/storage"
)

// Config holds SQLite connection settings
type Config struct {
	// Path is the database file path; ":memory:" gives a throwaway database
	Path string
}

// DefaultConfig returns sensible defaults for SQLite configuration
func DefaultConfig() Config {
	return Config{Path: "playerdex.db"}
}

// Store is a SQLite-backed implementation of the storage interface
type Store struct {
	db *sqlx.DB
}

// Ensure Store implements the interface
var _ storage.Store = (*Store)(nil)

// New opens the database file and applies the schema
func New(cfg Config) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// NewWithDB wraps an existing connection (for testing)
func NewWithDB(db *sqlx.DB) (*Store, error) {
	if _, err := db.Exec(schemaDDL); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Player operations

func (s *Store) CountPlayers(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(1) FROM players"); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return count, nil
}

func (s *Store) ListPlayers(ctx context.Context, limit, offset int, orderBy []string) ([]model.Player, error) {
	// orderBy has been validated against the column vocabulary by the schema
	// layer; only validated names reach this interpolation.
	query := fmt.Sprintf("SELECT * FROM players ORDER BY %s LIMIT ? OFFSET ?", strings.Join(orderBy, ", "))

	players := []model.Player{}
	if err := s.db.SelectContext(ctx, &players, query, limit, offset); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *Store) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	var p model.Player
	err := s.db.GetContext(ctx, &p, "SELECT * FROM players WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("get player: %w", err)
	}
	return &p, nil
}

func (s *Store) InsertPlayer(ctx context.Context, p *model.Player) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO players (username, password, email, level, platform, last_connection, profile_pic)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Username, p.Password, p.Email, p.Level, p.Platform, p.LastConnection, p.ProfilePic)
	if err != nil {
		return 0, fmt.Errorf("insert player: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) ReplacePlayer(ctx context.Context, id model.PlayerID, p *model.Player) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE players
		 SET username = ?, password = ?, email = ?, level = ?, platform = ?, last_connection = ?, profile_pic = ?
		 WHERE id = ?`,
		p.Username, p.Password, p.Email, p.Level, p.Platform, p.LastConnection, p.ProfilePic, id)
	if err != nil {
		return 0, fmt.Errorf("replace player: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) DeletePlayer(ctx context.Context, id model.PlayerID) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM players WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("delete player: %w", err)
	}
	return res.RowsAffected()
}

// Account operations

func (s *Store) FindActiveUser(ctx context.Context, username, hashedPassword string) (*model.UserAccount, error) {
	var u model.UserAccount
	err := s.db.GetContext(ctx, &u,
		"SELECT * FROM users WHERE username = ? AND password = ? AND active = 1",
		username, hashedPassword)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("find active user: %w", err)
	}
	return &u, nil
}

func (s *Store) InsertUser(ctx context.Context, username, hashedPassword string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, password) VALUES (?, ?)",
		username, hashedPassword)
	if err != nil {
		// The username stays reserved even for deactivated accounts: the
		// uniqueness constraint covers inactive rows too.
		var serr sqlite3.Error
		if errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint {
			return 0, model.ErrUsernameExists
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) DeactivateUser(ctx context.Context, id model.UserID, username string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE users SET active = 0 WHERE id = ? AND username = ?",
		id, username)
	if err != nil {
		return 0, fmt.Errorf("deactivate user: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) UpdateUserPassword(ctx context.Context, id model.UserID, hashedPassword string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE users SET password = ? WHERE id = ?",
		hashedPassword, id)
	if err != nil {
		return 0, fmt.Errorf("update user password: %w", err)
	}
	return res.RowsAffected()
}
