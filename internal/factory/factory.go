// Package factory wires the application's dependencies.
package factory

import (
	"errors"

	"github.com/tsimard/playerdex/internal/dependencies/clock"
	"github.com/tsimard/playerdex/internal/services/auth"
	"github.com/tsimard/playerdex/internal/services/player"
	"github.com/tsimard/playerdex/internal/session"
	sessionmemory "github.com/tsimard/playerdex/internal/session/memory"
	sessionredis "github.com/tsimard/playerdex/internal/session/redis"
	"github.com/tsimard/playerdex/internal/storage"
	"github.com/tsimard/playerdex/internal/storage/memory"
	"github.com/tsimard/playerdex/internal/storage/sqlite"
)

// Session store type constants
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Store    storage.Store
	Sessions session.Store

	// External dependencies
	Clock clock.Clock

	// Services
	AuthService   *auth.Service
	PlayerService *player.Service
}

// Config holds configuration for the application factory
type Config struct {
	// DatabasePath is the sqlite database file
	// If empty, the in-memory store is used
	DatabasePath string
	// SessionStoreType selects the session backend ("memory" or "redis")
	// If empty, defaults to "memory"
	SessionStoreType string
	// RedisConfig holds Redis connection settings (required if SessionStoreType is "redis")
	RedisConfig *sessionredis.Config
	// AuthConfig holds configuration for the auth service. Secret is required.
	AuthConfig auth.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	if cfg.AuthConfig.Secret == "" {
		return nil, errors.New("AuthConfig.Secret is required")
	}

	var store storage.Store
	if cfg.DatabasePath == "" {
		store = memory.New()
	} else {
		sqliteStore, err := sqlite.New(sqlite.Config{Path: cfg.DatabasePath})
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	}

	clk := clock.New()

	sessionStoreType := cfg.SessionStoreType
	if sessionStoreType == "" {
		sessionStoreType = SessionStoreMemory
	}

	var sessions session.Store
	switch sessionStoreType {
	case SessionStoreMemory:
		sessions = sessionmemory.New(clk)
	case SessionStoreRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when SessionStoreType is redis")
		}
		redisSessions, err := sessionredis.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		sessions = redisSessions
	default:
		return nil, errors.New("invalid SessionStoreType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, sessions, clk, cfg.AuthConfig), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Store, sessions session.Store, clk clock.Clock, authCfg auth.Config) *App {
	return &App{
		Store:         store,
		Sessions:      sessions,
		Clock:         clk,
		AuthService:   auth.New(store, sessions, authCfg),
		PlayerService: player.New(store),
	}
}

// Close releases the App's backing stores
func (a *App) Close() error {
	storeErr := a.Store.Close()
	sessionErr := a.Sessions.Close()
	return errors.Join(storeErr, sessionErr)
}
