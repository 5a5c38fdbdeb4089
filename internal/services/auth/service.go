// Package auth implements the access-control backend: credential checks,
// account lifecycle, and the issue/validate/invalidate cycle of session
// tokens.
package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/pbkdf2"

	"github.com/tsimard/playerdex/internal/model"
	"github.com/tsimard/playerdex/internal/session"
	"github.com/tsimard/playerdex/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// Session is an issued session: the opaque token the client holds and the
// claims mirrored server-side
type Session struct {
	Token  string
	Claims model.Claims
}

// Config holds configuration for the auth service
type Config struct {
	// Secret keys the password hash; every stored credential depends on it
	Secret string
	// SessionTTL bounds how long an issued token stays valid
	SessionTTL time.Duration
	// HashIterations tunes the PBKDF2 work factor
	HashIterations int
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionTTL:     24 * time.Hour,
		HashIterations: 4096,
	}
}

// Service handles authentication, accounts and session management
type Service struct {
	store    storage.Store
	sessions session.Store
	cfg      Config
}

// New creates a new auth service
func New(store storage.Store, sessions session.Store, cfg Config) *Service {
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = DefaultConfig().SessionTTL
	}
	if cfg.HashIterations == 0 {
		cfg.HashIterations = DefaultConfig().HashIterations
	}
	return &Service{
		store:    store,
		sessions: sessions,
		cfg:      cfg,
	}
}

// HashPassword derives the keyed hash stored for a credential. The hash is
// deterministic for a given secret, so the datastore can match it directly
// in the credential lookup.
func (s *Service) HashPassword(password string) string {
	key := pbkdf2.Key([]byte(password), []byte(s.cfg.Secret), s.cfg.HashIterations, 32, sha256.New)
	return base64.StdEncoding.EncodeToString(key)
}

// Login checks a credential against the active accounts and issues a session
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.store.FindActiveUser(ctx, username, s.HashPassword(password))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	claims := model.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}

	token := generateToken()
	if err := s.sessions.Save(ctx, token, claims, s.cfg.SessionTTL); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &Session{Token: token, Claims: claims}, nil
}

// Validate resolves a session token to the claims it carries
func (s *Service) Validate(ctx context.Context, token string) (model.Claims, error) {
	claims, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return model.Claims{}, ErrInvalidSession
		}
		return model.Claims{}, err
	}
	return claims, nil
}

// Logout invalidates a session token
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Register creates a new account with the USER role
func (s *Service) Register(ctx context.Context, username, password string) error {
	affected, err := s.store.InsertUser(ctx, username, s.HashPassword(password))
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("register %q: insert affected no rows", username)
	}
	return checkSingleRow(affected)
}

// Deactivate soft-deletes the authenticated account and invalidates its
// session. The username stays reserved.
func (s *Service) Deactivate(ctx context.Context, token string, claims model.Claims) error {
	affected, err := s.store.DeactivateUser(ctx, claims.UserID, claims.Username)
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrUserNotFound
	}
	if err := checkSingleRow(affected); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, token)
}

// ChangePassword replaces the account's credential and invalidates its
// session, forcing re-authentication
func (s *Service) ChangePassword(ctx context.Context, token string, claims model.Claims, password string) error {
	affected, err := s.store.UpdateUserPassword(ctx, claims.UserID, s.HashPassword(password))
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrUserNotFound
	}
	if err := checkSingleRow(affected); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, token)
}

// checkSingleRow guards the single-row invariant on keyed writes
func checkSingleRow(affected int64) error {
	if affected > 1 {
		return model.ErrRowMultiplicity
	}
	return nil
}

// generateToken creates a random opaque session token
func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
