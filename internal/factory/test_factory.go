package factory

import (
	"time"

	"github.com/tsimard/playerdex/internal/dependencies/mocks"
	"github.com/tsimard/playerdex/internal/services/auth"
	sessionmemory "github.com/tsimard/playerdex/internal/session/memory"
	"github.com/tsimard/playerdex/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// MemoryStore exposes the backing store's test helpers
	MemoryStore *memory.Store

	// MockClock drives session expiry in tests
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing: in-memory stores, a mock
// clock and a fixed hash secret
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	sessions := sessionmemory.New(mockClock)

	authCfg := auth.DefaultConfig()
	authCfg.Secret = "test-secret"

	app := newWithDependencies(store, sessions, mockClock, authCfg)

	return &TestApp{
		App:         app,
		MemoryStore: store,
		MockClock:   mockClock,
	}
}
