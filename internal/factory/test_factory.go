package factory

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/mcoot/easylog/internal/dependencies/mocks"
	"github.com/mcoot/easylog/internal/services/auth"
	"github.com/mcoot/easylog/internal/services/entrylog"
	"github.com/mcoot/easylog/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MemoryStore *memory.Storage
	MockClock   *mocks.MockClock
	MockRandom  *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(
		store,
		mockClock,
		mockRandom,
		auth.NewMockIssuer(mockClock),
		entrylog.DefaultConfig(),
		zerolog.Nop(),
	)

	return &TestApp{
		App:         app,
		MemoryStore: store,
		MockClock:   mockClock,
		MockRandom:  mockRandom,
	}
}
