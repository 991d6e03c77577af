package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/mazedle-go/internal/dependencies/mocks"
	"github.com/mcoot/mazedle-go/internal/services/roster"
	"github.com/mcoot/mazedle-go/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock   *mocks.MockClock
	MockRandom  *mocks.MockRandom
	MemoryStore *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The clock starts at 2024-01-01 12:00 UTC and days roll over at UTC midnight.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, roster.Default(), time.UTC, logger)

	return &TestApp{
		App:         app,
		MockClock:   mockClock,
		MockRandom:  mockRandom,
		MemoryStore: store,
	}
}

// AdvanceDays moves the mock clock forward by n days
func (t *TestApp) AdvanceDays(n int) {
	t.MockClock.Advance(time.Duration(n) * 24 * time.Hour)
}
