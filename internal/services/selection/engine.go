package selection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/mazedle-go/internal/dependencies/random"
	"github.com/mcoot/mazedle-go/internal/model"
	"github.com/mcoot/mazedle-go/internal/services/calendar"
	"github.com/mcoot/mazedle-go/internal/services/roster"
	"github.com/mcoot/mazedle-go/internal/storage"
)

// Engine picks today's character so that every roster entry is used once
// before any repeats. Ledger read-modify-write operations are serialised.
type Engine struct {
	mu sync.Mutex

	storage  storage.Storage
	roster   *roster.Roster
	calendar *calendar.Service
	random   random.Random
	logger   *slog.Logger
}

// New creates a new selection Engine
func New(
	storage storage.Storage,
	roster *roster.Roster,
	calendar *calendar.Service,
	random random.Random,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		storage:  storage,
		roster:   roster,
		calendar: calendar,
		random:   random,
		logger:   logger,
	}
}

// PickNext chooses an unused character, records it in the ledger and
// returns it. wasReset is true when the ledger was exhausted and cleared
// before this pick.
func (e *Engine) PickNext(ctx context.Context) (model.Character, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := e.calendar.Today()

	ledger, err := e.loadLedger(ctx, today)
	if err != nil {
		return model.Character{}, false, err
	}

	wasReset := false
	if len(ledger.SelectedIDs) >= e.roster.Len() {
		ledger.Reset(today)
		wasReset = true
		e.logger.Info("selection ledger exhausted, starting new cycle",
			slog.String("date", today),
			slog.Int("roster_size", e.roster.Len()),
		)
	}

	available := e.available(ledger)
	if len(available) == 0 {
		return model.Character{}, wasReset, model.ErrNoAvailableCharacters
	}

	choice := random.Pick(e.random, available)
	ledger.SelectedIDs = append(ledger.SelectedIDs, choice.ID)

	if err := e.storage.SaveLedger(ctx, ledger); err != nil {
		e.logger.Error("failed to save selection ledger",
			slog.String("error", err.Error()),
		)
		return model.Character{}, wasReset, fmt.Errorf("save selection ledger: %w", err)
	}

	e.logger.Debug("character selected",
		slog.Int("character_id", choice.ID),
		slog.Int("used_count", len(ledger.SelectedIDs)),
		slog.Bool("was_reset", wasReset),
	)

	return choice, wasReset, nil
}

// Info returns a snapshot of the ledger. It never writes.
func (e *Engine) Info(ctx context.Context) (model.SelectionInfo, error) {
	ledger, err := e.loadLedger(ctx, e.calendar.Today())
	if err != nil {
		return model.SelectionInfo{}, err
	}

	used := len(ledger.SelectedIDs)
	return model.SelectionInfo{
		UsedCount:      used,
		TotalCount:     e.roster.Len(),
		RemainingCount: e.roster.Len() - used,
		LastResetDate:  ledger.LastResetDate,
	}, nil
}

// Reset clears the ledger and stamps it with today's date
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := e.calendar.Today()
	if err := e.storage.SaveLedger(ctx, model.NewLedger(today)); err != nil {
		return fmt.Errorf("save selection ledger: %w", err)
	}

	e.logger.Info("selection ledger reset", slog.String("date", today))
	return nil
}

// loadLedger reads the ledger, treating an absent or corrupt record as an
// empty ledger dated today. Ids no longer in the roster and repeated ids are
// dropped so the ledger stays a subset of the roster.
func (e *Engine) loadLedger(ctx context.Context, today string) (*model.Ledger, error) {
	ledger, err := e.storage.GetLedger(ctx)
	switch {
	case errors.Is(err, model.ErrLedgerNotFound):
		return model.NewLedger(today), nil
	case errors.Is(err, model.ErrCorruptRecord):
		e.logger.Warn("selection ledger is corrupt, starting fresh",
			slog.String("error", err.Error()),
		)
		return model.NewLedger(today), nil
	case err != nil:
		return nil, fmt.Errorf("load selection ledger: %w", err)
	}

	seen := make(map[int]bool, len(ledger.SelectedIDs))
	kept := make([]int, 0, len(ledger.SelectedIDs))
	for _, id := range ledger.SelectedIDs {
		if seen[id] || !e.roster.Contains(id) {
			continue
		}
		seen[id] = true
		kept = append(kept, id)
	}
	if dropped := len(ledger.SelectedIDs) - len(kept); dropped > 0 {
		e.logger.Warn("dropped unknown or repeated ids from selection ledger",
			slog.Int("dropped", dropped),
		)
	}
	ledger.SelectedIDs = kept

	return ledger, nil
}

// available returns the roster entries not yet used, in roster order
func (e *Engine) available(ledger *model.Ledger) []model.Character {
	var available []model.Character
	for _, c := range e.roster.All() {
		if !ledger.Contains(c.ID) {
			available = append(available, c)
		}
	}
	return available
}
