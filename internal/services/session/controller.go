package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/mazedle-go/internal/model"
	"github.com/mcoot/mazedle-go/internal/services/calendar"
	"github.com/mcoot/mazedle-go/internal/services/roster"
	"github.com/mcoot/mazedle-go/internal/services/selection"
	"github.com/mcoot/mazedle-go/internal/storage"
)

// Controller manages the daily game session: rollover, guesses and give-up.
// Mutations are serialised so concurrent callers see a consistent session.
type Controller struct {
	mu sync.Mutex

	storage   storage.Storage
	selection *selection.Engine
	roster    *roster.Roster
	calendar  *calendar.Service
	logger    *slog.Logger
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	selection *selection.Engine,
	roster *roster.Roster,
	calendar *calendar.Service,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   storage,
		selection: selection,
		roster:    roster,
		calendar:  calendar,
		logger:    logger,
	}
}

// LoadOrInit returns today's session, starting a new one with a freshly
// picked character when the stored session is absent, unusable or from an
// earlier day. Calling it again on the same day writes nothing.
func (c *Controller) LoadOrInit(ctx context.Context) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, _, err := c.loadOrInit(ctx)
	return session, err
}

// Guess records an attempt at today's character. Guesses after the game has
// ended leave the session unchanged.
func (c *Controller) Guess(ctx context.Context, characterID int) (*model.Session, error) {
	guess, err := c.roster.Get(characterID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	session, _, err := c.loadOrInit(ctx)
	if err != nil {
		return nil, err
	}

	if !session.ApplyGuess(guess, model.MaxAttempts) {
		c.logger.Debug("guess ignored, game is over",
			slog.String("date", session.CurrentDate),
			slog.Int("character_id", characterID),
		)
		return session, nil
	}

	if err := c.save(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("guess recorded",
		slog.String("date", session.CurrentDate),
		slog.Int("character_id", characterID),
		slog.Int("attempt", len(session.Guesses)),
		slog.String("outcome", string(session.Outcome())),
	)

	return session, nil
}

// GiveUp reveals today's character and ends the game as lost. A game that
// has already been won is left as it is.
func (c *Controller) GiveUp(ctx context.Context) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, _, err := c.loadOrInit(ctx)
	if err != nil {
		return nil, err
	}

	if !session.ApplyGiveUp() {
		return session, nil
	}

	if err := c.save(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("game given up",
		slog.String("date", session.CurrentDate),
		slog.Int("attempts", len(session.Guesses)),
	)

	return session, nil
}

// Restart replaces today's session with a new one against a newly picked
// character. The pick consumes a ledger slot like any other.
func (c *Controller) Restart(ctx context.Context) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.start(ctx, c.calendar.Today())
	if err != nil {
		return nil, err
	}

	c.logger.Info("game restarted", slog.String("date", session.CurrentDate))
	return session, nil
}

// WatchRollover checks for a new day every interval and starts the new
// session as soon as one begins, calling onRollover with it. It blocks until
// ctx is cancelled.
func (c *Controller) WatchRollover(ctx context.Context, interval time.Duration, onRollover func(*model.Session)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			session, rolled, err := c.checkRollover(ctx)
			if err != nil {
				c.logger.Error("rollover check failed", slog.String("error", err.Error()))
				continue
			}
			if rolled && onRollover != nil {
				onRollover(session)
			}
		}
	}
}

func (c *Controller) checkRollover(ctx context.Context) (*model.Session, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, rolled, err := c.loadOrInit(ctx)
	if err != nil {
		return nil, false, err
	}
	return session.Clone(), rolled, nil
}

// loadOrInit must be called with mu held. started reports whether a new
// session was created.
func (c *Controller) loadOrInit(ctx context.Context) (session *model.Session, started bool, err error) {
	today := c.calendar.Today()

	stored, err := c.storage.GetSession(ctx)
	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		stored = nil
	case errors.Is(err, model.ErrCorruptRecord):
		c.logger.Warn("game session is corrupt, starting fresh",
			slog.String("error", err.Error()),
		)
		stored = nil
	case err != nil:
		return nil, false, fmt.Errorf("load game session: %w", err)
	}

	if stored != nil && stored.CurrentDate == today && stored.TodaysCharacter != nil {
		return stored, false, nil
	}

	if stored != nil && stored.CurrentDate != today {
		c.logger.Info("day rolled over",
			slog.String("previous_date", stored.CurrentDate),
			slog.String("date", today),
		)
	}

	session, err = c.start(ctx, today)
	if err != nil {
		return nil, false, err
	}
	return session, true, nil
}

// start picks a new character and saves a fresh session for date.
// Must be called with mu held.
func (c *Controller) start(ctx context.Context, date string) (*model.Session, error) {
	target, wasReset, err := c.selection.PickNext(ctx)
	if err != nil {
		return nil, err
	}

	session := model.NewSession(date, target)
	if err := c.save(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session started",
		slog.String("date", date),
		slog.Bool("ledger_reset", wasReset),
	)

	return session, nil
}

func (c *Controller) save(ctx context.Context, session *model.Session) error {
	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save game session",
			slog.String("date", session.CurrentDate),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("save game session: %w", err)
	}
	return nil
}
