package storage

import (
	"context"

	"github.com/mcoot/mazedle-go/internal/model"
)

// Record names, shared by every backend
const (
	LedgerRecord  = "mazedle-character-selection"
	SessionRecord = "mazedle-game-state"
)

// DefaultProfile namespaces records when no profile is configured
const DefaultProfile = "default"

// Storage defines the interface for persisting the two per-profile records.
//
// Get methods return the record's not-found error when nothing is stored and
// an error wrapping model.ErrCorruptRecord when the stored bytes cannot be
// decoded. Any other error is a storage fault.
type Storage interface {
	// Selection ledger
	GetLedger(ctx context.Context) (*model.Ledger, error)
	SaveLedger(ctx context.Context, ledger *model.Ledger) error

	// Game session
	GetSession(ctx context.Context) (*model.Session, error)
	SaveSession(ctx context.Context, session *model.Session) error

	Close() error
}
