package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mcoot/mazedle-go/internal/model"
	"github.com/mcoot/mazedle-go/internal/storage"
)

const currentVersion = 1

// Storage is a SQLite-backed implementation of the storage interface.
// Both records live in one key-value table, namespaced by profile.
type Storage struct {
	db      *sql.DB
	profile string
}

// New opens (or creates) the database at path and runs migrations
func New(path, profile string) (*Storage, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// one connection, so :memory: databases are not split across connections
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	if profile == "" {
		profile = storage.DefaultProfile
	}

	s := &Storage{db: db, profile: profile}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory database, for tests
func NewMemory(profile string) (*Storage, error) {
	return New(":memory:", profile)
}

// DefaultPath returns <user config dir>/mazedle/mazedle.db
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mazedle", "mazedle.db"), nil
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Storage) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS records (
		profile     TEXT NOT NULL,
		key         TEXT NOT NULL,
		value       BLOB NOT NULL,
		updated_at  TEXT NOT NULL,
		PRIMARY KEY (profile, key)
	);
	`
	_, err := s.db.Exec(ddl)
	return err
}

// Ledger operations

func (s *Storage) GetLedger(ctx context.Context) (*model.Ledger, error) {
	data, err := s.get(ctx, storage.LedgerRecord)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrLedgerNotFound
	}
	if err != nil {
		return nil, err
	}
	return storage.DecodeLedger(data)
}

func (s *Storage) SaveLedger(ctx context.Context, ledger *model.Ledger) error {
	data, err := storage.EncodeLedger(ledger)
	if err != nil {
		return err
	}
	return s.put(ctx, storage.LedgerRecord, data)
}

// Session operations

func (s *Storage) GetSession(ctx context.Context) (*model.Session, error) {
	data, err := s.get(ctx, storage.SessionRecord)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return storage.DecodeSession(data)
}

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := storage.EncodeSession(session)
	if err != nil {
		return err
	}
	return s.put(ctx, storage.SessionRecord, data)
}

// PutRaw stores bytes under a record name without validation
func (s *Storage) PutRaw(ctx context.Context, record string, data []byte) error {
	return s.put(ctx, record, data)
}

func (s *Storage) get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM records WHERE profile = ? AND key = ?`,
		s.profile, key,
	).Scan(&data)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: get record %q: %v", model.ErrStorageUnavailable, key, err)
	}
	return data, err
}

func (s *Storage) put(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records (profile, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(profile, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.profile, key, data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("%w: put record %q: %v", model.ErrStorageUnavailable, key, err)
	}
	return nil
}
