package memory

import (
	"context"
	"sync"

	"github.com/mcoot/mazedle-go/internal/model"
	"github.com/mcoot/mazedle-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Records are kept in their encoded form so callers never share state.
type Storage struct {
	mu sync.RWMutex

	records map[string][]byte
	failure error
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		records: make(map[string][]byte),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// PutRaw stores bytes under a record name without validation
func (s *Storage) PutRaw(record string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record] = append([]byte(nil), data...)
}

// Raw returns the stored bytes for a record
func (s *Storage) Raw(record string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.records[record]
	return data, ok
}

// SetFailure makes every operation return err until cleared with nil
func (s *Storage) SetFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

// Ledger operations

func (s *Storage) GetLedger(ctx context.Context) (*model.Ledger, error) {
	data, err := s.get(storage.LedgerRecord)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, model.ErrLedgerNotFound
	}
	return storage.DecodeLedger(data)
}

func (s *Storage) SaveLedger(ctx context.Context, ledger *model.Ledger) error {
	data, err := storage.EncodeLedger(ledger)
	if err != nil {
		return err
	}
	return s.set(storage.LedgerRecord, data)
}

// Session operations

func (s *Storage) GetSession(ctx context.Context) (*model.Session, error) {
	data, err := s.get(storage.SessionRecord)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, model.ErrSessionNotFound
	}
	return storage.DecodeSession(data)
}

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := storage.EncodeSession(session)
	if err != nil {
		return err
	}
	return s.set(storage.SessionRecord, data)
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) get(record string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failure != nil {
		return nil, s.failure
	}
	return s.records[record], nil
}

func (s *Storage) set(record string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return s.failure
	}
	s.records[record] = data
	return nil
}
