package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/mazedle-go/internal/model"
	"github.com/mcoot/mazedle-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.Profile == "" {
		cfg.Profile = storage.DefaultProfile
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Ledger operations

func (s *Storage) GetLedger(ctx context.Context) (*model.Ledger, error) {
	data, err := s.get(ctx, storage.LedgerRecord, model.ErrLedgerNotFound)
	if err != nil {
		return nil, err
	}
	return storage.DecodeLedger(data)
}

// SaveLedger stores the ledger without expiry; it must outlive any session
func (s *Storage) SaveLedger(ctx context.Context, ledger *model.Ledger) error {
	data, err := storage.EncodeLedger(ledger)
	if err != nil {
		return err
	}
	return s.set(ctx, storage.LedgerRecord, data, 0)
}

// Session operations

func (s *Storage) GetSession(ctx context.Context) (*model.Session, error) {
	data, err := s.get(ctx, storage.SessionRecord, model.ErrSessionNotFound)
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
	return s.set(ctx, storage.SessionRecord, data, s.cfg.SessionTTL)
}

func (s *Storage) get(ctx context.Context, record string, notFound error) ([]byte, error) {
	data, err := s.client.Get(ctx, recordKey(s.cfg.Profile, record)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, notFound
	case err != nil:
		return nil, fmt.Errorf("%w: get %s: %v", model.ErrStorageUnavailable, record, err)
	}
	return data, nil
}

func (s *Storage) set(ctx context.Context, record string, data []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, recordKey(s.cfg.Profile, record), data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", model.ErrStorageUnavailable, record, err)
	}
	return nil
}
