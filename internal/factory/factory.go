package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/mazedle-go/internal/dependencies/clock"
	"github.com/mcoot/mazedle-go/internal/dependencies/random"
	"github.com/mcoot/mazedle-go/internal/services/calendar"
	"github.com/mcoot/mazedle-go/internal/services/comparison"
	"github.com/mcoot/mazedle-go/internal/services/roster"
	"github.com/mcoot/mazedle-go/internal/services/selection"
	"github.com/mcoot/mazedle-go/internal/services/session"
	"github.com/mcoot/mazedle-go/internal/storage"
	"github.com/mcoot/mazedle-go/internal/storage/memory"
	redisstorage "github.com/mcoot/mazedle-go/internal/storage/redis"
	"github.com/mcoot/mazedle-go/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeSQLite = "sqlite"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Roster            *roster.Roster
	Calendar          *calendar.Service
	ComparisonService *comparison.Service
	SelectionEngine   *selection.Engine
	SessionController *session.Controller

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "sqlite" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// SQLitePath is the database file (optional, used if StorageType is "sqlite")
	// If empty, sqlite.DefaultPath() is used
	SQLitePath string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Profile namespaces persisted records (optional)
	Profile string
	// Location sets the local day boundary (optional, defaults to time.Local)
	Location *time.Location
	// Roster overrides the built-in character roster (optional)
	Roster *roster.Roster
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	profile := cfg.Profile
	if profile == "" {
		profile = storage.DefaultProfile
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeSQLite:
		path := cfg.SQLitePath
		if path == "" {
			defaultPath, err := sqlite.DefaultPath()
			if err != nil {
				return nil, err
			}
			path = defaultPath
		}
		sqliteStore, err := sqlite.New(path, profile)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisCfg := *cfg.RedisConfig
		redisCfg.Profile = profile
		redisStore, err := redisstorage.New(redisCfg)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'sqlite' or 'redis'", storageType)
	}

	characters := cfg.Roster
	if characters == nil {
		characters = roster.Default()
	}

	logger.Debug("storage opened",
		slog.String("type", storageType),
		slog.String("profile", profile),
	)

	return newWithDependencies(store, clock.New(), random.New(), characters, cfg.Location, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	characters *roster.Roster,
	location *time.Location,
	logger *slog.Logger,
) *App {
	cal := calendar.New(clk, location)
	selectionEngine := selection.New(store, characters, cal, rnd, logger)
	sessionController := session.NewController(store, selectionEngine, characters, cal, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Roster:            characters,
		Calendar:          cal,
		ComparisonService: comparison.New(),
		SelectionEngine:   selectionEngine,
		SessionController: sessionController,
		Logger:            logger,
	}
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.Storage.Close()
}
