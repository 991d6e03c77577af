package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // game.timezone resolves without system zoneinfo

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultListenAddr keeps the API on loopback
	DefaultListenAddr = "127.0.0.1:7480"

	// DefaultRolloverCheckInterval is how often serve checks for a new day
	DefaultRolloverCheckInterval = time.Second
)

// Config holds all configuration for mazedle.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Game    GameConfig    `mapstructure:"game"`
	API     APIConfig     `mapstructure:"api"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	Type       string        `mapstructure:"type"` // sqlite, memory or redis
	SQLitePath string        `mapstructure:"sqlite_path"`
	RedisURL   string        `mapstructure:"redis_url"`
	Profile    string        `mapstructure:"profile"`
	SessionTTL time.Duration `mapstructure:"session_ttl"` // redis only
}

// GameConfig holds day-boundary settings.
type GameConfig struct {
	Timezone              string        `mapstructure:"timezone"` // IANA name, empty for the system zone
	RolloverCheckInterval time.Duration `mapstructure:"rollover_check_interval"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// FlagKeys maps command-line flag names to configuration keys. Flags that
// are present in the flag set passed to Load override every other source.
var FlagKeys = map[string]string{
	"storage":   "storage.type",
	"db-path":   "storage.sqlite_path",
	"redis-url": "storage.redis_url",
	"profile":   "storage.profile",
	"timezone":  "game.timezone",
	"listen":    "api.listen_addr",
	"log-level": "logging.level",
}

// Load reads configuration from defaults, an optional config file,
// MAZEDLE_* environment variables and flags, in increasing precedence.
// An explicit configFile must exist; otherwise config.yaml is looked up in
// ~/.mazedle and the working directory.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("storage.type", "sqlite")
	v.SetDefault("storage.sqlite_path", "")
	v.SetDefault("storage.redis_url", "redis://localhost:6379")
	v.SetDefault("storage.profile", "default")
	v.SetDefault("storage.session_ttl", 48*time.Hour)

	v.SetDefault("game.timezone", "")
	v.SetDefault("game.rollover_check_interval", DefaultRolloverCheckInterval)

	v.SetDefault("api.listen_addr", DefaultListenAddr)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "json")

	// Config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(homeDir(), ".mazedle"))
		v.AddConfigPath(".")
	}

	// Environment variables
	v.SetEnvPrefix("MAZEDLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that configuration fields are set and consistent.
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case "memory", "sqlite":
	case "redis":
		if c.Storage.RedisURL == "" {
			return fmt.Errorf("storage.redis_url must not be empty when storage.type is redis")
		}
	default:
		return fmt.Errorf("storage.type must be one of memory, sqlite, redis (got %q)", c.Storage.Type)
	}
	if strings.TrimSpace(c.Storage.Profile) == "" {
		return fmt.Errorf("storage.profile must not be empty")
	}
	if strings.Contains(c.Storage.Profile, ":") {
		return fmt.Errorf("storage.profile must not contain ':'")
	}
	if c.Storage.SessionTTL < 0 {
		return fmt.Errorf("storage.session_ttl must be >= 0")
	}
	if _, err := c.Game.Location(); err != nil {
		return fmt.Errorf("game.timezone: %w", err)
	}
	if c.Game.RolloverCheckInterval <= 0 {
		return fmt.Errorf("game.rollover_check_interval must be greater than 0")
	}
	if c.API.ListenAddr == "" {
		return fmt.Errorf("api.listen_addr must not be empty")
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text (got %q)", c.Logging.Format)
	}
	return nil
}

// Location resolves the configured timezone. Empty means the system zone.
func (g GameConfig) Location() (*time.Location, error) {
	if g.Timezone == "" || g.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(g.Timezone)
}

// SlogLevel parses the configured level name.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("logging.level must be debug, info, warn or error (got %q)", l.Level)
	}
	return level, nil
}

// NewLogger builds the application logger writing to w.
func (l LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := l.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
