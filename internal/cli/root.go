package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mcoot/mazedle-go/internal/config"
	"github.com/mcoot/mazedle-go/internal/factory"
	redisstorage "github.com/mcoot/mazedle-go/internal/storage/redis"
)

// AppBuilder wires the application from loaded configuration
type AppBuilder func(cfg *config.Config, logger *slog.Logger) (*factory.App, error)

// state is shared by every command of one invocation
type state struct {
	configFile string
	output     string

	build  AppBuilder
	logErr io.Writer

	cfg    *config.Config
	logger *slog.Logger
	app    *factory.App
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd(BuildApp, os.Stderr)
	return cmd
}

// newRootCmd also returns the shared state so callers can release the app
// when a command fails, since PersistentPostRunE only runs on success
func newRootCmd(build AppBuilder, logErr io.Writer) (*cobra.Command, *state) {
	st := &state{build: build, logErr: logErr}

	rootCmd := &cobra.Command{
		Use:   "mazedle",
		Short: "Guess the daily Maze Runner character",
		Long: `mazedle is a daily character-guessing game.

Each day a new character is chosen. You have six guesses; every guess shows
how its attributes compare to today's character. Every character appears
once before any repeats.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.open(cmd.Flags())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return st.close()
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	// Global flags
	pf.StringVar(&st.configFile, "config", "", "Config file (default ~/.mazedle/config.yaml)")
	pf.String("storage", "", "Storage backend: sqlite, memory, redis (env: MAZEDLE_STORAGE_TYPE)")
	pf.String("db-path", "", "SQLite database path (env: MAZEDLE_STORAGE_SQLITE_PATH)")
	pf.String("redis-url", "", "Redis URL (env: MAZEDLE_STORAGE_REDIS_URL)")
	pf.String("profile", "", "Device profile name (env: MAZEDLE_STORAGE_PROFILE)")
	pf.String("timezone", "", "IANA timezone for the daily reset (env: MAZEDLE_GAME_TIMEZONE)")
	pf.String("log-level", "", "Log level: debug, info, warn, error (env: MAZEDLE_LOGGING_LEVEL)")
	pf.StringVarP(&st.output, "output", "o", "text", "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newTodayCmd(st))
	rootCmd.AddCommand(newGuessCmd(st))
	rootCmd.AddCommand(newGiveUpCmd(st))
	rootCmd.AddCommand(newRestartCmd(st))
	rootCmd.AddCommand(newSearchCmd(st))
	rootCmd.AddCommand(newRosterCmd(st))
	rootCmd.AddCommand(newCountdownCmd(st))
	rootCmd.AddCommand(newSelectionCmd(st))
	rootCmd.AddCommand(newServeCmd(st))

	return rootCmd, st
}

// open loads configuration and wires the application
func (st *state) open(flags *pflag.FlagSet) error {
	if st.output != "text" && st.output != "json" {
		return fmt.Errorf("--output must be text or json")
	}

	cfg, err := config.Load(st.configFile, flags)
	if err != nil {
		return err
	}
	st.cfg = cfg
	st.logger = cfg.Logging.NewLogger(st.logErr)

	app, err := st.build(cfg, st.logger)
	if err != nil {
		return err
	}
	st.app = app
	return nil
}

func (st *state) close() error {
	if st.app == nil {
		return nil
	}
	err := st.app.Close()
	st.app = nil
	return err
}

func (st *state) out(cmd *cobra.Command) *Output {
	return NewOutput(cmd.OutOrStdout(), st.output)
}

// BuildApp wires the production application from configuration
func BuildApp(cfg *config.Config, logger *slog.Logger) (*factory.App, error) {
	location, err := cfg.Game.Location()
	if err != nil {
		return nil, err
	}

	fc := factory.Config{
		Logger:      logger,
		StorageType: cfg.Storage.Type,
		SQLitePath:  cfg.Storage.SQLitePath,
		Profile:     cfg.Storage.Profile,
		Location:    location,
	}
	if cfg.Storage.Type == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Storage.RedisURL
		redisCfg.SessionTTL = cfg.Storage.SessionTTL
		fc.RedisConfig = &redisCfg
	}

	return factory.New(fc)
}

// Execute runs the root command, cancelling its context on SIGINT or SIGTERM
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, st := newRootCmd(BuildApp, os.Stderr)
	err := cmd.ExecuteContext(ctx)
	_ = st.close()
	if err != nil {
		stop()
		os.Exit(1)
	}
}
