// breakout is a terminal breakout game with a headless simulation mode.
//
// Usage:
//
//	breakout play            - Play in the terminal
//	breakout demo            - Watch the Lua autopilot play
//	breakout scores          - Show high scores
//	breakout serve           - Start SSH server for remote play
//	breakout config          - Print or check the effective configuration
//
// Global flags:
//
//	--config <path>       - Game config file (.yaml or .toml)
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--seed <value>        - RNG seed for reproducible launches
//	--db <dsn>            - SQLite path or postgres:// URL for scores
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - clear the bricks in your terminal",
	Long: `Breakout is a terminal version of the classic brick breaker.

Available commands:
  play     - Play in the terminal
  demo     - Watch the scripted autopilot play
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print or check the effective configuration

Examples:
  breakout play
  breakout play --difficulty hard
  breakout demo --headless --seed 42
  breakout serve --ssh :2222
  breakout scores --all`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "SQLite path or postgres:// URL for scores")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// gameSetup is the resolved configuration shared by every command.
type gameSetup struct {
	cfg    config.Config
	source string
	preset config.DifficultyPreset
}

// loadSetup loads the config file, applies the --difficulty preset and
// validates the result.
func loadSetup() (gameSetup, error) {
	return setupFor(flagDifficulty)
}

func setupFor(difficulty string) (gameSetup, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return gameSetup{}, err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return gameSetup{}, err
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return gameSetup{}, fmt.Errorf("config %s with %s preset: %w", source, preset, err)
	}

	return gameSetup{cfg: cfg, source: source, preset: preset}, nil
}

// newLogger builds the process logger. The level comes from --log-level,
// falling back to the config file.
func newLogger(w io.Writer, cfg config.Config) (*log.Logger, error) {
	levelName := flagLogLevel
	if levelName == "" {
		levelName = cfg.Logging.Level
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           level,
	}), nil
}

// logOutput returns the log destination. When the terminal is owned by the
// UI and no --log-file is set, logs are discarded.
func logOutput(fallback io.Writer) (io.Writer, func(), error) {
	if flagLogFile == "" {
		return fallback, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// openStore opens the score database. Failure is not fatal: the game keeps
// its high score in memory.
func openStore(ctx context.Context, logger *log.Logger) *storage.Store {
	store, err := storage.Open(ctx, flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, high score will not persist", "error", err)
		return nil
	}
	logger.Debug("scores database ready", "backend", store.Backend())
	return store
}
