// snake is a terminal snake game.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play full-screen in the terminal
//	snake sim                - Run the game headless and print the final board
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - RNG seed for reproducible gameplay (0 = time based)
//	--fps <rate>        - Tick rate override (0 = config value)
//	--log <path>        - Write logs to a file (default: discard)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagFPS      int
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic arcade game in your terminal",
	Long: `Snake is a real-time arcade game on a wrapping grid. Eat food to
grow; running into yourself starts the snake over.

Available commands:
  play     - Play the game (default)
  sim      - Run headless with a scripted input sequence
  config   - Print the effective configuration

Examples:
  snake
  snake play --seed 42 --fps 10
  snake sim --ticks 100 --script "4:down,10:left"
  snake config --config ./my-snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadRuntimeConfig resolves the config file and applies the global flag overrides.
func loadRuntimeConfig(logger *log.Logger) (core.RuntimeConfig, error) {
	cfg, source, err := config.LoadSnake(flagConfig)
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	logger.Debug("config loaded", "source", source)

	if flagFPS < 0 {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be >= 0, got %d", flagFPS)
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return cfg.RuntimeConfig(seed), nil
}

// newLogger builds the process logger. The terminal belongs to the game, so
// without --log the output is discarded. The returned close func is never nil.
func newLogger() (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closeFn, nil
}
