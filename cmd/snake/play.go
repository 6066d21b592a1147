package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a full-screen game in the terminal.

Controls:
  Arrows/WASD/HJKL  - Turn
  Q/Esc/Ctrl+C      - Quit

The snake wraps around the board edges. Running into your own body
starts a fresh snake in the middle of the board.

Examples:
  snake play
  snake play --seed 42
  snake play --fps 10 --log snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, err := loadRuntimeConfig(logger)
	if err != nil {
		return err
	}

	game, err := snake.New(cfg, logger)
	if err != nil {
		return err
	}

	// Get terminal size for the first frame, before Bubble Tea reports it
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(game, logger, width, height)
}
