package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	flagTicks  uint64
	flagScript string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless",
	Long: `Run the game without a terminal UI for a number of ticks, feeding
scripted input, then print the final board and state.

Script entries are "tick:action" pairs separated by commas. Actions are
up, down, left, right and quit. A scripted quit ends the run early.

Board legend: O head, o body, * food, . empty.

Examples:
  snake sim --seed 1 --ticks 4
  snake sim --seed 1 --ticks 50 --script "4:down,10:left,30:quit"`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagTicks, "ticks", 100, "Number of ticks to run")
	simCmd.Flags().StringVar(&flagScript, "script", "", `Scripted input, e.g. "4:down,10:left"`)
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	script, err := snake.ParseScript(flagScript)
	if err != nil {
		return err
	}
	cfg, err := loadRuntimeConfig(logger)
	if err != nil {
		return err
	}
	game, err := snake.New(cfg, logger)
	if err != nil {
		return err
	}

	ate, resets := 0, 0
	for tick := uint64(1); tick <= flagTicks; tick++ {
		result := game.Step(script.Frame(tick))
		if result.Ate {
			ate++
		}
		if result.Reset {
			resets++
		}
		if result.State.Terminated() {
			break
		}
	}

	frame := game.Frame()
	style := core.FrameStyle{CellWidth: 1, Empty: '.'}
	w, h := core.FrameSize(frame, style)
	screen := core.NewScreen(w, h)
	screen.DrawFrame(frame, style)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, screen.String())
	fmt.Fprint(out, game.DebugState())
	fmt.Fprintf(out, "Eaten: %d, Resets: %d\n", ate, resets)
	return nil
}
