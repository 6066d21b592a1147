package snake

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is the tick-driven controller. It owns the board, the snake and the
// food, and is the only component that mutates them.
type Game struct {
	cfg    core.RuntimeConfig
	board  Board
	snake  *Snake
	food   *Food
	rng    *rand.Rand
	logger *log.Logger

	phase  core.Phase
	tick   uint64
	resets int
}

// New creates a running game from cfg. A nil logger discards all output.
// The only error is an invalid board geometry.
func New(cfg core.RuntimeConfig, logger *log.Logger) (*Game, error) {
	board, err := NewBoard(cfg.BoardW, cfg.BoardH, cfg.CellSize)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:    cfg,
		board:  board,
		snake:  NewSnake(board, cfg.Palette.Snake),
		food:   NewFood(cfg.Palette.Food, cfg.MaxFoodAttempts),
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		logger: logger,
		phase:  core.PhaseRunning,
	}
	g.relocateFood()

	g.logger.Info("game started",
		"board", fmt.Sprintf("%dx%d", board.Width, board.Height),
		"cell_size", board.CellSize,
		"seed", cfg.Seed,
	)
	return g, nil
}

// Step advances the game by one tick.
//
// Turns in the frame are forwarded in arrival order, a quit ends the game
// before anything moves, then the snake advances, eats, and finally resets
// if it ran into itself. Consumption is always checked before collision.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == core.PhaseTerminated {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	for _, a := range in.Actions() {
		d, ok := directionFor(a)
		if !ok {
			continue
		}
		if !g.snake.RequestTurn(d) {
			g.logger.Debug("reverse turn ignored", "tick", g.tick, "direction", d, "heading", g.snake.Direction())
		}
	}

	if in.Has(core.ActionQuit) {
		g.phase = core.PhaseTerminated
		g.logger.Info("quit requested", "tick", g.tick, "length", g.snake.Len(), "resets", g.resets)
		return core.StepResult{State: g.State()}
	}

	g.snake.Advance(g.board)
	var result core.StepResult

	if g.food.At(g.snake.Head()) {
		g.snake.Grow()
		result.Ate = true
		g.logger.Debug("food eaten", "tick", g.tick, "target_length", g.snake.TargetLength())
		g.relocateFood()
	}

	if g.snake.SelfCollision() {
		g.phase = core.PhaseResetting
		g.logger.Info("self collision, resetting", "tick", g.tick, "length", g.snake.Len(), "head", g.snake.Head())
		g.snake.Reset(g.board)
		g.resets++
		g.relocateFood()
		g.phase = core.PhaseRunning
		result.Reset = true
	}

	// A board that had no room for food may have freed a cell by now.
	if !g.food.Placed() {
		g.relocateFood()
	}

	result.State = g.State()
	return result
}

// relocateFood moves the food off the snake and logs fallback placements.
func (g *Game) relocateFood() {
	switch placement := g.food.Relocate(g.rng, g.board, g.snake.body); placement {
	case PlacedBySampling:
		pos, _ := g.food.Position()
		g.logger.Debug("food placed", "x", pos.X, "y", pos.Y)
	case PlacedByScan:
		pos, _ := g.food.Position()
		g.logger.Warn("food placed by fallback scan",
			"x", pos.X, "y", pos.Y,
			"attempts", g.food.maxAttempts,
			"length", g.snake.Len(),
			"cells", g.board.Cells(),
		)
	case NoFreeCell:
		g.logger.Warn("no free cell for food, hiding it", "length", g.snake.Len(), "cells", g.board.Cells())
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:  g.phase,
		Tick:   g.tick,
		Length: g.snake.Len(),
		Resets: g.resets,
	}
}

// Frame returns the drawable state: snake segments, then the food if placed.
func (g *Game) Frame() core.Frame {
	return core.NewFrame(
		g.board.Width, g.board.Height, g.board.CellSize,
		g.cfg.Palette.Background,
		g.snake, g.food,
	)
}

// Board returns the board geometry.
func (g *Game) Board() Board {
	return g.board
}

// TickRate returns the configured ticks per second.
func (g *Game) TickRate() int {
	return g.cfg.TickRate
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	head := g.snake.Head()
	fmt.Fprintf(&b, "Tick: %d, Phase: %s, Resets: %d\n", g.tick, g.phase, g.resets)
	fmt.Fprintf(&b, "Snake len: %d/%d, Direction: %s\n", g.snake.Len(), g.snake.TargetLength(), g.snake.Direction())
	if pos, ok := g.food.Position(); ok {
		fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", head.X, head.Y, pos.X, pos.Y)
	} else {
		fmt.Fprintf(&b, "Head: (%d, %d), Food: none\n", head.X, head.Y)
	}
	return b.String()
}
