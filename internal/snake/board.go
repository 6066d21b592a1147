// Package snake implements the snake game state machine: a torus-shaped
// board, a snake that moves one cell per tick, and a single food item.
// It renders nothing itself; adapters consume Game.Frame().
package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidBoard is returned when a board dimension is below 1.
var ErrInvalidBoard = errors.New("snake: invalid board")

// Board is the static grid geometry. Positions are kept in cell units and
// wrap around both axes, so the board behaves as a torus.
type Board struct {
	Width    int // Width in cells
	Height   int // Height in cells
	CellSize int // Cell size in pixels
}

// NewBoard validates and returns a board.
func NewBoard(width, height, cellSize int) (Board, error) {
	if width < 1 || height < 1 || cellSize < 1 {
		return Board{}, fmt.Errorf("%w: %dx%d cells of %dpx, all must be >= 1",
			ErrInvalidBoard, width, height, cellSize)
	}
	return Board{Width: width, Height: height, CellSize: cellSize}, nil
}

// Wrap adds delta to p and wraps each axis, so leaving one edge re-enters
// at the opposite edge.
func (b Board) Wrap(p, delta core.Point) core.Point {
	n := p.Add(delta)
	return core.Point{
		X: core.Mod(n.X, b.Width),
		Y: core.Mod(n.Y, b.Height),
	}
}

// Center returns the spawn cell.
func (b Board) Center() core.Point {
	return core.Point{X: b.Width / 2, Y: b.Height / 2}
}

// Contains reports whether p lies on the board.
func (b Board) Contains(p core.Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Cells returns the number of cells on the board.
func (b Board) Cells() int {
	return b.Width * b.Height
}

// Pixel returns the top-left pixel of cell p.
func (b Board) Pixel(p core.Point) (x, y int) {
	return p.X * b.CellSize, p.Y * b.CellSize
}

// Extent returns the board size in pixels.
func (b Board) Extent() (w, h int) {
	return b.Width * b.CellSize, b.Height * b.CellSize
}
