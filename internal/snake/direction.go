package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit vector of the direction in cell units.
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Point{X: 0, Y: -1}
	case DirDown:
		return core.Point{X: 0, Y: 1}
	case DirLeft:
		return core.Point{X: -1, Y: 0}
	default:
		return core.Point{X: 1, Y: 0}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection resolves "up", "down", "left" or "right".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return DirRight, fmt.Errorf("snake: unknown direction %q", s)
}

// directionFor maps a turn action to its direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return DirRight, false
}

// action is the inverse of directionFor.
func (d Direction) action() core.Action {
	switch d {
	case DirUp:
		return core.ActionUp
	case DirDown:
		return core.ActionDown
	case DirLeft:
		return core.ActionLeft
	default:
		return core.ActionRight
	}
}
