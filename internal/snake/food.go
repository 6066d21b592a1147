package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// DefaultMaxFoodAttempts bounds the random draws of a single relocation.
const DefaultMaxFoodAttempts = 1024

// Sampler is the subset of *rand.Rand used for food placement.
type Sampler interface {
	Intn(n int) int
}

// Placement reports how a relocation found its cell.
type Placement int

const (
	PlacedBySampling Placement = iota // A random draw hit a free cell
	PlacedByScan                      // Draws were exhausted; a row-major scan found a free cell
	NoFreeCell                        // Every cell is excluded; the food is hidden
)

func (p Placement) String() string {
	switch p {
	case PlacedBySampling:
		return "sampling"
	case PlacedByScan:
		return "scan"
	case NoFreeCell:
		return "no_free_cell"
	default:
		return "unknown"
	}
}

// Food is the single consumable item. While placed, its position is never
// on an excluded cell.
type Food struct {
	position    core.Point
	placed      bool
	maxAttempts int
	color       core.Color
}

// NewFood creates an unplaced food item. maxAttempts <= 0 selects
// DefaultMaxFoodAttempts.
func NewFood(color core.Color, maxAttempts int) *Food {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxFoodAttempts
	}
	return &Food{color: color, maxAttempts: maxAttempts}
}

// Relocate moves the food to a cell outside excluded. Each draw samples
// both axes independently and uniformly, and draws are rejected until one
// misses excluded. After maxAttempts rejections it scans the board instead.
func (f *Food) Relocate(rng Sampler, board Board, excluded []core.Point) Placement {
	taken := make(map[core.Point]struct{}, len(excluded))
	for _, p := range excluded {
		taken[p] = struct{}{}
	}

	for i := 0; i < f.maxAttempts; i++ {
		p := core.Point{X: rng.Intn(board.Width), Y: rng.Intn(board.Height)}
		if _, ok := taken[p]; !ok {
			f.place(p)
			return PlacedBySampling
		}
	}

	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			p := core.Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				f.place(p)
				return PlacedByScan
			}
		}
	}

	f.placed = false
	return NoFreeCell
}

func (f *Food) place(p core.Point) {
	f.position = p
	f.placed = true
}

// Position returns the food cell and whether the food is placed.
func (f *Food) Position() (core.Point, bool) {
	return f.position, f.placed
}

// At reports whether the food is placed on p.
func (f *Food) At(p core.Point) bool {
	return f.placed && f.position == p
}

// Placed reports whether the food is on the board.
func (f *Food) Placed() bool {
	return f.placed
}

// ID implements core.Drawable.
func (f *Food) ID() string { return "food" }

// Positions implements core.Drawable. A hidden food has no positions.
func (f *Food) Positions() []core.Point {
	if !f.placed {
		return nil
	}
	return []core.Point{f.position}
}

// Color implements core.Drawable.
func (f *Food) Color() core.Color { return f.color }

// Glyph implements core.Drawable.
func (f *Food) Glyph(int) rune { return '*' }
