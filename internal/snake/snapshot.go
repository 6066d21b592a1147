package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Phase        core.Phase
	Resets       int
	SnakeLen     int
	TargetLength int
	HeadX        int
	HeadY        int
	Dir          Direction
	FoodX        int
	FoodY        int
	FoodPlaced   bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	food, placed := g.food.Position()

	return Snapshot{
		Tick:         g.tick,
		Phase:        g.phase,
		Resets:       g.resets,
		SnakeLen:     g.snake.Len(),
		TargetLength: g.snake.TargetLength(),
		HeadX:        head.X,
		HeadY:        head.Y,
		Dir:          g.snake.Direction(),
		FoodX:        food.X,
		FoodY:        food.Y,
		FoodPlaced:   placed,
	}
}
