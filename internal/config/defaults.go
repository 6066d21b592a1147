package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	rt := core.DefaultConfig()
	return SnakeConfig{
		Board: BoardConfig{
			Width:    rt.BoardW,
			Height:   rt.BoardH,
			CellSize: rt.CellSize,
		},
		TickRate: rt.TickRate,
		Colors: ColorsConfig{
			Snake:      rt.Palette.Snake,
			Food:       rt.Palette.Food,
			Background: rt.Palette.Background,
		},
		Food: FoodConfig{
			MaxAttempts: rt.MaxFoodAttempts,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
