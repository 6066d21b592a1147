// Package config provides YAML-based configuration loading for the snake
// game. Configuration is read once at startup and never changes while a
// game is running.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board    BoardConfig  `yaml:"board"`
	TickRate int          `yaml:"tick_rate"`
	Colors   ColorsConfig `yaml:"colors"`
	Food     FoodConfig   `yaml:"food"`
}

// BoardConfig defines the grid geometry.
type BoardConfig struct {
	Width    int `yaml:"width"`     // Cells
	Height   int `yaml:"height"`    // Cells
	CellSize int `yaml:"cell_size"` // Pixels per cell
}

// ColorsConfig defines the drawable state colors by name (e.g. "bright_green").
type ColorsConfig struct {
	Snake      core.Color `yaml:"snake"`
	Food       core.Color `yaml:"food"`
	Background core.Color `yaml:"background"`
}

// FoodConfig defines food placement parameters.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Random draws before the fallback scan
}

// Validate checks that every value is usable.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Board.Width < 1 {
		errs = append(errs, fmt.Errorf("board.width must be >= 1, got %d", c.Board.Width))
	}
	if c.Board.Height < 1 {
		errs = append(errs, fmt.Errorf("board.height must be >= 1, got %d", c.Board.Height))
	}
	if c.Board.CellSize < 1 {
		errs = append(errs, fmt.Errorf("board.cell_size must be >= 1, got %d", c.Board.CellSize))
	}
	if c.TickRate < 1 {
		errs = append(errs, fmt.Errorf("tick_rate must be >= 1, got %d", c.TickRate))
	}
	if c.Food.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("food.max_attempts must be >= 0, got %d", c.Food.MaxAttempts))
	}
	if c.Colors.Snake == c.Colors.Background {
		errs = append(errs, fmt.Errorf("colors.snake must differ from colors.background (%s)", c.Colors.Background))
	}
	if c.Colors.Food == c.Colors.Snake {
		errs = append(errs, fmt.Errorf("colors.food must differ from colors.snake (%s)", c.Colors.Snake))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// RuntimeConfig converts the configuration into the game's runtime config.
func (c SnakeConfig) RuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		BoardW:          c.Board.Width,
		BoardH:          c.Board.Height,
		CellSize:        c.Board.CellSize,
		TickRate:        c.TickRate,
		Seed:            seed,
		MaxFoodAttempts: c.Food.MaxAttempts,
		Palette: core.Palette{
			Snake:      c.Colors.Snake,
			Food:       c.Colors.Food,
			Background: c.Colors.Background,
		},
	}
}
