// Package config provides YAML-based game configuration loading and
// validation for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Snake  SnakeSetup   `yaml:"snake"`
	Loop   LoopConfig   `yaml:"loop"`
	Colors ColorsConfig `yaml:"colors"`
}

// GridConfig defines the board geometry.
type GridConfig struct {
	Unit   int `yaml:"unit"`   // Pixels per unit
	Width  int `yaml:"width"`  // Width in units
	Height int `yaml:"height"` // Height in units
}

// SnakeSetup defines where and how the snake starts.
type SnakeSetup struct {
	StartX      int `yaml:"start_x"`
	StartY      int `yaml:"start_y"`
	DirX        int `yaml:"dir_x"`
	DirY        int `yaml:"dir_y"`
	InitialSize int `yaml:"initial_size"`
}

// LoopConfig defines the tick rate.
type LoopConfig struct {
	FPS int `yaml:"fps"`
}

// ColorsConfig holds the three board colors as "#rrggbb".
type ColorsConfig struct {
	Background string `yaml:"background"`
	Snake      string `yaml:"snake"`
	Apple      string `yaml:"apple"`
}

// Board returns the grid described by the config.
func (c SnakeConfig) Board() core.Grid {
	return core.NewGrid(c.Grid.Unit, c.Grid.Width, c.Grid.Height)
}

// Start returns the head's starting cell.
func (c SnakeConfig) Start() core.Cell {
	return core.C(c.Snake.StartX, c.Snake.StartY)
}

// Direction returns the initial head direction.
func (c SnakeConfig) Direction() core.Direction {
	return core.Direction{DX: c.Snake.DirX, DY: c.Snake.DirY}
}

// Palette parses the configured colors.
func (c SnakeConfig) Palette() (bg, snake, apple core.Color, err error) {
	if bg, err = core.ParseHex(c.Colors.Background); err != nil {
		return bg, snake, apple, fmt.Errorf("%w: background: %w", ErrInvalid, err)
	}
	if snake, err = core.ParseHex(c.Colors.Snake); err != nil {
		return bg, snake, apple, fmt.Errorf("%w: snake: %w", ErrInvalid, err)
	}
	if apple, err = core.ParseHex(c.Colors.Apple); err != nil {
		return bg, snake, apple, fmt.Errorf("%w: apple: %w", ErrInvalid, err)
	}
	return bg, snake, apple, nil
}

// Validate checks the config for values the game cannot run with.
// Whether the snake fits the board is left to the snake constructor.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Unit <= 0:
		return fmt.Errorf("%w: grid.unit must be positive, got %d", ErrInvalid, c.Grid.Unit)
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, c.Grid.Width, c.Grid.Height)
	case c.Loop.FPS <= 0:
		return fmt.Errorf("%w: loop.fps must be positive, got %d", ErrInvalid, c.Loop.FPS)
	case c.Snake.InitialSize < 1:
		return fmt.Errorf("%w: snake.initial_size must be at least 1, got %d", ErrInvalid, c.Snake.InitialSize)
	case !c.Direction().Valid():
		return fmt.Errorf("%w: snake direction (%d,%d) must be a unit step along one axis",
			ErrInvalid, c.Snake.DirX, c.Snake.DirY)
	}

	board := c.Board()
	if start := c.Start(); !board.Contains(start) || !board.Aligned(start) {
		return fmt.Errorf("%w: snake start %v must be a multiple of %d inside %dx%d pixels",
			ErrInvalid, start, c.Grid.Unit, board.WidthPx(), board.HeightPx())
	}

	_, _, _, err := c.Palette()
	return err
}
