package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

// Process exit codes.
const (
	exitOK      = 0
	exitDisplay = 1
	exitSnake   = 2
	exitState   = 3
	exitConfig  = 4
)

var errConfig = errors.New("configuration error")

// exitCode maps a fatal error to the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, snake.ErrSnakeInit):
		return exitSnake
	case errors.Is(err, snake.ErrStateInit):
		return exitState
	case errors.Is(err, errConfig), errors.Is(err, config.ErrInvalid):
		return exitConfig
	case errors.Is(err, tui.ErrDisplay):
		return exitDisplay
	default:
		return exitDisplay
	}
}

// loadConfig loads the game config and applies flag overrides.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", errConfig, err)
	}
	if flagFPS != 0 {
		cfg.Loop.FPS = flagFPS
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%w: --fps: %w", errConfig, err)
		}
	}
	return cfg, nil
}

// resolveSeed returns the seed from flags, or a time-based one.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newGame builds the snake and the game state described by cfg.
func newGame(cfg config.SnakeConfig, seed int64) (*snake.State, snake.Palette, error) {
	bg, body, apple, err := cfg.Palette()
	if err != nil {
		return nil, snake.Palette{}, fmt.Errorf("%w: %w", errConfig, err)
	}
	palette := snake.Palette{Background: bg, Snake: body, Apple: apple}

	grid := cfg.Board()
	s, err := snake.New(grid, cfg.Start(), cfg.Direction(), cfg.Snake.InitialSize)
	if err != nil {
		return nil, palette, err
	}

	st, err := snake.NewState(s, grid, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, palette, err
	}
	return st, palette, nil
}

// runtimeConfig builds the platform runtime config.
func runtimeConfig(cfg config.SnakeConfig, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate: cfg.Loop.FPS,
		Seed:     seed,
	}
}
