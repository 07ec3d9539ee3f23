package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration: a 30x30 board
// of 10 pixel units, a 3 cell snake heading left from the center, 10 ticks
// per second.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Unit:   10,
			Width:  30,
			Height: 30,
		},
		Snake: SnakeSetup{
			StartX:      150,
			StartY:      150,
			DirX:        -1,
			DirY:        0,
			InitialSize: 3,
		},
		Loop: LoopConfig{
			FPS: 10,
		},
		Colors: ColorsConfig{
			Background: "#000000",
			Snake:      "#00ff00",
			Apple:      "#ff0000",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
