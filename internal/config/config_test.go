package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestDefaultsValid(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	if cfg.Board() != core.NewGrid(10, 30, 30) {
		t.Errorf("Board() = %+v, expected 30x30 unit 10", cfg.Board())
	}
	if cfg.Direction() != core.DirLeft {
		t.Errorf("Direction() = %v, expected left", cfg.Direction())
	}

	bg, snake, apple, err := cfg.Palette()
	if err != nil {
		t.Fatalf("Palette() error: %v", err)
	}
	if bg != core.ColorBlack || snake != core.ColorGreen || apple != core.ColorRed {
		t.Errorf("Palette() = %v %v %v, expected black green red", bg, snake, apple)
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
}

func TestParseKeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := Parse([]byte("loop:\n  fps: 20\ngrid:\n  width: 40\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if cfg.Loop.FPS != 20 {
		t.Errorf("fps = %d, expected 20", cfg.Loop.FPS)
	}
	if cfg.Grid.Width != 40 {
		t.Errorf("width = %d, expected 40", cfg.Grid.Width)
	}
	if cfg.Grid.Height != 30 || cfg.Grid.Unit != 10 {
		t.Errorf("unset grid fields changed: %+v", cfg.Grid)
	}
	if cfg.Colors.Apple != "#ff0000" {
		t.Errorf("apple color = %q, expected default", cfg.Colors.Apple)
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("grid: [1, 2"))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Parse() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SnakeConfig)
	}{
		{"zero unit", func(c *SnakeConfig) { c.Grid.Unit = 0 }},
		{"empty grid", func(c *SnakeConfig) { c.Grid.Width = 0 }},
		{"zero fps", func(c *SnakeConfig) { c.Loop.FPS = 0 }},
		{"zero size", func(c *SnakeConfig) { c.Snake.InitialSize = 0 }},
		{"no direction", func(c *SnakeConfig) { c.Snake.DirX = 0 }},
		{"diagonal", func(c *SnakeConfig) { c.Snake.DirY = 1 }},
		{"long step", func(c *SnakeConfig) { c.Snake.DirX = -2 }},
		{"unaligned start", func(c *SnakeConfig) { c.Snake.StartX = 45 }},
		{"start off board", func(c *SnakeConfig) { c.Snake.StartY = 300 }},
		{"bad color", func(c *SnakeConfig) { c.Colors.Snake = "green" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	data := []byte("snake:\n  start_x: 0\n  start_y: 0\n  dir_x: 0\n  dir_y: 1\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() error: %v", err)
	}
	if cfg.Start() != core.C(0, 0) || cfg.Direction() != core.DirDown {
		t.Errorf("start %v dir %v, expected (0,0) down", cfg.Start(), cfg.Direction())
	}
}

func TestLoadSnakeErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("loop:\n  fps: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadSnake() error = %v, expected ErrInvalid", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Colors.Background = "#101010"

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, expected %+v", back, cfg)
	}
}
