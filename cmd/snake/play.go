package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := resolveSeed()
	st, palette, err := newGame(cfg, seed)
	if err != nil {
		return err
	}

	grid := cfg.Board()
	if err := tui.CheckTerminal(os.Stdout, grid); err != nil {
		return err
	}

	// Stderr belongs to the terminal UI while the round runs.
	var gameLogger *log.Logger
	if logFile != nil {
		gameLogger = logger.WithPrefix("snake/loop")
	}

	logger.Info("starting round",
		"board", fmt.Sprintf("%dx%d", grid.W, grid.H),
		"unit", grid.Unit,
		"fps", cfg.Loop.FPS,
		"seed", seed,
	)

	out, err := tui.Run(st, palette, runtimeConfig(cfg, seed), gameLogger)
	if err != nil {
		return err
	}

	logger.Info("round over",
		"reason", out.Reason,
		"length", out.Snapshot.SnakeLen,
		"ticks", out.Snapshot.Tick,
	)
	return nil
}
