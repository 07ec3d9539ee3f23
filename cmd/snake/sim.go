package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagTicks int
	flagMoves string
	flagTrace bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless",
	Long: `Run the simulation without a display and print snapshots.

Moves are read one character per tick:
  u d l r  - Turn up, down, left, right
  q        - Quit
  anything else - No input

The run stops after --ticks ticks, on quit, or when the snake runs into
itself.

Examples:
  snake sim --seed 42
  snake sim --ticks 20 --moves "..u..r..d" --trace`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 100, "Number of ticks to run")
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Scripted input, one character per tick")
	simCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print a snapshot after every tick")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := resolveSeed()
	st, _, err := newGame(cfg, seed)
	if err != nil {
		return err
	}

	logger.Debug("simulating", "ticks", flagTicks, "seed", seed)
	simulate(cmd.OutOrStdout(), st, flagMoves, flagTicks, flagTrace)
	return nil
}

// simulate drives st with the scripted moves and writes snapshots to w.
func simulate(w io.Writer, st *snake.State, moves string, ticks int, trace bool) snake.TickResult {
	script := []rune(moves)
	var res snake.TickResult
	for i := 0; i < ticks; i++ {
		in := core.NewInputFrame()
		if i < len(script) {
			in.Set(moveAction(script[i]))
		}

		res = st.Tick(in)
		if trace {
			fmt.Fprintln(w, st.Snapshot())
		}

		switch {
		case res.Quit:
			fmt.Fprintf(w, "quit at tick %d\n", st.Ticks())
			return res
		case res.Terminal:
			fmt.Fprintf(w, "collision at tick %d\n", st.Ticks())
			if !trace {
				fmt.Fprintln(w, st.Snapshot())
			}
			return res
		}
	}

	if !trace {
		fmt.Fprintln(w, st.Snapshot())
	}
	return res
}

// moveAction maps a script character to an action.
func moveAction(r rune) core.Action {
	switch r {
	case 'u', 'U':
		return core.ActionUp
	case 'd', 'D':
		return core.ActionDown
	case 'l', 'L':
		return core.ActionLeft
	case 'r', 'R':
		return core.ActionRight
	case 'q', 'Q':
		return core.ActionQuit
	}
	return core.ActionNone
}
