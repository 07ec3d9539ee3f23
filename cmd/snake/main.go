// snake is a terminal snake game.
//
// Usage:
//
//	snake                    - Play a round
//	snake config             - Print the effective configuration as YAML
//	snake sim                - Run the simulation headless and print snapshots
//
// Global flags:
//
//	--config <path>    - Game config YAML (default: search ~/.tui-snake, ./configs, embedded)
//	--fps <rate>       - Override the tick rate
//	--seed <value>     - Set RNG seed for reproducible apple placement
//	--log-file <path>  - Write logs to a file
//	--debug            - Log per-tick events
//
// Exit codes: 0 on quit or collision, 1 if the terminal cannot host the
// board, 2 if the snake cannot be built, 3 if the game state cannot be
// built, 4 for configuration errors.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

// logger reports to stderr, or to --log-file when set.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "snake",
})

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(exitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat apples, don't bite yourself",
	Long: `A snake moves across a wrapping board, grows by one cell for every
apple it eats and the round ends when it runs into its own body.

Controls:
  Arrows/WASD/hjkl  - Turn
  Q/Esc/Ctrl+C      - Quit

Examples:
  snake
  snake --fps 15 --seed 42
  snake --config ./my-snake.yaml
  snake config > ~/.tui-snake/snake.yaml
  snake sim --ticks 50 --moves "....u....l"`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in ticks per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log per-tick events (shown during play only with --log-file)")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simCmd)
}

var logFile *os.File

// setupLogging points the logger at --log-file and applies --debug.
func setupLogging(_ *cobra.Command, _ []string) error {
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	if flagLogFile == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("%w: cannot open log file: %w", errConfig, err)
	}
	logFile = f
	logger.SetOutput(f)
	return nil
}

func closeLog() {
	if logFile == nil {
		return
	}
	logger.SetOutput(os.Stderr)
	//nolint:errcheck // Nothing useful to do on close failure
	logFile.Close()
}
