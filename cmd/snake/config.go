package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration as YAML",
	Long: `Print the configuration the game would run with, after the config
search and flag overrides, as YAML. Use it as a starting point for a custom
config file.

Search order:
  --config <path>
  ~/.tui-snake/snake.yaml
  ./configs/snake.yaml
  embedded defaults

Examples:
  snake config
  snake config --default > ./configs/snake.yaml
  snake config --fps 20`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the embedded default config with comments")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefault {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	_, err = out.Write(data)
	return err
}
