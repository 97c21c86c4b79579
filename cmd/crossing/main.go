// crossing is a grid world where a pedestrian crosses a road full of
// vehicles, playable in the terminal or driven headless by a policy.
//
// Usage:
//
//	crossing list              - List world variants
//	crossing play <variant>    - Play a variant in the terminal
//	crossing menu              - Pick a variant interactively, then play
//	crossing run <variant>     - Run episodes headless with a policy
//	crossing rollout <variant> - Compare policies and write an HTML chart
//
// Global flags:
//
//	--config <path>       - World config YAML
//	--difficulty <preset> - easy, normal or hard
//	--size <n>            - Override the grid size
//	--seed <value>        - Seed of the first episode (default: 100)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/config"

	// Import worlds to register them
	_ "github.com/vovakirdan/tui-crossing/internal/crossing"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSize       int
	flagSeed       int64
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Pedestrian Crossing - get across the road without being hit",
	Long: `Pedestrian Crossing is a small grid world. A pedestrian starts at the
bottom of the board and has to reach the top while vehicles move along
the road lanes. Every key press advances the world by one step.

Available commands:
  list     - Show all world variants
  play     - Play a variant in the terminal
  menu     - Interactive variant picker
  run      - Run episodes headless with a policy
  rollout  - Compare policies and write an HTML chart

Examples:
  crossing list
  crossing play crossing
  crossing play crossing_lanes --difficulty hard
  crossing run crossing --actions up,up,up
  crossing rollout crossing_lanes --episodes 50`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to world config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Grid size override (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 100, "Seed of the first episode")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(rolloutCmd)
}

// newLogger builds the CLI logger at the level given by --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "crossing",
	})
	logger.SetLevel(level)
	return logger, nil
}

// loadWorldConfig loads the world config and applies --difficulty and --size.
func loadWorldConfig() (config.CrossingConfig, error) {
	cfg, err := config.LoadCrossing(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return cfg, fmt.Errorf("unknown difficulty %q (use easy, normal or hard)", flagDifficulty)
	}
	config.ApplyCrossingPreset(&cfg, preset)

	if flagSize > 0 {
		cfg.Grid.Size = flagSize
	}
	return cfg, nil
}
