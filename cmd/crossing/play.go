package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/platform/headless"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

var (
	flagEpisodes int
	flagLogFile  string
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant in the terminal",
	Long: `Start a play session for the given variant.

Each key press advances the world by exactly one step; the vehicles do
not move while you think.

Controls:
  Arrows/WASD  - Move
  Space/.      - Wait one step
  R            - Next episode (after a crossing or a collision)
  ?            - Toggle help
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Episode i of a session uses seed+i, so a session replays exactly when
started with the same --seed.

Examples:
  crossing play crossing
  crossing play crossing_lanes --difficulty hard --episodes 10
  crossing play crossing --size 14 --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagEpisodes, "episodes", 5, "Episodes per session (0 = unlimited)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the UI is open")
	menuCmd.Flags().AddFlagSet(playCmd.Flags())
}

func runPlay(cmd *cobra.Command, args []string) error {
	id := args[0]
	if !registry.Exists(id) {
		return fmt.Errorf("unknown variant %q, run 'crossing list' to see available variants", id)
	}

	logger, closeLog, err := sessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	return playVariant(cmd, id, terminalConfig(), logger)
}

// playVariant creates the world, runs the UI and prints the session totals.
func playVariant(cmd *cobra.Command, id string, rc core.RuntimeConfig, logger *log.Logger) error {
	cfg, err := loadWorldConfig()
	if err != nil {
		return err
	}

	env, err := registry.Create(id, cfg, logger)
	if err != nil {
		return err
	}
	defer env.Close()

	logger.Info("session started", "variant", id, "size", cfg.Grid.Size, "seed", rc.Seed, "episodes", rc.Episodes)
	results, err := tui.Run(env, rc, logger)
	if err != nil {
		return err
	}

	if len(results) > 0 {
		headless.WriteTotals(cmd.OutOrStdout(), headless.Summarize(results), colorEnabled())
	}
	return nil
}

// terminalConfig sizes the session to the terminal.
func terminalConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed
	rc.Episodes = flagEpisodes
	return rc
}

// sessionLogger returns a logger that does not write over the UI: a file
// when --log-file is set, nothing otherwise.
func sessionLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard)
		return logger, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// colorEnabled reports whether stdout is a terminal.
func colorEnabled() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
