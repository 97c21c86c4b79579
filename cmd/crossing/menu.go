package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant interactively, then play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After the session ends, you return to the menu to play again.

Examples:
  crossing menu
  crossing menu --difficulty easy --episodes 3`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := sessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	rc := terminalConfig()
	for {
		res, err := tui.RunMenu(rc)
		if err != nil {
			return err
		}
		if res.Quit {
			return nil
		}
		rc = res.Config

		if err := playVariant(cmd, res.ID, rc, logger); err != nil {
			return err
		}
	}
}
