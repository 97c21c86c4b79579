package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all world variants",
	Long:  `Shows every world variant registered in the binary.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Fprintln(out, "No variants available.")
		return
	}

	fmt.Fprintln(out, "Available variants:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, v := range variants {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, v.ID, v.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'crossing play <id>' to play a variant.")
}
