package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hazard-run/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available runs",
	Long:  `Shows a list of all runs registered with Hazard Run.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available runs:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'hazard play <id>' to play.")
}
