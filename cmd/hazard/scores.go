package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hazard-run/internal/registry"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show best distances for a run",
	Long: `Display the top 10 distances for the specified run.

Examples:
  hazard scores hazard
  hazard scores hazard_endless
  hazard scores hazard --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores for the run")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]
	mustKnowGame(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fatalf("Error creating game: %v\n", err)
	}
	title := game.Title()

	store := mustOpenStore()
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fatalf("Error clearing scores: %v\n", err)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fatalf("Error retrieving scores: %v\n", err)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hazard play %s' to set the first distance!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Distance", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "--------", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}
