package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hazard-run/internal/storage"
)

var (
	flagRecentHits int
	flagClearHits  bool
)

var hitsCmd = &cobra.Command{
	Use:   "hits <game>",
	Short: "Show the damage log for a run",
	Long: `Summarize every hit the hero has taken in the specified run,
grouped by what caused it.

Examples:
  hazard hits hazard
  hazard hits hazard --recent 10
  hazard hits hazard --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runHits,
}

func init() {
	hitsCmd.Flags().IntVar(&flagRecentHits, "recent", 0, "Also list the N most recent hits")
	hitsCmd.Flags().BoolVar(&flagClearHits, "clear", false, "Delete the damage log for the run")
}

func runHits(_ *cobra.Command, args []string) {
	gameID := args[0]
	mustKnowGame(gameID)

	store := mustOpenStore()
	defer store.Close()

	if flagClearHits {
		if err := store.ClearDamageEvents(gameID); err != nil {
			fatalf("Error clearing damage log: %v\n", err)
		}
		fmt.Printf("Cleared damage log for %s.\n", gameID)
		return
	}

	summary, err := store.DamageSummary(gameID)
	if err != nil {
		fatalf("Error retrieving damage log: %v\n", err)
	}

	if len(summary) == 0 {
		fmt.Println("No hits logged yet.")
		return
	}

	fmt.Println(summaryTable(summary))

	if flagRecentHits > 0 {
		events, err := store.DamageEvents(gameID, flagRecentHits)
		if err != nil {
			fatalf("Error retrieving damage log: %v\n", err)
		}
		fmt.Println()
		fmt.Println(eventsTable(events))
	}
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// newTable returns a table styled like every other CLI table.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func summaryTable(summary []storage.TagDamage) string {
	t := newTable("Tag", "Hits", "Damage", "Deaths")
	for _, d := range summary {
		t.Row(d.Tag, strconv.Itoa(d.Hits), strconv.Itoa(d.Total), strconv.Itoa(d.Deaths))
	}
	return t.String()
}

func eventsTable(events []storage.DamageEvent) string {
	t := newTable("When", "Tag", "Amount", "Health", "Died")
	for _, ev := range events {
		t.Row(
			ev.CreatedAt.Format("Jan 02 15:04:05"),
			ev.Tag,
			strconv.Itoa(ev.Amount),
			strconv.Itoa(ev.HealthAfter),
			strconv.FormatBool(ev.Died),
		)
	}
	return t.String()
}
