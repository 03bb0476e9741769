// hazard is a terminal side-scroller built around a small character core:
// a damage resolver that maps collision tags to health loss and a speed
// selector that picks the run speed from the character's state.
//
// Usage:
//
//	hazard list              - List available runs
//	hazard play <game>       - Play a run
//	hazard menu              - Start menu to pick runs interactively
//	hazard serve             - Start SSH server for remote play
//	hazard scores <game>     - Show best distances for a run
//	hazard hits <game>       - Show what hurt the hero most
//	hazard damage <tag>...   - Resolve collision tags against a fresh hero
//	hazard speed             - Show the speed picked for a character state
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.hazard/scores.db)
//	--log-level <level> - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/hazard-run/internal/games/hazard"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "hazard"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hazard",
	Short: "Hazard Run - dodge hazards in your terminal",
	Long: `Hazard Run is a terminal side-scroller. Enemies, spikes and bullets
hurt, lava burns and quicksand slows you down.

Available commands:
  list     - Show all available runs
  play     - Play a specific run directly
  menu     - Interactive run picker menu
  serve    - Start SSH server for remote play
  scores   - View best distances
  hits     - View the damage log
  damage   - Resolve collision tags against a fresh hero
  speed    - Show the speed picked for a character state

Examples:
  hazard list
  hazard play hazard
  hazard menu
  hazard serve --ssh :2222
  hazard damage Enemy Bullet Spikes`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hazard/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(hitsCmd)
	rootCmd.AddCommand(damageCmd)
	rootCmd.AddCommand(speedCmd)
}
