package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hazard-run/internal/games/hazard"
	"github.com/vovakirdan/hazard-run/internal/platform/tui"
	"github.com/vovakirdan/hazard-run/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a run",
	Long: `Start playing the specified run.

Controls:
  Space/Up   - Jump
  D/Right    - Boost
  P          - Pause
  Esc/B      - Pause, or leave when paused or dead
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot to ~/.hazard/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, tougher hero
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, fragile hero
  fixed  - No progression, stays at config's initial level

Examples:
  hazard play hazard
  hazard play hazard --difficulty hard
  hazard play hazard_endless --seed 42
  hazard play hazard --config ./my-hazard.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	mustKnowGame(gameID)

	hazard.SetConfigPath(flagConfig)
	hazard.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStoreOptional()
	logger.Debug("starting run", "game", gameID, "fps", flagFPS, "seed", flagSeed)

	runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
