package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hazard-run/internal/games/hazard"
	"github.com/vovakirdan/hazard-run/internal/platform/tui"
	"github.com/vovakirdan/hazard-run/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Hazard Run with a run picker menu",
	Long: `Start Hazard Run in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a run.
After a run ends, press Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select run
  Tab          - Best distances and damage log
  Q            - Quit

Examples:
  hazard menu
  hazard menu --fps 30
  hazard menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStoreOptional()
	cfg := runtimeConfig()

	hazard.SetConfigPath(flagConfig)
	hazard.SetDifficultyPreset(flagDifficulty)

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
