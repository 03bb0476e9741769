package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hazard-run/internal/character"
	"github.com/vovakirdan/hazard-run/internal/config"
)

var (
	flagDead      bool
	flagHurt      bool
	flagQuickSand bool
	flagLand      bool
	flagAllStates bool
)

var speedCmd = &cobra.Command{
	Use:   "speed",
	Short: "Show the speed picked for a character state",
	Long: `Pick the hero's run speed for the given state flags.
The first matching rule wins: dead, hurt, quicksand, land, default.

Examples:
  hazard speed --land
  hazard speed --hurt --quicksand
  hazard speed --all
  hazard speed --land --config ./my-hazard.yaml`,
	Args: cobra.NoArgs,
	Run:  runSpeed,
}

func init() {
	speedCmd.Flags().BoolVar(&flagDead, "dead", false, "Hero is dead")
	speedCmd.Flags().BoolVar(&flagHurt, "hurt", false, "Hero is hurt")
	speedCmd.Flags().BoolVar(&flagQuickSand, "quicksand", false, "Hero stands in quicksand")
	speedCmd.Flags().BoolVar(&flagLand, "land", false, "Hero is on land")
	speedCmd.Flags().BoolVar(&flagAllStates, "all", false, "Print every flag combination")
	speedCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

// allStates enumerates every combination of the four state flags.
func allStates() []character.MovementState {
	states := make([]character.MovementState, 0, 16)
	for mask := 0; mask < 16; mask++ {
		states = append(states, character.MovementState{
			Dead:        mask&1 != 0,
			Hurt:        mask&2 != 0,
			InQuickSand: mask&4 != 0,
			OnLand:      mask&8 != 0,
		})
	}
	return states
}

func runSpeed(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadHazard(flagConfig)
	if err != nil {
		fatalf("Error: %v\n", err)
	}
	rules := cfg.SpeedTable()

	if !flagAllStates {
		state := character.MovementState{
			Dead:        flagDead,
			Hurt:        flagHurt,
			InQuickSand: flagQuickSand,
			OnLand:      flagLand,
		}
		speed := character.PlayerSpeed(state, rules)
		fmt.Printf("rule: %s  speed: %.2f\n", character.StateName(state), speed)
		return
	}

	t := newTable("Dead", "Hurt", "Quicksand", "Land", "Rule", "Speed")
	for _, s := range allStates() {
		t.Row(
			strconv.FormatBool(s.Dead),
			strconv.FormatBool(s.Hurt),
			strconv.FormatBool(s.InQuickSand),
			strconv.FormatBool(s.OnLand),
			character.StateName(s),
			fmt.Sprintf("%.2f", character.PlayerSpeed(s, rules)),
		)
	}
	fmt.Println(t.String())
}
