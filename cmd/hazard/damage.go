package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hazard-run/internal/character"
	"github.com/vovakirdan/hazard-run/internal/config"
)

var flagHealth int

var damageCmd = &cobra.Command{
	Use:   "damage <tag>...",
	Short: "Resolve collision tags against a fresh hero",
	Long: fmt.Sprintf(`Trigger each tag in order against a fresh hero and show how much
damage it dealt and the hero's state afterwards. Tags are matched exactly;
unknown tags deal no damage.

Known tags: %s.

Examples:
  hazard damage Enemy Bullet
  hazard damage Lava Lava --health 80
  hazard damage Enemy --config ./my-hazard.yaml`, knownTags()),
	Args: cobra.MinimumNArgs(1),
	Run:  runDamage,
}

func init() {
	damageCmd.Flags().IntVar(&flagHealth, "health", 0, "Starting health (0 = config max_health)")
	damageCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

// knownTags lists the tags that deal damage by default.
func knownTags() string {
	names := make([]string, len(character.DamageTags))
	for i, tag := range character.DamageTags {
		names[i] = string(tag)
	}
	return strings.Join(names, ", ")
}

// damageStep is the hero's state after one trigger.
type damageStep struct {
	Tag    string
	Amount int
	Health int
	Hurt   bool
	Dead   bool
}

// resolveDamage triggers tags in order against hero.
func resolveDamage(hero *character.Character, tags []string) []damageStep {
	steps := make([]damageStep, 0, len(tags))
	for _, raw := range tags {
		tag := character.Tag(raw)
		amount := hero.DamageTable().Amount(tag)
		hero.OnTrigger(tag)
		steps = append(steps, damageStep{
			Tag:    raw,
			Amount: amount,
			Health: hero.Health(),
			Hurt:   hero.Hurt(),
			Dead:   hero.Dead(),
		})
	}
	return steps
}

func runDamage(_ *cobra.Command, args []string) {
	cfg, err := config.LoadHazard(flagConfig)
	if err != nil {
		fatalf("Error: %v\n", err)
	}

	health := cfg.Character.MaxHealth
	if flagHealth > 0 {
		health = flagHealth
	}
	logger.Debug("resolving damage", "tags", args, "health", health)

	hero := character.New(health, cfg.DamageTable(), nil)
	steps := resolveDamage(hero, args)

	t := newTable("#", "Tag", "Damage", "Health", "Hurt", "Dead")
	for i, s := range steps {
		t.Row(
			strconv.Itoa(i+1),
			s.Tag,
			strconv.Itoa(s.Amount),
			strconv.Itoa(s.Health),
			strconv.FormatBool(s.Hurt),
			strconv.FormatBool(s.Dead),
		)
	}
	fmt.Printf("Starting health: %d\n", health)
	fmt.Println(t.String())
}
