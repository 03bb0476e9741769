package config

import (
	_ "embed"

	"github.com/vovakirdan/hazard-run/internal/character"
)

//go:embed defaults/hazard.yaml
var defaultHazardYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultHazardYAML
}

// DefaultHazardConfig returns the built-in configuration. It mirrors
// defaults/hazard.yaml and is used if the embedded file cannot be parsed.
func DefaultHazardConfig() HazardConfig {
	damage := make(map[string]int)
	for tag, amount := range character.DefaultDamageTable() {
		damage[string(tag)] = amount
	}

	speeds := character.DefaultSpeedTable()

	return HazardConfig{
		Character: CharacterSettings{
			MaxHealth:    100,
			X:            8,
			Width:        2,
			Height:       2,
			RecoverTicks: 45,
			StunTicks:    20,
		},
		Damage: damage,
		Speed: SpeedSettings{
			Dead:            speeds.Dead,
			Hurt:            speeds.Hurt,
			QuickSand:       speeds.QuickSand,
			Land:            speeds.Land,
			Default:         speeds.Default,
			BoostMultiplier: character.DefaultBoostMultiplier,
		},
		Physics: PhysicsSettings{
			Gravity:      0.3,
			JumpImpulse:  2.4,
			MaxFallSpeed: 4.0,
		},
		Hazards: HazardSettings{
			MinSpacing:   14,
			MaxSpacing:   34,
			BulletHeight: 1,
			Weights: map[string]int{
				"Enemy":     4,
				"Spikes":    1,
				"Bullet":    3,
				"Lava":      2,
				"Quicksand": 2,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				SpacingReduction: 12,
			},
		},
	}
}
