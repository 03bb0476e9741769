// Package config provides YAML-based configuration loading and difficulty
// management for the runner.
package config

import "github.com/vovakirdan/hazard-run/internal/character"

// HazardConfig contains all configuration for Hazard Run.
type HazardConfig struct {
	Character  CharacterSettings `yaml:"character"`
	Damage     map[string]int    `yaml:"damage"`
	Speed      SpeedSettings     `yaml:"speed"`
	Physics    PhysicsSettings   `yaml:"physics"`
	Hazards    HazardSettings    `yaml:"hazards"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// CharacterSettings defines the hero's body and hit recovery.
type CharacterSettings struct {
	MaxHealth    int `yaml:"max_health"`
	X            int `yaml:"x"`
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	RecoverTicks int `yaml:"recover_ticks"` // Ticks until the hurt flag clears
	StunTicks    int `yaml:"stun_ticks"`    // Ticks a hit blocks jumping
}

// SpeedSettings defines the speed for each movement state, in cells per tick.
type SpeedSettings struct {
	Dead            float64 `yaml:"dead"`
	Hurt            float64 `yaml:"hurt"`
	QuickSand       float64 `yaml:"quicksand"`
	Land            float64 `yaml:"land"`
	Default         float64 `yaml:"default"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
}

// PhysicsSettings defines vertical movement.
type PhysicsSettings struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// HazardSettings defines how the course is generated.
type HazardSettings struct {
	MinSpacing   int            `yaml:"min_spacing"`
	MaxSpacing   int            `yaml:"max_spacing"`
	BulletHeight int            `yaml:"bullet_height"` // Rows above ground bullets fly at
	Weights      map[string]int `yaml:"weights"`       // Relative spawn weight per tag
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spacing reduction at max difficulty
}

// DamageTable converts the damage section into a lookup table.
// An empty section falls back to the default amounts.
func (c HazardConfig) DamageTable() character.DamageTable {
	if len(c.Damage) == 0 {
		return character.DefaultDamageTable()
	}
	table := make(character.DamageTable, len(c.Damage))
	for tag, amount := range c.Damage {
		table[character.Tag(tag)] = amount
	}
	return table
}

// SpeedTable converts the speed section into speed rules.
func (c HazardConfig) SpeedTable() character.SpeedTable {
	return character.SpeedTable{
		Dead:      c.Speed.Dead,
		Hurt:      c.Speed.Hurt,
		QuickSand: c.Speed.QuickSand,
		Land:      c.Speed.Land,
		Default:   c.Speed.Default,
	}
}

// BoostMultiplier returns the configured boost, or the default when unset.
func (c HazardConfig) BoostMultiplier() float64 {
	if c.Speed.BoostMultiplier <= 0 {
		return character.DefaultBoostMultiplier
	}
	return c.Speed.BoostMultiplier
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
