package config

import "github.com/vovakirdan/hazard-run/internal/core"

// DifficultyManager calculates dynamic course parameters from score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = core.RangeToPercentClamp01(float64(score), 0, maxAt)
	case "time":
		progress = core.RangeToPercentClamp01(float64(ticks), 0, maxAt)
	default:
		return d.initialLevel
	}

	// Interpolate from initial level to 1.0
	return core.PercentToRange(progress, d.initialLevel, 1.0)
}

// Speed scales a base speed from base up to base * (1 + speed_multiplier).
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return core.PercentToRange(level, baseSpeed, baseSpeed*(1.0+d.cfg.Scaling.SpeedMultiplier))
}

// Spacing returns the current hazard spacing based on difficulty level.
func (d *DifficultyManager) Spacing(baseSpacing int, score int, ticks int) int {
	level := d.Level(score, ticks)
	reduction := int(level * float64(d.cfg.Scaling.SpacingReduction))
	result := baseSpacing - reduction
	if result < 8 { // Minimum jumpable spacing
		result = 8
	}
	return result
}
