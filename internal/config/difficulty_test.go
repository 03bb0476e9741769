package config

import (
	"math"
	"testing"
)

func scoreDifficulty(initial float64) DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: initial,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, SpacingReduction: 10},
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty(0.2))

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty(0.4))
	d.SetEnabled(false)

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Level(100, 100); got != 0.4 {
		t.Errorf("disabled Level() = %v, expected initial 0.4", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := scoreDifficulty(0)
	cfg.Progression.Type = "time"
	d := NewDifficultyManager(cfg)

	if got := d.Level(1000, 25); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("time Level() = %v, expected 0.25", got)
	}
}

func TestDifficultySpeedAndSpacing(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty(0))

	if got := d.Speed(1.0, 0, 0); got != 1.0 {
		t.Errorf("Speed at level 0 = %v, expected 1.0", got)
	}
	if got := d.Speed(1.0, 100, 0); got != 2.0 {
		t.Errorf("Speed at level 1 = %v, expected 2.0", got)
	}

	if got := d.Spacing(30, 100, 0); got != 20 {
		t.Errorf("Spacing at level 1 = %d, expected 20", got)
	}
	if got := d.Spacing(10, 100, 0); got != 8 {
		t.Errorf("Spacing should floor at 8, got %d", got)
	}
}
