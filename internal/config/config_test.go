package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/hazard-run/internal/character"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML HazardConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	if !reflect.DeepEqual(fromYAML, DefaultHazardConfig()) {
		t.Errorf("embedded YAML and DefaultHazardConfig() differ:\nyaml: %+v\ncode: %+v", fromYAML, DefaultHazardConfig())
	}
}

func TestLoadHazardCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
character:
  max_health: 30
damage:
  Enemy: 15
  Coin: -5
speed:
  land: 2.0
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHazard(path)
	if err != nil {
		t.Fatalf("LoadHazard() failed: %v", err)
	}

	if cfg.Character.MaxHealth != 30 {
		t.Errorf("MaxHealth = %d, expected 30", cfg.Character.MaxHealth)
	}

	table := cfg.DamageTable()
	if table.Amount(character.TagEnemy) != 15 {
		t.Errorf("Enemy damage = %d, expected 15", table.Amount(character.TagEnemy))
	}
	if table.Amount("Coin") != 0 {
		t.Error("negative configured damage should read as 0")
	}
	if table.Amount(character.TagSpikes) != 0 {
		t.Error("tags missing from a custom damage section deal no damage")
	}

	if cfg.SpeedTable().LandSpeed() != 2.0 {
		t.Errorf("LandSpeed() = %v, expected 2.0", cfg.SpeedTable().LandSpeed())
	}
	if cfg.BoostMultiplier() != character.DefaultBoostMultiplier {
		t.Errorf("unset boost should fall back to %v", character.DefaultBoostMultiplier)
	}
}

func TestLoadHazardPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("damage:\n  Enemy: 15\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHazard(path)
	if err != nil {
		t.Fatalf("LoadHazard() failed: %v", err)
	}

	def := DefaultHazardConfig()
	if cfg.Character != def.Character {
		t.Errorf("Character = %+v, expected defaults %+v", cfg.Character, def.Character)
	}
	if cfg.Speed != def.Speed {
		t.Errorf("Speed = %+v, expected defaults %+v", cfg.Speed, def.Speed)
	}
	if cfg.Physics != def.Physics {
		t.Errorf("Physics = %+v, expected defaults %+v", cfg.Physics, def.Physics)
	}
	if !reflect.DeepEqual(cfg.Hazards, def.Hazards) {
		t.Errorf("Hazards = %+v, expected defaults %+v", cfg.Hazards, def.Hazards)
	}
	if cfg.SpeedTable() != character.DefaultSpeedTable() {
		t.Errorf("SpeedTable() = %+v, expected the default table", cfg.SpeedTable())
	}

	table := cfg.DamageTable()
	if table.Amount(character.TagEnemy) != 15 {
		t.Errorf("Enemy damage = %d, expected 15", table.Amount(character.TagEnemy))
	}
	if table.Amount(character.TagSpikes) != 0 {
		t.Error("a custom damage section should replace the default table")
	}
}

func TestLoadHazardWeightsReplaceDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.yaml")
	data := []byte(`
hazards:
  min_spacing: 20
  weights:
    Bullet: 1
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHazard(path)
	if err != nil {
		t.Fatalf("LoadHazard() failed: %v", err)
	}

	if cfg.Hazards.MinSpacing != 20 {
		t.Errorf("MinSpacing = %d, expected 20", cfg.Hazards.MinSpacing)
	}
	if cfg.Hazards.MaxSpacing != DefaultHazardConfig().Hazards.MaxSpacing {
		t.Errorf("MaxSpacing = %d, expected the default", cfg.Hazards.MaxSpacing)
	}
	if !reflect.DeepEqual(cfg.Hazards.Weights, map[string]int{"Bullet": 1}) {
		t.Errorf("Weights = %v, expected only Bullet", cfg.Hazards.Weights)
	}
	if !reflect.DeepEqual(cfg.DamageTable(), character.DefaultDamageTable()) {
		t.Error("an unset damage section should keep the default table")
	}
}

func TestLoadHazardMissingCustomPath(t *testing.T) {
	_, err := LoadHazard(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("missing custom config should return an error")
	}
}

func TestLoadHazardInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("character: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadHazard(path); err == nil {
		t.Error("invalid YAML should return an error")
	}
}

func TestDamageTableFallback(t *testing.T) {
	var cfg HazardConfig
	if !reflect.DeepEqual(cfg.DamageTable(), character.DefaultDamageTable()) {
		t.Error("empty damage section should use the default table")
	}
}

func TestApplyHazardPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		level     float64
		maxHealth int
	}{
		{DifficultyEasy, true, 0.0, 150},
		{DifficultyNormal, true, 0.3, 100},
		{DifficultyHard, true, 0.7, 60},
		{DifficultyFixed, false, 0.0, 100},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultHazardConfig()
			ApplyHazardPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Character.MaxHealth != tc.maxHealth {
				t.Errorf("MaxHealth = %d, expected %d", cfg.Character.MaxHealth, tc.maxHealth)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}
