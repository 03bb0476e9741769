package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHazard loads Hazard Run configuration.
// Search order: customPath -> ~/.hazard/configs/hazard.yaml -> ./configs/hazard.yaml -> embedded default
// A file only overrides the keys it sets. A damage or weights section it sets
// replaces the default table instead of merging into it.
func LoadHazard(customPath string) (HazardConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultHazardConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseHazard(data)
		if err != nil {
			return DefaultHazardConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("hazard.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseHazard(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "hazard.yaml")); err == nil {
		if cfg, err := parseHazard(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseHazard(DefaultYAML())
	if err != nil {
		return DefaultHazardConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tableSections records which map sections a file sets.
type tableSections struct {
	Damage  map[string]int `yaml:"damage"`
	Hazards struct {
		Weights map[string]int `yaml:"weights"`
	} `yaml:"hazards"`
}

// parseHazard decodes data over the hardcoded defaults.
func parseHazard(data []byte) (HazardConfig, error) {
	var sections tableSections
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return HazardConfig{}, err
	}

	cfg := DefaultHazardConfig()
	// yaml.v3 merges into existing maps, so clear the ones being replaced.
	if sections.Damage != nil {
		cfg.Damage = nil
	}
	if sections.Hazards.Weights != nil {
		cfg.Hazards.Weights = nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HazardConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hazard", "configs", filename)
}

// ApplyHazardPreset modifies the config based on a difficulty preset.
func ApplyHazardPreset(cfg *HazardConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Character.MaxHealth = 150
		cfg.Character.StunTicks = 10
	case DifficultyHard:
		cfg.Character.MaxHealth = 60
		cfg.Character.RecoverTicks = 70
	}
}
