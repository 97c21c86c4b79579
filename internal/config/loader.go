package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCrossing loads the crossing world configuration.
// Search order: customPath -> ~/.crossing/configs/crossing.yaml -> ./configs/crossing.yaml -> embedded default.
// Files are overlaid on the defaults, so they only need the keys they change.
func LoadCrossing(customPath string) (CrossingConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CrossingConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseCrossing(data)
		if err != nil {
			return CrossingConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("crossing.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseCrossing(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "crossing.yaml")); err == nil {
		if cfg, err := parseCrossing(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseCrossing(defaultCrossingYAML)
	if err != nil {
		return DefaultCrossingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseCrossing unmarshals data on top of the hardcoded defaults.
func parseCrossing(data []byte) (CrossingConfig, error) {
	cfg := DefaultCrossingConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CrossingConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crossing", "configs", filename)
}

// ApplyCrossingPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyCrossingPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Lanes.MaxSafeConsecutive = 3
		cfg.Vehicles.MaxSpeed = 1
	case DifficultyNormal:
		cfg.Lanes.MaxSafeConsecutive = 2
		cfg.Vehicles.MaxSpeed = 1
	case DifficultyHard:
		cfg.Lanes.MaxSafeConsecutive = 1
		cfg.Vehicles.MaxSpeed = 2
	}
}
