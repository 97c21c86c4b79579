// Package config provides YAML-based world configuration loading and
// difficulty presets for the crossing world.
package config

// CrossingConfig contains all configuration for a crossing world.
type CrossingConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Lanes    LanesConfig    `yaml:"lanes"`
	Vehicles VehiclesConfig `yaml:"vehicles"`
}

// GridConfig defines the world size and the front end's pacing.
type GridConfig struct {
	Size           int `yaml:"size"`             // Cells per side, at least 5
	StepsPerSecond int `yaml:"steps_per_second"` // Front end pacing only
}

// LanesConfig defines the generated lane layout.
type LanesConfig struct {
	MaxSafeConsecutive int `yaml:"max_safe_consecutive"` // Longest allowed run of safe rows
}

// VehiclesConfig defines vehicle spawning.
type VehiclesConfig struct {
	MaxSpeed int `yaml:"max_speed"` // Largest |velocity| in generated layouts
	Variants int `yaml:"variants"`  // Number of visual variants to draw from
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string into a preset.
// The empty string yields "" and means "keep the loaded config".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	case "":
		return "", true
	default:
		return "", false
	}
}
