package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default crossing configuration.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Grid: GridConfig{
			Size:           10,
			StepsPerSecond: 5,
		},
		Lanes: LanesConfig{
			MaxSafeConsecutive: 3,
		},
		Vehicles: VehiclesConfig{
			MaxSpeed: 1,
			Variants: 12,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCrossingYAML
}
