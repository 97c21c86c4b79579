package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseCrossing(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if cfg != DefaultCrossingConfig() {
		t.Errorf("embedded defaults %+v differ from hardcoded %+v", cfg, DefaultCrossingConfig())
	}
}

func TestLoadCrossingCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crossing.yaml")
	data := []byte("grid:\n  size: 12\nvehicles:\n  max_speed: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadCrossing(path)
	if err != nil {
		t.Fatalf("LoadCrossing() failed: %v", err)
	}

	if cfg.Grid.Size != 12 {
		t.Errorf("Grid.Size = %d, expected 12", cfg.Grid.Size)
	}
	if cfg.Vehicles.MaxSpeed != 2 {
		t.Errorf("Vehicles.MaxSpeed = %d, expected 2", cfg.Vehicles.MaxSpeed)
	}

	// Keys absent from the file keep their defaults
	def := DefaultCrossingConfig()
	if cfg.Grid.StepsPerSecond != def.Grid.StepsPerSecond {
		t.Errorf("StepsPerSecond = %d, expected default %d", cfg.Grid.StepsPerSecond, def.Grid.StepsPerSecond)
	}
	if cfg.Lanes.MaxSafeConsecutive != def.Lanes.MaxSafeConsecutive {
		t.Errorf("MaxSafeConsecutive = %d, expected default %d", cfg.Lanes.MaxSafeConsecutive, def.Lanes.MaxSafeConsecutive)
	}
}

func TestLoadCrossingMissingCustomPath(t *testing.T) {
	_, err := LoadCrossing(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadCrossing() should fail for a missing custom path")
	}
}

func TestLoadCrossingInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [unclosed"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadCrossing(path); err == nil {
		t.Error("LoadCrossing() should fail for malformed YAML")
	}
}

func TestApplyCrossingPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		maxSafe  int
		maxSpeed int
	}{
		{DifficultyEasy, 3, 1},
		{DifficultyNormal, 2, 1},
		{DifficultyHard, 1, 2},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultCrossingConfig()
			ApplyCrossingPreset(&cfg, tc.preset)
			if cfg.Lanes.MaxSafeConsecutive != tc.maxSafe {
				t.Errorf("MaxSafeConsecutive = %d, expected %d", cfg.Lanes.MaxSafeConsecutive, tc.maxSafe)
			}
			if cfg.Vehicles.MaxSpeed != tc.maxSpeed {
				t.Errorf("MaxSpeed = %d, expected %d", cfg.Vehicles.MaxSpeed, tc.maxSpeed)
			}
		})
	}

	cfg := DefaultCrossingConfig()
	ApplyCrossingPreset(&cfg, "")
	if cfg != DefaultCrossingConfig() {
		t.Error("empty preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if p, ok := ParsePreset(""); !ok || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset should reject unknown presets")
	}
}
