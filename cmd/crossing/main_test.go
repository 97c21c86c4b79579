package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/policy"
)

// withFlags restores the global flags after the test.
func withFlags(t *testing.T) {
	t.Helper()
	cfg, diff, size, actions, pol := flagConfig, flagDifficulty, flagSize, flagActions, flagPolicy
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagSize, flagActions, flagPolicy = cfg, diff, size, actions, pol
	})
}

func TestLoadWorldConfigOverrides(t *testing.T) {
	withFlags(t)

	path := filepath.Join(t.TempDir(), "crossing.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  size: 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = path
	flagDifficulty = "hard"
	flagSize = 0

	cfg, err := loadWorldConfig()
	if err != nil {
		t.Fatalf("loadWorldConfig: %v", err)
	}
	if cfg.Grid.Size != 8 {
		t.Errorf("size = %d, expected 8 from file", cfg.Grid.Size)
	}
	if cfg.Lanes.MaxSafeConsecutive != 1 || cfg.Vehicles.MaxSpeed != 2 {
		t.Errorf("hard preset not applied: %+v", cfg)
	}

	flagSize = 12
	cfg, err = loadWorldConfig()
	if err != nil {
		t.Fatalf("loadWorldConfig: %v", err)
	}
	if cfg.Grid.Size != 12 {
		t.Errorf("size = %d, expected --size override 12", cfg.Grid.Size)
	}
}

func TestLoadWorldConfigBadDifficulty(t *testing.T) {
	withFlags(t)
	flagConfig = ""
	flagDifficulty = "nightmare"

	if _, err := loadWorldConfig(); err == nil {
		t.Error("expected an error for an unknown difficulty")
	}
}

func TestPolicyFromFlags(t *testing.T) {
	withFlags(t)

	flagActions = "up,left"
	p, err := policyFromFlags()
	if err != nil {
		t.Fatalf("policyFromFlags: %v", err)
	}
	if s, ok := p.(*policy.Script); !ok || s.Remaining() != 2 {
		t.Errorf("expected a two action script, got %#v", p)
	}

	flagActions = "up,jump"
	if _, err := policyFromFlags(); err == nil {
		t.Error("expected an error for an unknown action")
	}

	flagActions = ""
	flagPolicy = "script"
	if _, err := policyFromFlags(); err == nil {
		t.Error("script without --actions should fail")
	}

	flagPolicy = "random"
	if p, err := policyFromFlags(); err != nil || p.Name() != "random" {
		t.Errorf("policyFromFlags() = %v, %v", p, err)
	}
}

func TestListCommand(t *testing.T) {
	var out bytes.Buffer
	listCmd.SetOut(&out)
	t.Cleanup(func() { listCmd.SetOut(nil) })

	runList(listCmd, nil)

	for _, want := range []string{"crossing", "crossing_lanes", "Pedestrian Crossing"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("list output missing %q:\n%s", want, out.String())
		}
	}
}
