package crossing

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

func testConfig(size int) config.CrossingConfig {
	cfg := config.DefaultCrossingConfig()
	cfg.Grid.Size = size
	return cfg
}

func newTestWorld(t *testing.T, size int, mode LayoutMode) *World {
	t.Helper()
	w, err := New(testConfig(size), WithLayout(mode))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return w
}

func seed(v int64) *int64 {
	return &v
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.CrossingConfig)
	}{
		{"size below five", func(c *config.CrossingConfig) { c.Grid.Size = 4 }},
		{"zero steps per second", func(c *config.CrossingConfig) { c.Grid.StepsPerSecond = 0 }},
		{"zero max safe", func(c *config.CrossingConfig) { c.Lanes.MaxSafeConsecutive = 0 }},
		{"zero speed", func(c *config.CrossingConfig) { c.Vehicles.MaxSpeed = 0 }},
		{"speed as wide as grid", func(c *config.CrossingConfig) { c.Vehicles.MaxSpeed = c.Grid.Size }},
		{"no variants", func(c *config.CrossingConfig) { c.Vehicles.Variants = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(10)
			tc.mutate(&cfg)
			if _, err := New(cfg); !errors.Is(err, ErrConfiguration) {
				t.Errorf("expected ErrConfiguration, got %v", err)
			}
		})
	}

	if _, err := New(testConfig(5)); err != nil {
		t.Errorf("size 5 should be accepted, got %v", err)
	}
}

func TestResetInitialState(t *testing.T) {
	for _, mode := range []LayoutMode{LayoutFixed, LayoutGenerated} {
		for size := 5; size <= 16; size++ {
			w := newTestWorld(t, size, mode)
			for s := int64(0); s < 30; s++ {
				obs, info := w.Reset(seed(s))

				start := core.P(size/2, size-1)
				if obs.Agent != start || w.Agent() != start {
					t.Fatalf("%v size=%d seed=%d: agent at %v, expected %v", mode, size, s, obs.Agent, start)
				}
				if len(obs.Targets) != 4 {
					t.Fatalf("expected 4 targets, got %d", len(obs.Targets))
				}
				for i := 0; i < 3; i++ {
					if obs.Targets[i] != core.P(size/2+i-1, 0) {
						t.Errorf("target %d = %v, expected (%d, 0)", i, obs.Targets[i], size/2+i-1)
					}
				}
				for _, tgt := range obs.Targets {
					if !tgt.InBounds(size) {
						t.Errorf("target %v out of bounds for size %d", tgt, size)
					}
				}
				if obs.Targets[3] == start {
					t.Errorf("extra target must differ from start cell")
				}
				for _, v := range w.Vehicles() {
					if v.X < 0 || v.X >= size || v.Row <= 0 || v.Row >= size-1 {
						t.Errorf("vehicle %+v out of bounds", v)
					}
					if v.Velocity == 0 {
						t.Errorf("vehicle %+v has zero velocity", v)
					}
					if !w.Layout()[v.Row].IsRoad() {
						t.Errorf("vehicle %+v is not on a road row", v)
					}
				}
				if len(w.Vehicles()) != len(w.Layout().RoadRows()) {
					t.Errorf("expected one vehicle per road row")
				}
				if w.State() != core.EpisodeRunning || w.Steps() != 0 {
					t.Errorf("state = %v, steps = %d after reset", w.State(), w.Steps())
				}
				if info != BuildInfo(obs.Agent, obs.Targets) {
					t.Errorf("info %+v does not match observation", info)
				}
				if mode == LayoutGenerated {
					if err := w.Layout().Validate(w.cfg.Lanes.MaxSafeConsecutive); err != nil {
						t.Errorf("generated layout invalid: %v", err)
					}
				}
			}
		}
	}
}

func TestFixedLayoutVehicles(t *testing.T) {
	w := newTestWorld(t, 10, LayoutFixed)
	w.Reset(seed(100))

	vehicles := w.Vehicles()
	if len(vehicles) != 2 {
		t.Fatalf("expected 2 vehicles, got %d", len(vehicles))
	}
	if vehicles[0].Row != 8 || vehicles[1].Row != 6 {
		t.Errorf("vehicle rows = %d, %d, expected 8, 6", vehicles[0].Row, vehicles[1].Row)
	}
	for _, v := range vehicles {
		if v.X != 0 || v.Velocity != 1 {
			t.Errorf("vehicle %+v should start at x=0 with velocity 1", v)
		}
		if v.Variant < 0 || v.Variant >= w.cfg.Vehicles.Variants {
			t.Errorf("variant %d out of range", v.Variant)
		}
	}
}

func TestStepBeforeReset(t *testing.T) {
	w := newTestWorld(t, 10, LayoutFixed)
	if _, err := w.Step(core.ActionUp); !errors.Is(err, ErrNotReset) {
		t.Errorf("expected ErrNotReset, got %v", err)
	}
}

func TestStepInvalidAction(t *testing.T) {
	w := newTestWorld(t, 10, LayoutFixed)
	w.Reset(seed(1))
	before := w.Snapshot()

	if _, err := w.Step(core.Action(7)); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("expected ErrInvalidAction, got %v", err)
	}
	if !w.Snapshot().Equal(before) {
		t.Error("invalid action must not mutate the world")
	}
}

func TestStepOrderAndClamp(t *testing.T) {
	w := newTestWorld(t, 10, LayoutFixed)
	w.Reset(seed(1))
	w.targets = []core.Pos{core.P(0, 0)}
	w.vehicles = []Vehicle{{Row: 3, X: 9, Velocity: 1}}
	w.agent = core.P(9, 9)

	res, err := w.Step(core.ActionRight)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if res.Observation.Agent != core.P(9, 9) {
		t.Errorf("agent should be clamped at (9, 9), got %v", res.Observation.Agent)
	}
	if w.vehicles[0].X != 0 {
		t.Errorf("vehicle should wrap to 0, got %d", w.vehicles[0].X)
	}

	res, err = w.Step(core.ActionDown)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if res.Observation.Agent != core.P(9, 9) {
		t.Errorf("agent should stay clamped, got %v", res.Observation.Agent)
	}
	if res.Reward != RewardNone || res.Terminated || res.Truncated || res.State != core.EpisodeRunning {
		t.Errorf("unexpected result %+v", res)
	}
	if w.Steps() != 2 {
		t.Errorf("Steps() = %d, expected 2", w.Steps())
	}
}

func TestScenarioWalkUpToTarget(t *testing.T) {
	w := newTestWorld(t, 10, LayoutFixed)
	obs, _ := w.Reset(seed(100))
	if obs.Agent != core.P(5, 9) {
		t.Fatalf("agent starts at %v, expected (5, 9)", obs.Agent)
	}
	// Put (5,5) in the target set and keep the rest of the path clear.
	w.targets = []core.Pos{core.P(4, 0), core.P(5, 0), core.P(6, 0), core.P(5, 5)}

	var res core.StepResult
	for i, a := range []core.Action{core.ActionUp, core.ActionUp, core.ActionUp, core.ActionUp} {
		var err error
		res, err = w.Step(a)
		if err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
		if i < 3 && res.Terminated {
			t.Fatalf("episode ended early at step %d: %+v", i, res)
		}
	}

	if res.Reward != 1 || !res.Terminated {
		t.Errorf("expected reward=1 terminated=true, got reward=%v terminated=%v", res.Reward, res.Terminated)
	}
	if res.State != core.EpisodeSuccess {
		t.Errorf("state = %v, expected success", res.State)
	}
	if res.Observation.Agent != core.P(5, 5) {
		t.Errorf("agent at %v, expected (5, 5)", res.Observation.Agent)
	}
}

func TestCollisionPrecedesSuccess(t *testing.T) {
	w := newTestWorld(t, 10, LayoutFixed)
	w.Reset(seed(3))
	w.agent = core.P(5, 9)
	w.targets = []core.Pos{core.P(5, 8)}
	w.vehicles = []Vehicle{{Row: 8, X: 4, Velocity: 1}}

	res, err := w.Step(core.ActionUp)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if res.State != core.EpisodeCollision {
		t.Errorf("state = %v, expected collision", res.State)
	}
	if res.Reward != RewardCollision || !res.Terminated {
		t.Errorf("expected reward -10 terminated, got %+v", res)
	}
}

func TestCollisionWithVehicleMovingOntoAgent(t *testing.T) {
	w := newTestWorld(t, 10, LayoutFixed)
	w.Reset(seed(3))
	w.agent = core.P(3, 6)
	w.targets = []core.Pos{core.P(5, 0)}
	w.vehicles = []Vehicle{{Row: 6, X: 2, Velocity: 1}}

	res, err := w.Step(core.ActionNothing)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if res.State != core.EpisodeCollision {
		t.Errorf("standing in the vehicle's path should collide, got %v", res.State)
	}
}

func TestTerminalWorldRejectsSteps(t *testing.T) {
	w := newTestWorld(t, 10, LayoutFixed)
	w.Reset(seed(3))
	w.agent = core.P(5, 1)
	w.targets = []core.Pos{core.P(5, 0)}

	if res, err := w.Step(core.ActionUp); err != nil || res.State != core.EpisodeSuccess {
		t.Fatalf("expected success, got %+v, %v", res, err)
	}
	before := w.Snapshot()

	for _, a := range core.Actions() {
		if _, err := w.Step(a); !errors.Is(err, ErrEpisodeOver) {
			t.Errorf("Step(%v) on a terminated world: expected ErrEpisodeOver, got %v", a, err)
		}
	}
	if !w.Snapshot().Equal(before) {
		t.Error("steps on a terminated world must not mutate it")
	}

	// Reset brings it back
	w.Reset(seed(3))
	if w.State() != core.EpisodeRunning {
		t.Errorf("state after reset = %v, expected running", w.State())
	}
	if _, err := w.Step(core.ActionNothing); err != nil {
		t.Errorf("Step after reset failed: %v", err)
	}
}

// runEpisodes drives a world with a seeded random action stream and records
// every step result.
func runEpisodes(t *testing.T, w *World, first int64, actionSeed int64) []core.StepResult {
	t.Helper()
	actions := rand.New(rand.NewSource(actionSeed))
	var results []core.StepResult

	w.Reset(seed(first))
	for ep := 0; ep < 5; ep++ {
		for i := 0; i < 60; i++ {
			res, err := w.Step(core.Actions()[actions.Intn(len(core.Actions()))])
			if err != nil {
				t.Fatalf("Step() failed: %v", err)
			}
			results = append(results, res)
			if res.Done() {
				break
			}
		}
		w.Reset(nil) // continue the stream
	}
	return results
}

func TestDeterminism(t *testing.T) {
	for _, mode := range []LayoutMode{LayoutFixed, LayoutGenerated} {
		w1 := newTestWorld(t, 12, mode)
		w2 := newTestWorld(t, 12, mode)

		r1 := runEpisodes(t, w1, 12345, 99)
		r2 := runEpisodes(t, w2, 12345, 99)

		if len(r1) != len(r2) {
			t.Fatalf("%v: result counts differ: %d vs %d", mode, len(r1), len(r2))
		}
		for i := range r1 {
			a, b := r1[i], r2[i]
			if a.Observation.Agent != b.Observation.Agent || a.Reward != b.Reward ||
				a.Terminated != b.Terminated || a.State != b.State || a.Info != b.Info {
				t.Fatalf("%v: step %d differs: %+v vs %+v", mode, i, a, b)
			}
		}
		if !w1.Snapshot().Equal(w2.Snapshot()) {
			t.Errorf("%v: final snapshots differ", mode)
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	w := newTestWorld(t, 20, LayoutGenerated)
	w.Reset(seed(1))
	a := w.Snapshot()
	w.Reset(seed(2))
	b := w.Snapshot()

	a.Episode, b.Episode = 0, 0
	if a.Equal(b) {
		t.Error("different seeds should produce different generated worlds")
	}
}

func TestResetNilSeedSeedsOnce(t *testing.T) {
	w := newTestWorld(t, 10, LayoutGenerated)
	w.Reset(nil)
	if !w.seeded || w.rng == nil {
		t.Fatal("first nil reset should seed the world")
	}
	if w.State() != core.EpisodeRunning {
		t.Errorf("state = %v, expected running", w.State())
	}
}

func TestBuildInfoUsesMaxDistance(t *testing.T) {
	agent := core.P(5, 9)
	targets := []core.Pos{core.P(4, 0), core.P(5, 0), core.P(6, 0), core.P(5, 7)}

	info := BuildInfo(agent, targets)
	if info.Distance != 10 {
		t.Errorf("Distance = %d, expected 10 (max)", info.Distance)
	}
	if info.Nearest != 2 {
		t.Errorf("Nearest = %d, expected 2 (min)", info.Nearest)
	}
	if (BuildInfo(agent, nil) != core.Info{}) {
		t.Error("no targets should yield zero info")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	w := newTestWorld(t, 10, LayoutGenerated)
	w.Reset(seed(5))

	targets := w.Targets()
	targets[0] = core.P(-1, -1)
	vehicles := w.Vehicles()
	if len(vehicles) > 0 {
		vehicles[0].X = -1
	}
	layout := w.Layout()
	layout[0] = LaneRoadLeft

	if w.Targets()[0] == core.P(-1, -1) {
		t.Error("Targets() must return a copy")
	}
	if len(vehicles) > 0 && w.Vehicles()[0].X == -1 {
		t.Error("Vehicles() must return a copy")
	}
	if w.Layout()[0] != LaneSafe {
		t.Error("Layout() must return a copy")
	}
	if w.Close() != nil {
		t.Error("Close() should be a no-op")
	}
}
