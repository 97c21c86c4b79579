// Package crossing implements the pedestrian road-crossing grid world: lane
// generation, vehicles, and the episode state machine driven by Reset and Step.
//
// A World is single-owner and not safe for concurrent use. Each World owns its
// random generator, so two worlds reset with the same seed and fed the same
// actions produce identical episodes.
package crossing

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// MinSize is the smallest supported grid size.
const MinSize = 5

// Rewards returned by Step.
const (
	RewardSuccess   = 1.0
	RewardCollision = -10.0
	RewardNone      = 0.0
)

// LayoutMode selects how lanes are laid out on reset.
type LayoutMode int

const (
	// LayoutFixed places rightward roads on rows size-2 and size-4.
	LayoutFixed LayoutMode = iota
	// LayoutGenerated draws a new lane layout every episode.
	LayoutGenerated
)

// String returns a short name for the mode.
func (m LayoutMode) String() string {
	if m == LayoutGenerated {
		return "generated"
	}
	return "fixed"
}

// Option customizes a World at construction.
type Option func(*World)

// WithLogger sets the logger used for reset and termination events.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithLayout selects the lane layout mode.
func WithLayout(m LayoutMode) Option {
	return func(w *World) {
		w.mode = m
	}
}

// World is the episode state machine. It owns the agent, targets, vehicles,
// lane layout and random generator.
type World struct {
	cfg    config.CrossingConfig
	mode   LayoutMode
	size   int
	logger *log.Logger

	rng    *rand.Rand
	seeded bool

	agent    core.Pos
	targets  []core.Pos
	vehicles []Vehicle
	layout   Layout
	state    core.EpisodeState
	steps    int
	episode  int
}

// New validates cfg and creates a world. The world must be Reset before Step.
func New(cfg config.CrossingConfig, opts ...Option) (*World, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	w := &World{
		cfg:    cfg,
		size:   cfg.Grid.Size,
		logger: log.New(io.Discard),
		state:  core.EpisodeIdle,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// validate checks the construction parameters.
func validate(cfg config.CrossingConfig) error {
	size := cfg.Grid.Size
	switch {
	case size < MinSize:
		return fmt.Errorf("%w: size %d is less than %d", ErrConfiguration, size, MinSize)
	case cfg.Grid.StepsPerSecond < 1:
		return fmt.Errorf("%w: steps per second %d is less than 1", ErrConfiguration, cfg.Grid.StepsPerSecond)
	case cfg.Lanes.MaxSafeConsecutive < 1:
		return fmt.Errorf("%w: max safe consecutive %d is less than 1", ErrConfiguration, cfg.Lanes.MaxSafeConsecutive)
	case cfg.Vehicles.MaxSpeed < 1 || cfg.Vehicles.MaxSpeed >= size:
		return fmt.Errorf("%w: vehicle max speed %d must be in [1, %d)", ErrConfiguration, cfg.Vehicles.MaxSpeed, size)
	case cfg.Vehicles.Variants < 1:
		return fmt.Errorf("%w: vehicle variants %d is less than 1", ErrConfiguration, cfg.Vehicles.Variants)
	}
	return nil
}

// Reset starts a new episode and returns the initial observation and info.
//
// A non-nil seed reseeds the world's generator. A nil seed continues the
// current stream, or seeds from the clock if the world was never seeded.
// Reset is safe on a running or terminated world; it replaces all state.
func (w *World) Reset(seed *int64) (core.Observation, core.Info) {
	rng := w.rng
	switch {
	case seed != nil:
		rng = rand.New(rand.NewSource(*seed))
	case !w.seeded:
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	layout := w.buildLayout(rng)
	agent := w.startCell()
	targets := w.buildTargets(rng, agent)
	vehicles := w.buildVehicles(rng, layout)

	// Commit
	w.rng = rng
	w.seeded = true
	w.layout = layout
	w.agent = agent
	w.targets = targets
	w.vehicles = vehicles
	w.state = core.EpisodeRunning
	w.steps = 0
	w.episode++

	w.logger.Debug("episode reset",
		"episode", w.episode,
		"layout", w.mode,
		"roads", len(layout.RoadRows()),
		"vehicles", len(vehicles),
		"extra_target", targets[len(targets)-1],
	)

	return w.observation(), w.info()
}

// buildLayout returns the lane layout for a new episode.
func (w *World) buildLayout(rng *rand.Rand) Layout {
	if w.mode == LayoutGenerated {
		layout, err := GenerateLanes(rng, w.size, w.cfg.Lanes.MaxSafeConsecutive)
		if err == nil {
			return layout
		}
		// Unreachable with a validated config.
		w.logger.Warn("lane generation failed, using fixed layout", "error", err)
	}
	return FixedLayout(w.size)
}

// startCell is the horizontal center of the bottom row.
func (w *World) startCell() core.Pos {
	return core.Pos{X: w.size / 2, Y: w.size - 1}
}

// buildTargets returns the three goal cells centered on the top row followed
// by one random cell that differs from start.
func (w *World) buildTargets(rng *rand.Rand, start core.Pos) []core.Pos {
	targets := make([]core.Pos, 0, 4)
	for i := 0; i < 3; i++ {
		targets = append(targets, core.Pos{X: w.size/2 + i - 1, Y: 0})
	}

	extra := start
	for extra == start {
		extra = core.Pos{X: rng.Intn(w.size), Y: rng.Intn(w.size)}
	}
	return append(targets, extra)
}

// buildVehicles spawns one vehicle per road row.
func (w *World) buildVehicles(rng *rand.Rand, layout Layout) []Vehicle {
	rows := layout.RoadRows()
	vehicles := make([]Vehicle, 0, len(rows))

	// Fixed layouts spawn bottom-up, matching the row order they are defined in.
	if w.mode == LayoutFixed {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}

	for _, row := range rows {
		v := Vehicle{Row: row}
		if w.mode == LayoutGenerated {
			v.X = rng.Intn(w.size)
			v.Velocity = layout[row].Direction() * (1 + rng.Intn(w.cfg.Vehicles.MaxSpeed))
		} else {
			v.Velocity = 1
		}
		v.Variant = rng.Intn(w.cfg.Vehicles.Variants)
		vehicles = append(vehicles, v)
	}
	return vehicles
}

// Step applies one action. Vehicles move first, then the agent, then
// collision is checked before success. Invalid actions and steps outside a
// running episode fail without changing the world.
func (w *World) Step(a core.Action) (core.StepResult, error) {
	delta, ok := a.Delta()
	if !ok {
		return core.StepResult{}, fmt.Errorf("%w: %v", ErrInvalidAction, a)
	}
	switch {
	case w.state == core.EpisodeIdle:
		return core.StepResult{}, ErrNotReset
	case w.state.Terminal():
		return core.StepResult{}, fmt.Errorf("%w: state is %v", ErrEpisodeOver, w.state)
	}

	for i := range w.vehicles {
		w.vehicles[i].Move(w.size)
	}
	w.agent = w.agent.Add(delta).Clamp(w.size)
	w.steps++

	reward := RewardNone
	terminated := false
	if w.collided() {
		w.state = core.EpisodeCollision
		reward = RewardCollision
		terminated = true
	} else if hits := w.targetHits(); hits > 0 {
		w.state = core.EpisodeSuccess
		reward = RewardSuccess
		terminated = true
	}

	if terminated {
		w.logger.Debug("episode ended",
			"episode", w.episode,
			"state", w.state,
			"steps", w.steps,
			"agent", w.agent,
		)
	}

	return core.StepResult{
		Observation: w.observation(),
		Reward:      reward,
		Terminated:  terminated,
		Truncated:   false,
		Info:        w.info(),
		State:       w.state,
	}, nil
}

// collided reports whether any vehicle shares the agent's cell.
func (w *World) collided() bool {
	for _, v := range w.vehicles {
		if v.Pos() == w.agent {
			return true
		}
	}
	return false
}

// targetHits counts the targets on the agent's cell.
func (w *World) targetHits() int {
	hits := 0
	for _, t := range w.targets {
		if t == w.agent {
			hits++
		}
	}
	return hits
}

// Close releases nothing; it exists so a World satisfies the env interface.
func (w *World) Close() error {
	return nil
}

// Agent returns the agent's cell.
func (w *World) Agent() core.Pos {
	return w.agent
}

// Targets returns a copy of the target cells.
func (w *World) Targets() []core.Pos {
	return append([]core.Pos(nil), w.targets...)
}

// Vehicles returns a copy of the vehicles.
func (w *World) Vehicles() []Vehicle {
	return append([]Vehicle(nil), w.vehicles...)
}

// Layout returns a copy of the current lane layout.
func (w *World) Layout() Layout {
	return w.layout.Clone()
}

// Size returns the grid size.
func (w *World) Size() int {
	return w.size
}

// State returns the episode state.
func (w *World) State() core.EpisodeState {
	return w.state
}

// Steps returns the number of steps taken in the current episode.
func (w *World) Steps() int {
	return w.steps
}

// StepsPerSecond returns the configured pacing for front ends.
func (w *World) StepsPerSecond() int {
	return w.cfg.Grid.StepsPerSecond
}

// Mode returns the lane layout mode.
func (w *World) Mode() LayoutMode {
	return w.mode
}
