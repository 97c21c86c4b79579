package crossing

import "github.com/vovakirdan/tui-crossing/internal/core"

// Snapshot captures the complete world state for rendering, determinism
// testing and replay. It shares no memory with the World.
type Snapshot struct {
	Episode  int
	Step     int
	State    core.EpisodeState
	Size     int
	Agent    core.Pos
	Targets  []core.Pos
	Vehicles []Vehicle
	Layout   Layout
}

// Snapshot returns a deep copy of the current state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Episode:  w.episode,
		Step:     w.steps,
		State:    w.state,
		Size:     w.size,
		Agent:    w.agent,
		Targets:  w.Targets(),
		Vehicles: w.Vehicles(),
		Layout:   w.Layout(),
	}
}

// Equal reports whether two snapshots describe the same world.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Episode != o.Episode || s.Step != o.Step || s.State != o.State ||
		s.Size != o.Size || s.Agent != o.Agent {
		return false
	}
	if len(s.Targets) != len(o.Targets) || len(s.Vehicles) != len(o.Vehicles) || len(s.Layout) != len(o.Layout) {
		return false
	}
	for i := range s.Targets {
		if s.Targets[i] != o.Targets[i] {
			return false
		}
	}
	for i := range s.Vehicles {
		if s.Vehicles[i] != o.Vehicles[i] {
			return false
		}
	}
	for i := range s.Layout {
		if s.Layout[i] != o.Layout[i] {
			return false
		}
	}
	return true
}

// TargetAt reports whether any target sits on p.
func (s Snapshot) TargetAt(p core.Pos) bool {
	for _, t := range s.Targets {
		if t == p {
			return true
		}
	}
	return false
}
