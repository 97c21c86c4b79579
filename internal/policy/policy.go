// Package policy provides programmatic drivers that pick actions from
// observations. None of them learn; they exist to exercise worlds headlessly.
package policy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Policy chooses the next action for an observation.
type Policy interface {
	Name() string
	// Reset prepares the policy for a new episode.
	Reset(seed int64)
	Act(obs core.Observation) core.Action
}

// New returns the named policy. actions is only used by "script".
func New(name string, actions []core.Action) (Policy, error) {
	switch name {
	case "script":
		return NewScript(actions), nil
	case "random":
		return NewRandom(), nil
	case "greedy":
		return Greedy{}, nil
	case "idle":
		return Idle{}, nil
	}
	return nil, fmt.Errorf("policy: unknown policy %q", name)
}

// Names lists the policies New understands.
func Names() []string {
	return []string{"greedy", "idle", "random", "script"}
}

// Script replays a fixed action list and then stands still.
type Script struct {
	actions []core.Action
	next    int
}

// NewScript creates a script policy over a copy of actions.
func NewScript(actions []core.Action) *Script {
	return &Script{actions: append([]core.Action(nil), actions...)}
}

func (s *Script) Name() string { return "script" }

// Reset rewinds to the first action.
func (s *Script) Reset(int64) { s.next = 0 }

// Act returns the next scripted action, or nothing once the script ran out.
func (s *Script) Act(core.Observation) core.Action {
	if s.next >= len(s.actions) {
		return core.ActionNothing
	}
	a := s.actions[s.next]
	s.next++
	return a
}

// Remaining returns how many scripted actions are left.
func (s *Script) Remaining() int {
	return len(s.actions) - s.next
}

// Random picks uniformly among all actions.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random policy seeded with 0 until Reset.
func NewRandom() *Random {
	return &Random{rng: rand.New(rand.NewSource(0))}
}

func (r *Random) Name() string { return "random" }

// Reset reseeds the policy's generator.
func (r *Random) Reset(seed int64) { r.rng = rand.New(rand.NewSource(seed)) }

func (r *Random) Act(core.Observation) core.Action {
	all := core.Actions()
	return all[r.rng.Intn(len(all))]
}

// Greedy walks toward the nearest target, vertical moves first.
type Greedy struct{}

func (Greedy) Name() string { return "greedy" }
func (Greedy) Reset(int64) {}

func (Greedy) Act(obs core.Observation) core.Action {
	if len(obs.Targets) == 0 {
		return core.ActionNothing
	}
	best := obs.Targets[0]
	for _, t := range obs.Targets[1:] {
		if obs.Agent.Manhattan(t) < obs.Agent.Manhattan(best) {
			best = t
		}
	}
	switch {
	case best.Y < obs.Agent.Y:
		return core.ActionUp
	case best.Y > obs.Agent.Y:
		return core.ActionDown
	case best.X > obs.Agent.X:
		return core.ActionRight
	case best.X < obs.Agent.X:
		return core.ActionLeft
	}
	return core.ActionNothing
}

// Idle never moves.
type Idle struct{}

func (Idle) Name() string { return "idle" }
func (Idle) Reset(int64) {}
func (Idle) Act(core.Observation) core.Action { return core.ActionNothing }
