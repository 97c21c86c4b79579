package crossing

import "github.com/vovakirdan/tui-crossing/internal/core"

// observation builds the agent-visible view of the world.
func (w *World) observation() core.Observation {
	return core.Observation{
		Agent:   w.agent,
		Targets: w.Targets(),
	}
}

// info builds the auxiliary distance info.
func (w *World) info() core.Info {
	return BuildInfo(w.agent, w.targets)
}

// BuildInfo computes the distance signals from agent to targets.
// Distance is the maximum L1 distance over all targets, Nearest the minimum.
func BuildInfo(agent core.Pos, targets []core.Pos) core.Info {
	if len(targets) == 0 {
		return core.Info{}
	}
	info := core.Info{Distance: 0, Nearest: agent.Manhattan(targets[0])}
	for _, t := range targets {
		d := agent.Manhattan(t)
		info.Distance = max(info.Distance, d)
		info.Nearest = min(info.Nearest, d)
	}
	return info
}
