package core

// EpisodeState is the phase of the current episode.
type EpisodeState int

const (
	EpisodeIdle      EpisodeState = iota // never reset
	EpisodeRunning                       // steps accepted
	EpisodeSuccess                       // agent reached a target
	EpisodeCollision                     // agent shares a cell with a vehicle
)

// String returns a human-readable name for the state.
func (s EpisodeState) String() string {
	switch s {
	case EpisodeIdle:
		return "idle"
	case EpisodeRunning:
		return "running"
	case EpisodeSuccess:
		return "success"
	case EpisodeCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// Terminal reports whether the episode has ended.
func (s EpisodeState) Terminal() bool {
	return s == EpisodeSuccess || s == EpisodeCollision
}

// Observation is what an agent sees after reset and after every step.
type Observation struct {
	Agent   Pos
	Targets []Pos
}

// Info carries auxiliary per-step data.
type Info struct {
	// Distance is the largest L1 distance from the agent to any target.
	Distance int
	// Nearest is the smallest L1 distance from the agent to any target.
	Nearest int
}

// StepResult is returned by a world after each step.
type StepResult struct {
	Observation Observation
	Reward      float64
	Terminated  bool
	Truncated   bool // always false: there is no time limit
	Info        Info
	State       EpisodeState
}

// Done reports whether the episode is over after this step.
func (r StepResult) Done() bool {
	return r.Terminated || r.Truncated
}
