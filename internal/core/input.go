package core

import (
	"fmt"
	"strings"
)

// Action is one of the discrete moves the pedestrian can take in a step.
// The zero value is ActionNothing.
type Action int

const (
	ActionNothing Action = iota // stay in place
	ActionUp                    // towards row 0
	ActionDown                  // towards the start row
	ActionRight
	ActionLeft
)

// actionDeltas maps each valid action to its grid displacement.
var actionDeltas = map[Action]Pos{
	ActionNothing: {X: 0, Y: 0},
	ActionUp:      {X: 0, Y: -1},
	ActionDown:    {X: 0, Y: 1},
	ActionRight:   {X: 1, Y: 0},
	ActionLeft:    {X: -1, Y: 0},
}

// Actions lists every valid action in enum order.
func Actions() []Action {
	return []Action{ActionNothing, ActionUp, ActionDown, ActionRight, ActionLeft}
}

// Valid reports whether a is one of the defined actions.
func (a Action) Valid() bool {
	_, ok := actionDeltas[a]
	return ok
}

// Delta returns the displacement for the action.
// ok is false for values outside the enum.
func (a Action) Delta() (d Pos, ok bool) {
	d, ok = actionDeltas[a]
	return d, ok
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNothing:
		return "nothing"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionRight:
		return "right"
	case ActionLeft:
		return "left"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ParseAction converts a name such as "up" or "nothing" into an Action.
// Matching is case-insensitive; "none" and "noop" are accepted for nothing.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nothing", "none", "noop":
		return ActionNothing, nil
	case "up", "u":
		return ActionUp, nil
	case "down", "d":
		return ActionDown, nil
	case "right", "r":
		return ActionRight, nil
	case "left", "l":
		return ActionLeft, nil
	}
	return ActionNothing, fmt.Errorf("core: unknown action %q", s)
}

// ParseActions parses a comma separated action list such as "up,up,left".
// Empty entries are skipped.
func ParseActions(s string) ([]Action, error) {
	var out []Action
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		a, err := ParseAction(part)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
