package crossing

import (
	"fmt"
	"math/rand"
)

// LaneType tags a grid row.
type LaneType int

const (
	LaneSafe      LaneType = iota // no traffic
	LaneRoadLeft                  // vehicles travel towards x = 0
	LaneRoadRight                 // vehicles travel towards x = size-1
)

// String returns a short name for the lane type.
func (l LaneType) String() string {
	switch l {
	case LaneSafe:
		return "safe"
	case LaneRoadLeft:
		return "road-left"
	case LaneRoadRight:
		return "road-right"
	default:
		return "unknown"
	}
}

// IsRoad reports whether vehicles drive on this lane.
func (l LaneType) IsRoad() bool {
	return l == LaneRoadLeft || l == LaneRoadRight
}

// Direction returns the velocity sign for traffic on this lane: -1, +1, or 0 for safe rows.
func (l LaneType) Direction() int {
	switch l {
	case LaneRoadLeft:
		return -1
	case LaneRoadRight:
		return 1
	default:
		return 0
	}
}

// Layout is the lane type of every row, top (goal) to bottom (start).
type Layout []LaneType

// RoadRows returns the indices of road rows in top-to-bottom order.
func (l Layout) RoadRows() []int {
	var rows []int
	for y, lane := range l {
		if lane.IsRoad() {
			rows = append(rows, y)
		}
	}
	return rows
}

// LongestSafeRun returns the length of the longest run of consecutive safe rows.
func (l Layout) LongestSafeRun() int {
	longest, run := 0, 0
	for _, lane := range l {
		if lane == LaneSafe {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return longest
}

// Validate checks the layout invariants: safe first and last rows and no safe
// run longer than maxSafe.
func (l Layout) Validate(maxSafe int) error {
	if len(l) < 2 {
		return fmt.Errorf("%w: layout has %d rows, need at least 2", ErrConfiguration, len(l))
	}
	if l[0] != LaneSafe || l[len(l)-1] != LaneSafe {
		return fmt.Errorf("%w: goal and start rows must be safe", ErrConfiguration)
	}
	if run := l.LongestSafeRun(); run > maxSafe {
		return fmt.Errorf("%w: safe run of %d rows exceeds %d", ErrConfiguration, run, maxSafe)
	}
	return nil
}

// Clone returns an independent copy of the layout.
func (l Layout) Clone() Layout {
	return append(Layout(nil), l...)
}

// laneChoices is the candidate set for an interior row, in draw order.
var laneChoices = []LaneType{LaneRoadLeft, LaneSafe, LaneRoadRight}

// roadChoices is the candidate set once the safe run is exhausted.
var roadChoices = []LaneType{LaneRoadLeft, LaneRoadRight}

// GenerateLanes builds a layout of height rows. Row 0 and row height-1 are
// safe; interior rows are drawn uniformly from road-left, safe and road-right,
// except that safe is excluded once the current safe run would exceed maxSafe.
// The last interior row also accounts for the safe start row below it.
func GenerateLanes(rng *rand.Rand, height, maxSafe int) (Layout, error) {
	if height < 2 {
		return nil, fmt.Errorf("%w: lane height %d is less than 2", ErrConfiguration, height)
	}
	if maxSafe < 1 {
		return nil, fmt.Errorf("%w: max safe consecutive %d is less than 1", ErrConfiguration, maxSafe)
	}
	if height == 2 && maxSafe < 2 {
		return nil, fmt.Errorf("%w: two safe rows cannot satisfy max safe consecutive %d", ErrConfiguration, maxSafe)
	}

	layout := make(Layout, 0, height)
	layout = append(layout, LaneSafe) // goal zone
	safeRun := 1

	for y := 1; y < height-1; y++ {
		limit := maxSafe
		if y == height-2 {
			limit-- // leave room for the start row
		}

		choices := laneChoices
		if safeRun >= limit {
			choices = roadChoices
		}

		lane := choices[rng.Intn(len(choices))]
		layout = append(layout, lane)

		if lane == LaneSafe {
			safeRun++
		} else {
			safeRun = 0
		}
	}

	layout = append(layout, LaneSafe) // start zone
	return layout, nil
}

// FixedLayout returns the minimal layout: rightward roads on rows size-2 and
// size-4, everything else safe.
func FixedLayout(size int) Layout {
	layout := make(Layout, size)
	for _, offset := range []int{2, 4} {
		if row := size - offset; row > 0 {
			layout[row] = LaneRoadRight
		}
	}
	return layout
}
