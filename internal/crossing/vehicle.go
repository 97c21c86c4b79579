package crossing

import "github.com/vovakirdan/tui-crossing/internal/core"

// Heading is the direction a vehicle faces, derived from its velocity sign.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingLeft
)

// Vehicle is a single obstacle confined to one lane row.
// Row and Velocity never change after creation.
type Vehicle struct {
	Row      int // Lane row (y)
	X        int // Column, always in [0, width)
	Velocity int // Signed cells per step, |Velocity| >= 1
	Variant  int // Visual variant id
}

// Pos returns the cell the vehicle occupies.
func (v Vehicle) Pos() core.Pos {
	return core.Pos{X: v.X, Y: v.Row}
}

// Heading returns which way the vehicle is driving.
func (v Vehicle) Heading() Heading {
	if v.Velocity < 0 {
		return HeadingLeft
	}
	return HeadingRight
}

// Move advances the vehicle by its velocity and wraps it at the grid edge:
// a rightward vehicle that reaches width reappears at 0, a leftward vehicle
// that drops below 0 reappears at width-1.
func (v *Vehicle) Move(width int) {
	v.X += v.Velocity
	if v.Velocity > 0 && v.X >= width {
		v.X = 0
	}
	if v.Velocity < 0 && v.X < 0 {
		v.X = width - 1
	}
}
