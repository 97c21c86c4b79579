// Package core provides fundamental types and utilities for the crossing world.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Pos is a cell on the square grid. X grows to the right, Y grows downward,
// so row 0 is the top (goal) row.
type Pos struct {
	X, Y int
}

// P is shorthand for building a Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// Add returns the component-wise sum of two positions.
func (p Pos) Add(d Pos) Pos {
	return Pos{X: p.X + d.X, Y: p.Y + d.Y}
}

// Clamp restricts both coordinates to [0, size-1].
func (p Pos) Clamp(size int) Pos {
	return Pos{X: Clamp(p.X, 0, size-1), Y: Clamp(p.Y, 0, size-1)}
}

// InBounds reports whether the position lies on a size x size grid.
func (p Pos) InBounds(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// Manhattan returns the L1 distance between two positions.
func (p Pos) Manhattan(o Pos) int {
	return Abs(p.X-o.X) + Abs(p.Y-o.Y)
}

// Rect represents an axis-aligned area on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
