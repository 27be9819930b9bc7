// Package core provides fundamental types shared by the simulation and the
// hosts that drive it. It has no dependency on any UI toolkit so game logic
// stays pure and testable.
package core

import "math"

// Rect is an axis-aligned box in playfield coordinates.
// The origin is the top-left corner; Y grows downward.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// OverlapsX reports whether the horizontal spans of r and other overlap.
// Touching edges do not count as overlap.
func (r Rect) OverlapsX(other Rect) bool {
	return r.Right() > other.X && r.X < other.Right()
}

// Cells maps the rectangle from a w x h space onto a cols x rows grid and
// returns the covered cell span [x0, x1) x [y0, y1).
func (r Rect) Cells(cols, rows int, w, h float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X * float64(cols) / w))
	y0 = int(math.Floor(r.Y * float64(rows) / h))
	x1 = int(math.Ceil(r.Right() * float64(cols) / w))
	y1 = int(math.Ceil(r.Bottom() * float64(rows) / h))
	return x0, y0, x1, y1
}
