// Package core provides the character-cell drawing surface and geometry
// shared by the views. It has no Bubble Tea dependency so board rendering
// stays testable.
package core

// Rect is an axis-aligned area of character cells.
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

// CellSize returns the edge of the largest square cell that fits cols x rows
// cells into a width x height surface, never less than 1.
func CellSize(width, height, cols, rows int) int {
	if cols <= 0 || rows <= 0 {
		return 1
	}
	return max(1, min(width/cols, height/rows))
}
