package geometry

import (
	"errors"
	"fmt"
)

// Sentinel precondition errors. They are raised as panic values, never returned.
var (
	// ErrZeroWidth indicates an index mapping was attempted with width ≤ 0.
	ErrZeroWidth = errors.New("geometry: width must be positive")

	// ErrXOutOfRange indicates an x-coordinate outside [0, width).
	ErrXOutOfRange = errors.New("geometry: x out of range for width")
)

// Point is a cell coordinate on a grid. X grows to the east, Y to the south.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// IsDiagonalStep reports whether q is one of the four diagonal neighbours of p.
func (p Point) IsDiagonalStep(q Point) bool {
	return abs(p.X-q.X) == 1 && abs(p.Y-q.Y) == 1
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
