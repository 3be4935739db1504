package geometry

import "math"

// Index maps (x, y) to the row-major index y*width + x.
//
// Panics with ErrZeroWidth if width ≤ 0 and ErrXOutOfRange if x ∉ [0, width).
// y is deliberately unbounded.
func Index(x, y, width int) int {
	if width <= 0 {
		panic(ErrZeroWidth.Error())
	}
	if x < 0 || x >= width {
		panic(ErrXOutOfRange.Error())
	}

	return y*width + x
}

// Coords is the inverse of Index: y = index / width, x = index - y*width.
// Panics with ErrZeroWidth if width ≤ 0.
func Coords(index, width int) (x, y int) {
	if width <= 0 {
		panic(ErrZeroWidth.Error())
	}
	y = index / width
	x = index - y*width

	return x, y
}

// Manhattan returns |ax-bx| + |ay-by|.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Chebyshev returns max(|ax-bx|, |ay-by|), the number of king moves between a and b.
func Chebyshev(a, b Point) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx > dy {
		return dx
	}

	return dy
}

// Euclidean returns the straight-line distance between a and b.
//
// Axis-aligned and pure-diagonal offsets are computed exactly, so that a step
// to an orthogonal neighbour costs exactly 1 and a diagonal step exactly √2.
func Euclidean(a, b Point) float64 {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	switch {
	case dx == 0:
		return float64(dy)
	case dy == 0:
		return float64(dx)
	case dx == dy:
		return float64(dx) * math.Sqrt2
	}

	return math.Hypot(float64(dx), float64(dy))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
