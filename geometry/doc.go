// Package geometry provides the coordinate arithmetic shared by every grid
// algorithm in gridpath: the Point type, row-major index mapping, and the three
// grid distances (Manhattan, Chebyshev, Euclidean).
//
// What:
//
//   - Point is an (X, Y) grid coordinate.
//   - Index / Coords convert between a Point and its row-major linear index
//     (index = y*width + x).
//   - Manhattan, Chebyshev and Euclidean measure distance between two Points.
//
// Ordering guarantee:
//
//	For all a, b:  Chebyshev(a,b) ≤ Euclidean(a,b) ≤ Manhattan(a,b)
//
//	   • all three are equal when a and b share an axis;
//	   • Euclidean is exactly offset·√2 when the offset is a pure diagonal.
//
// Preconditions:
//
//   - Index panics with ErrZeroWidth when width ≤ 0 and with ErrXOutOfRange
//     when x ∉ [0, width). These are programming errors, not runtime failures.
//   - Coords panics with ErrZeroWidth when width ≤ 0. It does not bound y:
//     an index past the end of a grid yields a coordinate below its last row,
//     so callers bound-check separately.
//
// Complexity: every function is O(1) time and memory.
package geometry
