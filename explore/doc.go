// Package explore implements the node-expansion step shared by the region
// colorer and the A* search.
//
// Given a cell being expanded, Expand enumerates its legal 8-connected
// neighbors and hands each one to an admit callback. The callback closes over
// whatever the caller needs (the prospective parent, its frontier, its
// seen-set), so one expansion routine serves a flood fill and a best-first
// search alike.
//
// Rules, in order:
//
//  1. Offsets leaving [0,W)×[0,H) are skipped.
//  2. The candidate must satisfy the caller's accessibility Predicate.
//  3. A diagonal step (dx≠0 and dy≠0) also needs both flanking orthogonal
//     cells (x+dx, y) and (x, y+dy) accessible. Otherwise it would cut a
//     corner.
//
// In the map below, from o only the step straight down is legal:
//
//	. X .
//	X o X
//	. . .
//
// Cached fast path:
//
//	When the expanded cell carries a region label and a neighbor cache, and
//	the map's memo belongs to the caller's predicate (same key), Expand
//	replays the cache instead. The set of admitted candidates is identical;
//	only the work differs. Any other predicate takes the uncached path.
//
// Offsets are visited in the fixed order N, NE, E, SE, S, SW, W, NW.
//
// Complexity: O(1) per expansion (at most 8 candidates, 3 predicate calls each).
package explore
