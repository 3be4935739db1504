// Package gridpath is a toolkit for path finding on weighted 2D tile grids:
// region coloring for O(1) reachability checks, weighted A* that never cuts
// corners, and a follower that walks the result at terrain-scaled speed.
//
// What is inside?
//
//	geometry: Point, row-major indexing, Manhattan/Chebyshev/Euclidean
//	gridmap:  the tile Map: blocking flags, weights, region labels, caches
//	explore:  8-way neighbor expansion with the no-corner-cutting rule
//	region:   flood-fill coloring, Connected, ColorAll, ID sources
//	astar:    weighted A* with region short-circuit and expansion bounds
//	follow:   walk a found path tick by tick
//
// Quick ASCII example:
//
//	S . X
//	. X .
//	. . G
//
//	m, _ := gridmap.FromRows([]string{"..X", ".X.", "..."})
//	path := astar.GetPath(m, geometry.Pt(0, 0), geometry.Pt(2, 2), gridmap.Passable)
//	// path is goal-first: (2,2) (1,2) (0,2) (0,1) (0,0)
//
// Concurrency: queries on one Map may run in parallel; coloring is
// serialized per Map and labels are published atomically. Grid edits must be
// serialized by the caller, followed by Map.ResetCaches.
//
// See the examples/ directory for runnable programs.
package gridpath
