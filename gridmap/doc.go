// Package gridmap is the weighted, partially-blocked 2D grid that the region
// colorer and the A* search run over.
//
// What:
//
//   - Map owns a width×height array of Cells stored in row-major order.
//   - Each Cell carries a Blocking flag and a movement Weight (lower = faster,
//     DefaultWeight = 1.3), plus two memo fields written by the region colorer:
//     a region label and a neighbor cache.
//   - FromRows builds a Map from ASCII rows through a glyph Legend.
//
// Accessibility:
//
//	Algorithms never inspect Blocking directly; they ask a Predicate.
//	Passable is the default predicate (!Blocking). MaxWeight builds a
//	mover-specific predicate that also refuses expensive terrain.
//	PredicateFunc adapts any function; Named attaches a key to one.
//
// Memoization and invalidation:
//
//   - Region labels and neighbor caches belong to the Keyed predicate that
//     built them. The first keyed predicate to color a map binds its memo;
//     other predicates (different key, or no key at all) neither read nor
//     write it until ResetCaches unbinds the map.
//   - Region labels are published with atomic stores, and neighbor caches are
//     written before the label of their cell, so concurrent read-only queries
//     can consume them without further locking.
//   - WithLabelLock serializes colorers against each other.
//   - SetBlocking and SetWeight do NOT touch the memo fields. Callers must
//     serialize grid edits against every query and call ResetCaches after any
//     edit that could change connectivity.
//
// Errors:
//
//   - ErrEmptyGrid:      width or height is not positive / no rows given.
//   - ErrNonRectangular: FromRows received rows of differing lengths.
//   - ErrUnknownGlyph:   FromRows met a rune absent from the legend.
//   - ErrBadWeight:      a weight that is not strictly positive.
//   - ErrOutOfBounds:    coordinate outside the grid (panic value for accessors).
package gridmap
