// Package region partitions a gridmap.Map into regions: maximal sets of cells
// that are mutually reachable under an accessibility predicate.
//
// What:
//
//   - Colorer.IdentifyRegion flood-fills from a start cell, stamps every
//     reached cell with a fresh region ID and returns it. A start cell that is
//     already labeled is answered in O(1) without traversal.
//   - Colorer.ColorAll labels every accessible cell of a map, one flood fill
//     per still-unlabeled cell, and returns the IDs it issued.
//   - Members lists the cells carrying a given label.
//
// While filling, the colorer records each expanded cell's admissible
// neighbors in the map's neighbor cache (disable with WithNeighborCache(false)),
// which later lets explore.Expand skip the neighbor rules for labeled cells.
//
// IDs:
//
//	IDs come from an IDSource. Counter is an atomic, resettable implementation;
//	Default is the process-wide Counter used when none is injected. The first
//	ID issued by a fresh Counter is 1; 0 means "unlabeled".
//
// Predicate ownership:
//
//	Labels and caches are only meaningful for the predicate that produced
//	them. The first gridmap.Keyed predicate to color a map binds the map's
//	memo to its key. Queries under that key reuse the memo; queries under any
//	other predicate (another key, or an unkeyed PredicateFunc) run unrecorded
//	flood fills and leave the memo alone. ResetCaches unbinds the map.
//
// Invariant:
//
//	Right after a consistent full (re)coloring, two accessible cells share an
//	ID iff a path connects them under the predicate owning the memo. Labels
//	are never revalidated: after terrain edits the owner must call
//	Map.ResetCaches.
//
// Concurrency:
//
//	IdentifyRegion holds the map's label lock while filling and re-checks the
//	start label after acquiring it, so racing callers on the same unlabeled
//	region produce a single label. Reads of existing labels take no lock.
//
// Complexity:
//
//   - IdentifyRegion: O(R) time and memory for a region of R cells; O(1) when memoized.
//   - ColorAll:       O(W×H).
package region
