// Package astar implements a weighted A* search over a gridmap.Map that
// short-circuits unreachable queries through region labels.
//
// Overview:
//
//  1. start == end                         → empty result.
//  2. either endpoint fails the predicate  → empty result.
//  3. both endpoints are resolved to regions (labeling on demand through a
//     region.Colorer); no region or different regions → empty result, without
//     expanding a single search node. Labels and neighbor caches are used only
//     when the predicate owns the map's memo; any other predicate gets an
//     unrecorded reachability fill and uncached expansion.
//  4. best-first search from start, expanding neighbors with explore.Expand
//     (8-connected, no corner cutting) until the goal is at the top of the
//     frontier or the frontier runs dry.
//
// Costs:
//
//	edge(u→v) = Euclidean(u, v) · (weight(u) + weight(v)) / 2
//	g(v)      = g(u) + edge(u→v)
//	h(v)      = Chebyshev(v, goal) · lowest mean edge weight seen so far
//	h(start)  = Chebyshev(start, goal)
//
//	Scaling the heuristic by the cheapest terrain met so far keeps it close to
//	admissible on weighted maps while expanding far fewer nodes than an
//	unscaled or Euclidean heuristic would. Paths are near-optimal, not
//	guaranteed optimal.
//
// Frontier:
//
//	A min-heap ordered by f = g + h. Equal f is broken by the smaller h (the
//	node believed closer to the goal), then by insertion order (FIFO).
//
// Search state:
//
//	Explored nodes live in a per-call arena; a node's parent is an arena
//	index. A cell enters the arena at most once (first discovery wins), so
//	parent chains cannot cycle. Nothing survives the call except the region
//	labels memoized in step 3.
//
// Results:
//
//	Result.Path is ordered goal-first, start-last, and contains both
//	endpoints; Result.StartFirst returns the reverse. "No path" is an ordinary
//	result with Found == false and an empty Path; no error is returned.
//
// Preconditions:
//
//	Endpoints outside the map panic with gridmap.ErrOutOfBounds.
//
// Complexity:
//
//   - Time:  O(N log N) for N cells admitted to the arena.
//   - Space: O(N).
package astar
