package astar

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/explore"
	"github.com/katalvlaran/gridpath/geometry"
	"github.com/katalvlaran/gridpath/gridmap"
)

// GetPath returns the path from start to end, goal-first, or nil when there
// is none (including start == end).
func GetPath(m *gridmap.Map, start, end geometry.Point, accessible gridmap.Predicate, opts ...Option) []geometry.Point {
	return Search(m, start, end, accessible, opts...).Path
}

// Search runs the region check and then weighted A* from start to end.
// See the package documentation for the cost model and result ordering.
func Search(m *gridmap.Map, start, end geometry.Point, accessible gridmap.Predicate, opts ...Option) Result {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Nothing to do.
	if start == end {
		return Result{}
	}

	// 2) Both endpoints must be accessible. IndexOf panics outside the map.
	startIdx, endIdx := m.IndexOf(start), m.IndexOf(end)
	if !accessible.Accessible(m.CellAt(startIdx)) || !accessible.Accessible(m.CellAt(endIdx)) {
		return Result{}
	}

	// 3) Different regions can never meet; bail out before any expansion.
	if !cfg.Colorer.Connected(m, start, end, accessible) {
		return Result{}
	}

	// 4) Best-first search.
	s := &search{
		m:           m,
		accessible:  accessible,
		goal:        endIdx,
		goalPt:      end,
		seen:        mapset.New[int](),
		lowest:      math.MaxFloat64,
		maxExpanded: cfg.MaxExpanded,
	}
	s.open = newFrontier(&s.nodes)

	return s.run(startIdx)
}

// search holds the mutable state of one Search call.
type search struct {
	m           *gridmap.Map
	accessible  gridmap.Predicate
	goal        int
	goalPt      geometry.Point
	nodes       arena
	seen        mapset.Set[int]
	open        *frontier
	lowest      float64 // lowest mean edge weight seen so far
	maxExpanded int
}

func (s *search) run(startIdx int) Result {
	s.admit(startIdx, -1)

	expanded := 0
	for {
		top, ok := s.open.peek()
		if !ok {
			return Result{Expanded: expanded, Visited: len(s.nodes)}
		}
		if s.nodes[top].cell == s.goal {
			return s.result(top, expanded)
		}
		if s.maxExpanded > 0 && expanded >= s.maxExpanded {
			return Result{Expanded: expanded, Visited: len(s.nodes)}
		}

		s.open.pop()
		expanded++
		explore.Expand(s.m, s.nodes[top].cell, s.accessible, func(cell int) {
			s.admit(cell, top)
		})
	}
}

// admit adds cell to the arena and frontier unless this search has seen it.
func (s *search) admit(cell, parent int) {
	if s.seen.Has(cell) {
		return
	}
	s.seen.Put(cell)

	p := s.m.Coords(cell)
	n := node{
		cell:   cell,
		h:      float64(geometry.Chebyshev(p, s.goalPt)),
		parent: parent,
	}
	if parent >= 0 {
		prev := s.nodes[parent]
		w := (s.m.CellAt(prev.cell).Weight + s.m.CellAt(cell).Weight) / 2
		if w < s.lowest {
			s.lowest = w
		}
		n.g = prev.g + geometry.Euclidean(s.m.Coords(prev.cell), p)*w
		n.h *= s.lowest
	}

	s.nodes = append(s.nodes, n)
	s.open.push(len(s.nodes) - 1)
}

// result walks parent links from the goal node back to the start.
func (s *search) result(goal, expanded int) Result {
	var path []geometry.Point
	for i := goal; i >= 0; i = s.nodes[i].parent {
		path = append(path, s.m.Coords(s.nodes[i].cell))
	}

	return Result{
		Path:     path,
		Cost:     s.nodes[goal].g,
		Expanded: expanded,
		Visited:  len(s.nodes),
		Found:    true,
	}
}
