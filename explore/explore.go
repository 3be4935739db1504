package explore

import "github.com/katalvlaran/gridpath/gridmap"

// Offsets lists the 8-connected neighbor offsets in N, NE, E, SE, S, SW, W, NW order.
var Offsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Expand admits every legal neighbor of cell, replaying the cell's neighbor
// cache when the region colorer published one under accessible.
func Expand(m *gridmap.Map, cell int, accessible gridmap.Predicate, admit func(candidate int)) {
	if cached, ok := m.Neighbors(cell, accessible); ok {
		for _, n := range cached {
			admit(n)
		}
		return
	}
	ExpandUncached(m, cell, accessible, admit)
}

// ExpandUncached admits every legal neighbor of cell without consulting the cache.
func ExpandUncached(m *gridmap.Map, cell int, accessible gridmap.Predicate, admit func(candidate int)) {
	p := m.Coords(cell)
	for _, d := range Offsets {
		nx, ny := p.X+d[0], p.Y+d[1]
		if !m.InBounds(nx, ny) {
			continue
		}
		candidate := ny*m.Width() + nx
		if !accessible.Accessible(m.CellAt(candidate)) {
			continue
		}
		// Both flanking cells are in bounds whenever the diagonal target is.
		if d[0] != 0 && d[1] != 0 {
			if !accessible.Accessible(m.Cell(nx, p.Y)) || !accessible.Accessible(m.Cell(p.X, ny)) {
				continue
			}
		}
		admit(candidate)
	}
}

// Neighbors collects the result of ExpandUncached into a slice. It never
// returns nil, so an isolated cell yields an empty but present cache.
func Neighbors(m *gridmap.Map, cell int, accessible gridmap.Predicate) []int {
	out := make([]int, 0, len(Offsets))
	ExpandUncached(m, cell, accessible, func(c int) {
		out = append(out, c)
	})

	return out
}
