package region

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/gridmap"
)

// ColorAll labels every accessible cell of m and returns the distinct region
// IDs in row-major order of their first cell. Cells that were already labeled
// keep their IDs, which are included in the result.
//
// Returns nil when accessible cannot own the map's memo: it has no key, or
// the map is bound to another predicate until ResetCaches.
//
// Time: O(W·H) plus the fills. Memory: O(W·H).
func (c *Colorer) ColorAll(m *gridmap.Map, accessible gridmap.Predicate) []ID {
	if !memoizes(m, accessible) {
		return nil
	}
	var ids []ID
	issued := mapset.New[ID]()
	for i := 0; i < m.Len(); i++ {
		if !accessible.Accessible(m.CellAt(i)) {
			continue
		}
		id, _ := c.IdentifyRegion(m, m.Coords(i), accessible)
		if issued.Has(id) {
			continue
		}
		issued.Put(id)
		ids = append(ids, id)
	}

	return ids
}

// Members returns the row-major indices of all cells labeled id.
// Time: O(W·H).
func Members(m *gridmap.Map, id ID) []int {
	if id == 0 {
		return nil
	}
	var out []int
	for i := 0; i < m.Len(); i++ {
		if m.Region(i) == id {
			out = append(out, i)
		}
	}

	return out
}
