package region

import (
	"sync/atomic"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/explore"
	"github.com/katalvlaran/gridpath/geometry"
	"github.com/katalvlaran/gridpath/gridmap"
)

// Colorer assigns region IDs to cells of a gridmap.Map. A Colorer holds no
// per-map state and may be shared across maps and goroutines.
type Colorer struct {
	opts       Options
	traversals atomic.Uint64
}

// NewColorer builds a Colorer from DefaultOptions plus opts.
func NewColorer(opts ...Option) *Colorer {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Colorer{opts: cfg}
}

// IDs returns the IDSource this Colorer draws from.
func (c *Colorer) IDs() IDSource {
	return c.opts.IDs
}

// Traversals returns how many flood fills this Colorer has performed.
func (c *Colorer) Traversals() uint64 {
	return c.traversals.Load()
}

// IdentifyRegion returns the region of start, labeling it first if needed.
//
// Returns (0, false) when start fails the predicate. When accessible owns the
// map's memo (see gridmap.Map.Memoizes) an existing label is returned without
// traversal, and otherwise every cell reachable from start is stamped with a
// fresh ID. Any other predicate gets a fresh, unrecorded ID per call and
// leaves the map untouched.
//
// Panics with gridmap.ErrOutOfBounds if start lies outside m.
func (c *Colorer) IdentifyRegion(m *gridmap.Map, start geometry.Point, accessible gridmap.Predicate) (ID, bool) {
	seed := m.IndexOf(start)
	if !accessible.Accessible(m.CellAt(seed)) {
		return 0, false
	}
	if !memoizes(m, accessible) {
		return c.fill(m, seed, -1, accessible, false).id, true
	}
	if id := m.Region(seed); id != 0 {
		return id, true
	}

	var id ID
	m.WithLabelLock(func() {
		// Another colorer may have filled this region while we waited.
		if id = m.Region(seed); id != 0 {
			return
		}
		id = c.fill(m, seed, -1, accessible, true).id
	})

	return id, true
}

// Connected reports whether a and b are mutually reachable under accessible.
// Regions are labeled on demand when accessible owns the map's memo;
// otherwise a single unrecorded flood fill from a answers the query.
func (c *Colorer) Connected(m *gridmap.Map, a, b geometry.Point, accessible gridmap.Predicate) bool {
	ia, ib := m.IndexOf(a), m.IndexOf(b)
	if !accessible.Accessible(m.CellAt(ia)) || !accessible.Accessible(m.CellAt(ib)) {
		return false
	}
	if !memoizes(m, accessible) {
		return c.fill(m, ia, ib, accessible, false).found
	}
	ra, _ := c.IdentifyRegion(m, a, accessible)
	rb, _ := c.IdentifyRegion(m, b, accessible)

	return ra == rb
}

// memoizes reports whether accessible owns m's memo fields, binding an
// unbound map to it.
func memoizes(m *gridmap.Map, accessible gridmap.Predicate) bool {
	key, ok := gridmap.KeyOf(accessible)
	if !ok {
		return false
	}
	if _, bound := m.MemoKey(); bound {
		return m.Memoizes(accessible)
	}
	var owns bool
	m.WithLabelLock(func() { owns = m.BindMemo(key) })

	return owns
}

type fillResult struct {
	id    ID
	found bool // target reached
}

// fill floods from seed in FIFO order. A target ≥ 0 turns it into a
// reachability query that stops once target is reached and issues no ID.
// With record set it stores neighbor caches and labels; the caller then holds
// the label lock. Unrecorded fills leave the map untouched.
func (c *Colorer) fill(m *gridmap.Map, seed, target int, accessible gridmap.Predicate, record bool) fillResult {
	began := time.Now()

	seen := mapset.New[int]()
	seen.Put(seed)
	// work doubles as the visit queue and the list of cells to label.
	work := make([]int, 1, 64)
	work[0] = seed
	found := seed == target

	for next := 0; next < len(work) && !found; next++ {
		cur := work[next]
		var cache []int
		if record && c.opts.NeighborCache {
			cache = make([]int, 0, len(explore.Offsets))
		}
		explore.ExpandUncached(m, cur, accessible, func(n int) {
			if cache != nil {
				cache = append(cache, n)
			}
			if seen.Has(n) {
				return
			}
			seen.Put(n)
			work = append(work, n)
			if n == target {
				found = true
			}
		})
		if cache != nil {
			m.SetNeighbors(cur, cache)
		}
	}

	c.traversals.Add(1)
	if target >= 0 {
		return fillResult{found: found}
	}

	id := c.opts.IDs.Next()
	if record {
		// Labels go last: a published label vouches for a complete cache.
		for _, cell := range work {
			m.SetRegion(cell, id)
		}
	}

	if c.opts.Logger != nil {
		c.opts.Logger.Printf("region: identified region %d at %v: %d cells in %s",
			id, m.Coords(seed), len(work), time.Since(began))
	}

	return fillResult{id: id}
}
