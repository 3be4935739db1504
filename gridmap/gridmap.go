package gridmap

import (
	"fmt"

	"github.com/katalvlaran/gridpath/geometry"
)

// New constructs a width×height Map of open cells at the configured default weight.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Map, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}

	m := &Map{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range m.cells {
		m.cells[i].Weight = cfg.DefaultWeight
	}

	return m, nil
}

// FromRows builds a Map from equal-length ASCII rows, one rune per cell,
// translated through the configured Legend (DefaultLegend unless WithLegend).
//
// Returns ErrEmptyGrid for no rows or empty rows, ErrNonRectangular for
// jagged input and ErrUnknownGlyph for a rune missing from the legend.
func FromRows(rows []string, opts ...Option) (*Map, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	// Validate shape first so no partially filled map escapes.
	w := len([]rune(rows[0]))
	for y, row := range rows {
		if n := len([]rune(row)); n != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, n, w)
		}
	}

	m, err := New(w, len(rows), opts...)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, r := range []rune(row) {
			g, ok := cfg.Legend[r]
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, r, x, y)
			}
			c := &m.cells[m.Index(x, y)]
			c.Blocking = g.Blocking
			if g.Weight > 0 {
				c.Weight = g.Weight
			}
		}
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// Len returns the number of cells.
func (m *Map) Len() int { return len(m.cells) }

// InBounds reports whether (x,y) lies within the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Contains reports whether p lies within the grid.
func (m *Map) Contains(p geometry.Point) bool {
	return m.InBounds(p.X, p.Y)
}

// Index maps (x,y) to its row-major cell index. It does not bound y; use
// InBounds first when the coordinate is untrusted.
func (m *Map) Index(x, y int) int {
	return geometry.Index(x, y, m.width)
}

// IndexOf maps p to its row-major cell index, panicking with ErrOutOfBounds
// when p is outside the grid.
func (m *Map) IndexOf(p geometry.Point) int {
	if !m.Contains(p) {
		panic(fmt.Sprintf("%s: %v", ErrOutOfBounds, p))
	}

	return geometry.Index(p.X, p.Y, m.width)
}

// Coords maps a cell index back to its Point.
func (m *Map) Coords(i int) geometry.Point {
	x, y := geometry.Coords(i, m.width)

	return geometry.Point{X: x, Y: y}
}

// Cell returns the cell at (x,y). Panics with ErrOutOfBounds outside the grid.
func (m *Map) Cell(x, y int) *Cell {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("%s: (%d,%d)", ErrOutOfBounds, x, y))
	}

	return &m.cells[y*m.width+x]
}

// At returns the cell at p. Panics with ErrOutOfBounds outside the grid.
func (m *Map) At(p geometry.Point) *Cell {
	return m.Cell(p.X, p.Y)
}

// CellAt returns the cell at row-major index i.
func (m *Map) CellAt(i int) *Cell {
	return &m.cells[i]
}

// SetBlocking changes the blocking flag of (x,y). Memo fields are untouched;
// call ResetCaches once the batch of edits is complete.
func (m *Map) SetBlocking(x, y int, blocking bool) {
	m.Cell(x, y).Blocking = blocking
}

// SetWeight changes the movement weight of (x,y).
// Returns ErrBadWeight if w ≤ 0. Memo fields are untouched.
func (m *Map) SetWeight(x, y int, w float64) error {
	if w <= 0 {
		return fmt.Errorf("%w: %v at (%d,%d)", ErrBadWeight, w, x, y)
	}
	m.Cell(x, y).Weight = w

	return nil
}

// Region returns the region label of cell i, 0 when unset.
func (m *Map) Region(i int) uint64 {
	return m.cells[i].region.Load()
}

// SetRegion publishes the region label of cell i. Any neighbor cache for the
// cell must be stored before its label.
func (m *Map) SetRegion(i int, id uint64) {
	m.cells[i].region.Store(id)
}

// Neighbors returns the cached admissible neighbors of cell i under p and
// whether a cache is present. The cache is trusted only once the cell has a
// region label and only when p owns the map's memo.
func (m *Map) Neighbors(i int, p Predicate) ([]int, bool) {
	if m.cells[i].region.Load() == 0 || !m.Memoizes(p) {
		return nil, false
	}
	n := m.cells[i].neighbors

	return n, n != nil
}

// MemoKey returns the key of the predicate that owns the region labels and
// neighbor caches, and false while the map is unbound.
func (m *Map) MemoKey() (string, bool) {
	k := m.memoKey.Load()
	if k == nil {
		return "", false
	}

	return *k, true
}

// Memoizes reports whether p owns the map's memo fields.
func (m *Map) Memoizes(p Predicate) bool {
	key, ok := KeyOf(p)
	if !ok {
		return false
	}
	bound := m.memoKey.Load()

	return bound != nil && *bound == key
}

// BindMemo binds an unbound map's memo fields to key and reports whether key
// owns them. Callers hold the label lock. The binding lasts until ResetCaches.
func (m *Map) BindMemo(key string) bool {
	if bound := m.memoKey.Load(); bound != nil {
		return *bound == key
	}
	m.memoKey.Store(&key)

	return true
}

// SetNeighbors stores the neighbor cache of cell i. Callers hold the label lock.
func (m *Map) SetNeighbors(i int, neighbors []int) {
	m.cells[i].neighbors = neighbors
}

// WithLabelLock runs fn while holding the map's labeling mutex.
func (m *Map) WithLabelLock(fn func()) {
	m.labelMu.Lock()
	defer m.labelMu.Unlock()
	fn()
}

// ResetCaches clears every region label and neighbor cache and unbinds the
// memo from its predicate.
// Complexity: O(W×H).
func (m *Map) ResetCaches() {
	m.WithLabelLock(func() {
		m.memoKey.Store(nil)
		for i := range m.cells {
			m.cells[i].region.Store(0)
			m.cells[i].neighbors = nil
		}
	})
}

// Labeled reports how many cells currently carry a region label.
func (m *Map) Labeled() int {
	n := 0
	for i := range m.cells {
		if m.cells[i].region.Load() != 0 {
			n++
		}
	}

	return n
}
