package gridmap

import (
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
)

// Sentinel errors for gridmap operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrUnknownGlyph indicates a rune that the legend does not define.
	ErrUnknownGlyph = errors.New("gridmap: glyph not in legend")
	// ErrBadWeight indicates a movement weight that is not strictly positive.
	ErrBadWeight = errors.New("gridmap: weight must be positive")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridmap: coordinate out of bounds")
)

// DefaultWeight is the movement weight of a freshly created cell.
const DefaultWeight = 1.3

// Cell is one grid position.
//
// Blocking and Weight are terrain state owned by the caller. The region label
// and neighbor cache are memo fields owned by the region colorer; they are
// reset by Map.ResetCaches.
type Cell struct {
	Blocking bool
	Weight   float64

	region    atomic.Uint64
	neighbors []int // nil = not cached
}

// Region returns the memoized region label, 0 when unset.
func (c *Cell) Region() uint64 {
	return c.region.Load()
}

// Predicate decides whether a mover may occupy a cell.
type Predicate interface {
	Accessible(c *Cell) bool
}

// Keyed is a Predicate whose verdicts may be memoized on a Map. Two predicates
// reporting the same Key must agree on every cell.
type Keyed interface {
	Predicate
	Key() string
}

// PredicateFunc adapts an ordinary function to a Predicate. It carries no key,
// so nothing computed under it is memoized.
type PredicateFunc func(c *Cell) bool

// Accessible calls f(c).
func (f PredicateFunc) Accessible(c *Cell) bool {
	return f(c)
}

// KeyOf returns the memo key of p, if it has one.
func KeyOf(p Predicate) (string, bool) {
	k, ok := p.(Keyed)
	if !ok {
		return "", false
	}

	return k.Key(), true
}

type named struct {
	key string
	fn  func(c *Cell) bool
}

func (n named) Accessible(c *Cell) bool { return n.fn(c) }
func (n named) Key() string             { return n.key }

// Named returns a Keyed predicate backed by fn. Callers guarantee that fn
// answers identically to any other predicate sharing key.
func Named(key string, fn func(c *Cell) bool) Keyed {
	return named{key: key, fn: fn}
}

type passable struct{}

func (passable) Accessible(c *Cell) bool { return !c.Blocking }
func (passable) Key() string             { return "passable" }

// Passable is the default Predicate: every non-blocking cell is accessible.
var Passable Keyed = passable{}

type maxWeight struct {
	max float64
	key string
}

func (w maxWeight) Accessible(c *Cell) bool { return !c.Blocking && c.Weight <= w.max }
func (w maxWeight) Key() string             { return w.key }

// MaxWeight returns a Predicate that admits non-blocking cells whose weight
// does not exceed max, e.g. a wheeled mover that refuses swamp.
func MaxWeight(max float64) Keyed {
	return maxWeight{max: max, key: "max-weight:" + strconv.FormatFloat(max, 'g', -1, 64)}
}

// Glyph describes the cell produced by one rune in FromRows.
// A zero Weight means "use the map's default weight".
type Glyph struct {
	Blocking bool
	Weight   float64
}

// Legend maps runes to Glyphs for FromRows.
type Legend map[rune]Glyph

// DefaultLegend returns the legend used when none is configured:
//
//	'.'  open, default weight
//	'X' '#'  blocking
//	','  fast terrain, weight 0.7
//	'~'  slow terrain, weight 2.0
func DefaultLegend() Legend {
	return Legend{
		'.': {},
		'X': {Blocking: true},
		'#': {Blocking: true},
		',': {Weight: 0.7},
		'~': {Weight: 2.0},
	}
}

// Options configures Map construction.
type Options struct {
	DefaultWeight float64 // weight of cells created without an explicit weight
	Legend        Legend  // glyph table for FromRows
}

// Option is a functional option for New and FromRows.
type Option func(*Options)

// WithDefaultWeight overrides DefaultWeight for new cells.
// Panics with ErrBadWeight if w ≤ 0.
func WithDefaultWeight(w float64) Option {
	return func(o *Options) {
		if w <= 0 {
			panic(ErrBadWeight.Error())
		}
		o.DefaultWeight = w
	}
}

// WithLegend replaces the glyph table used by FromRows.
func WithLegend(l Legend) Option {
	return func(o *Options) {
		o.Legend = l
	}
}

// DefaultOptions returns DefaultWeight and DefaultLegend().
func DefaultOptions() Options {
	return Options{
		DefaultWeight: DefaultWeight,
		Legend:        DefaultLegend(),
	}
}

// Map is a rectangular grid of Cells in row-major order.
// Dimensions are fixed at construction.
type Map struct {
	width, height int
	cells         []Cell

	labelMu sync.Mutex              // serializes region colorers
	memoKey atomic.Pointer[string] // key of the predicate owning the memo; nil = unbound
}
