package explore_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/explore"
	"github.com/katalvlaran/gridpath/geometry"
	"github.com/katalvlaran/gridpath/gridmap"
)

func collect(m *gridmap.Map, p geometry.Point, pred gridmap.Predicate) []geometry.Point {
	var out []geometry.Point
	explore.Expand(m, m.IndexOf(p), pred, func(c int) {
		out = append(out, m.Coords(c))
	})

	return out
}

// TestExpand_OpenInterior checks all 8 neighbors in N..NW order.
func TestExpand_OpenInterior(t *testing.T) {
	m, err := gridmap.New(3, 3)
	require.NoError(t, err)

	got := collect(m, geometry.Pt(1, 1), gridmap.Passable)
	want := []geometry.Point{
		geometry.Pt(1, 0), geometry.Pt(2, 0), geometry.Pt(2, 1), geometry.Pt(2, 2),
		geometry.Pt(1, 2), geometry.Pt(0, 2), geometry.Pt(0, 1), geometry.Pt(0, 0),
	}
	assert.Equal(t, want, got)
}

// TestExpand_Corner checks that out-of-bounds offsets are skipped.
func TestExpand_Corner(t *testing.T) {
	m, err := gridmap.New(3, 3)
	require.NoError(t, err)

	got := collect(m, geometry.Pt(0, 0), gridmap.Passable)
	assert.Equal(t, []geometry.Point{geometry.Pt(1, 0), geometry.Pt(1, 1), geometry.Pt(0, 1)}, got)
}

// TestExpand_NoCornerCutting: with (1,0) and (0,1) blocked, the diagonal
// (0,0)→(1,1) is never admitted.
//
//	. X .
//	X . .
//	. . .
func TestExpand_NoCornerCutting(t *testing.T) {
	m, err := gridmap.FromRows([]string{
		".X.",
		"X..",
		"...",
	})
	require.NoError(t, err)

	assert.Empty(t, collect(m, geometry.Pt(0, 0), gridmap.Passable))
	assert.NotContains(t, collect(m, geometry.Pt(1, 1), gridmap.Passable), geometry.Pt(0, 0))
}

// TestExpand_SingleFlankBlocks: one blocked flank is enough to forbid a diagonal.
//
//	. X .
//	X . X
//	. . .
func TestExpand_SingleFlankBlocks(t *testing.T) {
	m, err := gridmap.FromRows([]string{
		".X.",
		"X.X",
		"...",
	})
	require.NoError(t, err)

	assert.Equal(t, []geometry.Point{geometry.Pt(1, 2)}, collect(m, geometry.Pt(1, 1), gridmap.Passable))
}

// TestExpand_UsesPredicate: a mover-specific predicate treats the slow cell as
// a wall, which also forbids diagonals flanked by it.
func TestExpand_UsesPredicate(t *testing.T) {
	m, err := gridmap.FromRows([]string{
		"..",
		"~.",
	})
	require.NoError(t, err)

	assert.Equal(t, []geometry.Point{geometry.Pt(1, 0), geometry.Pt(1, 1), geometry.Pt(0, 1)},
		collect(m, geometry.Pt(0, 0), gridmap.Passable))
	assert.Equal(t, []geometry.Point{geometry.Pt(1, 0)},
		collect(m, geometry.Pt(0, 0), gridmap.MaxWeight(1.5)))
}

// TestExpand_CacheEquivalence populates every cache and label by hand under
// Passable's key and asserts that the cached and uncached paths admit the same
// candidates.
func TestExpand_CacheEquivalence(t *testing.T) {
	m := cachedRandomMap(t)
	key, _ := gridmap.KeyOf(gridmap.Passable)
	sameKey := gridmap.Named(key, func(*gridmap.Cell) bool {
		t.Fatalf("cached expansion consulted the predicate")
		return false
	})

	for i := 0; i < m.Len(); i++ {
		var got []int
		explore.Expand(m, i, sameKey, func(c int) { got = append(got, c) })
		want := explore.Neighbors(m, i, gridmap.Passable)
		if len(want) == 0 {
			assert.Empty(t, got, "cell %d", i)
			continue
		}
		assert.Equal(t, want, got, "cell %d", i)
	}
}

// TestExpand_CacheBelongsToItsPredicate: a cache recorded under Passable is
// never replayed for a predicate with another key or with no key.
func TestExpand_CacheBelongsToItsPredicate(t *testing.T) {
	m := cachedRandomMap(t)
	for i := 0; i < m.Len(); i++ {
		m.CellAt(i).Weight = []float64{0.7, 1.3, 2.0}[i%3]
	}

	strict := gridmap.MaxWeight(1.5)
	unkeyed := gridmap.PredicateFunc(func(c *gridmap.Cell) bool { return !c.Blocking && c.Weight < 1 })
	for _, pred := range []gridmap.Predicate{strict, unkeyed} {
		for i := 0; i < m.Len(); i++ {
			got := []int{}
			explore.Expand(m, i, pred, func(c int) { got = append(got, c) })
			assert.Equal(t, explore.Neighbors(m, i, pred), got, "cell %d", i)
		}
	}
}

// cachedRandomMap returns a random map whose labels and caches are bound to
// Passable.
func cachedRandomMap(t *testing.T) *gridmap.Map {
	t.Helper()
	const w, h = 24, 16
	m, err := gridmap.New(w, h)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(7))
	for i := 0; i < m.Len(); i++ {
		m.CellAt(i).Blocking = r.Intn(4) == 0
	}

	key, _ := gridmap.KeyOf(gridmap.Passable)
	m.WithLabelLock(func() {
		require.True(t, m.BindMemo(key))
		for i := 0; i < m.Len(); i++ {
			m.SetNeighbors(i, explore.Neighbors(m, i, gridmap.Passable))
			m.SetRegion(i, 1)
		}
	})

	return m
}

func TestNeighbors_NeverNil(t *testing.T) {
	m, err := gridmap.FromRows([]string{".X", "X."})
	require.NoError(t, err)

	n := explore.Neighbors(m, 0, gridmap.Passable)
	assert.NotNil(t, n)
	assert.Empty(t, n)
}
