package astar_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/gridpath/explore"
	"github.com/katalvlaran/gridpath/geometry"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/region"
)

func mustRows(t testing.TB, rows ...string) *gridmap.Map {
	t.Helper()
	m, err := gridmap.FromRows(rows)
	require.NoError(t, err)

	return m
}

// randomMap blocks roughly one cell in blockOneIn. With weighted set, open
// cells draw their weight from {0.7, 1.3, 2.0}.
func randomMap(t testing.TB, w, h int, seed int64, blockOneIn int, weighted bool) *gridmap.Map {
	t.Helper()
	m, err := gridmap.New(w, h)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(seed))
	weights := []float64{0.7, 1.3, 2.0}
	for i := 0; i < m.Len(); i++ {
		c := m.CellAt(i)
		c.Blocking = r.Intn(blockOneIn) == 0
		if weighted {
			c.Weight = weights[r.Intn(len(weights))]
		}
	}

	return m
}

// freshColorer isolates a test from the process-wide ID counter.
func freshColorer() *region.Colorer {
	return region.NewColorer(region.WithIDSource(region.NewCounter()))
}

func edgeCost(m *gridmap.Map, a, b geometry.Point) float64 {
	return geometry.Euclidean(a, b) * (m.At(a).Weight + m.At(b).Weight) / 2
}

// pathCost sums edge costs along p in either order.
func pathCost(m *gridmap.Map, p []geometry.Point) float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		total += edgeCost(m, p[i-1], p[i])
	}

	return total
}

// requireLegal asserts every step of p is a single accessible king move that
// does not cut a corner.
func requireLegal(t *testing.T, m *gridmap.Map, p []geometry.Point, accessible gridmap.Predicate) {
	t.Helper()
	for i, q := range p {
		require.True(t, accessible.Accessible(m.At(q)), "step %d %v is inaccessible", i, q)
		if i == 0 {
			continue
		}
		prev := p[i-1]
		require.Equal(t, 1, geometry.Chebyshev(prev, q), "step %v→%v is not adjacent", prev, q)
		if prev.IsDiagonalStep(q) {
			require.True(t, accessible.Accessible(m.Cell(q.X, prev.Y)), "step %v→%v cuts a corner", prev, q)
			require.True(t, accessible.Accessible(m.Cell(prev.X, q.Y)), "step %v→%v cuts a corner", prev, q)
		}
	}
}

// optimalCost runs gonum's Dijkstra over the same legal-move graph and cost
// model. Unreachable goals report +Inf.
func optimalCost(m *gridmap.Map, start, end geometry.Point, accessible gridmap.Predicate) float64 {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < m.Len(); i++ {
		if accessible.Accessible(m.CellAt(i)) {
			g.AddNode(simple.Node(i))
		}
	}
	for i := 0; i < m.Len(); i++ {
		if !accessible.Accessible(m.CellAt(i)) {
			continue
		}
		explore.ExpandUncached(m, i, accessible, func(n int) {
			if n < i {
				return
			}
			w := edgeCost(m, m.Coords(i), m.Coords(n))
			g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(i), simple.Node(n), w))
		})
	}
	shortest := path.DijkstraFrom(simple.Node(m.IndexOf(start)), g)

	return shortest.WeightTo(int64(m.IndexOf(end)))
}
