package astar_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/geometry"
	"github.com/katalvlaran/gridpath/gridmap"
)

// BenchmarkSearch_Labeled measures corner-to-corner searches on a 256×256
// weighted map whose regions and neighbor caches are already memoized.
func BenchmarkSearch_Labeled(b *testing.B) {
	m := randomMap(b, 256, 256, 5, 6, true)
	m.CellAt(0).Blocking = false
	m.CellAt(m.Len() - 1).Blocking = false
	c := freshColorer()
	start, end := geometry.Pt(0, 0), geometry.Pt(255, 255)
	_ = astar.Search(m, start, end, gridmap.Passable, astar.WithColorer(c))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = astar.Search(m, start, end, gridmap.Passable, astar.WithColorer(c))
	}
}

// BenchmarkSearch_Disconnected measures the region short-circuit across a wall.
func BenchmarkSearch_Disconnected(b *testing.B) {
	m, err := gridmap.New(256, 256)
	if err != nil {
		b.Fatal(err)
	}
	for y := 0; y < 256; y++ {
		m.SetBlocking(128, y, true)
	}
	c := freshColorer()
	start, end := geometry.Pt(0, 0), geometry.Pt(255, 255)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = astar.Search(m, start, end, gridmap.Passable, astar.WithColorer(c))
	}
}
