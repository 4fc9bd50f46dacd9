package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridkit/grid"
)

// BenchmarkIndexRoundTrip measures the index↔point conversions that sit in
// every traversal's hot loop on a 1000×1000 grid. Complexity: O(1) per op.
func BenchmarkIndexRoundTrip(b *testing.B) {
	const n = 1000
	g, err := grid.New(make([]int, n*n), n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx := i % g.Len()
		_ = g.PointToIndex(g.IndexToPoint(idx))
	}
}

// BenchmarkNeighbor measures a full 8-direction neighbor sweep from an
// interior cell.
func BenchmarkNeighbor(b *testing.B) {
	const n = 1000
	g, err := grid.New(make([]byte, n*n), n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	p := grid.Pt(n/2, n/2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, d := range grid.All {
			_, _ = g.Neighbor(p, d)
		}
	}
}

// BenchmarkClone measures the deep copy used by what-if scenario loops.
func BenchmarkClone(b *testing.B) {
	const n = 500
	g, err := grid.New(make([]byte, n*n), n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
