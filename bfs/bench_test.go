package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridkit/bfs"
	"github.com/katalvlaran/gridkit/grid"
)

// BenchmarkBFS measures a full-field search on a 1000×1000 grid with ~20%
// random walls. Complexity: O(W×H×d).
func BenchmarkBFS(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	cells := make([]bool, n*n)
	for i := range cells {
		cells[i] = rng.Intn(5) != 0
	}
	cells[0] = true
	g, err := grid.New(cells, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	passable := func(p grid.Point) bool { return g.At(p) }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = bfs.BFS(g, grid.Pt(0, 0), bfs.WithPassable(passable)); err != nil {
			b.Fatal(err)
		}
	}
}
