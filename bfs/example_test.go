package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/bfs"
	"github.com/katalvlaran/gridkit/grid"
)

// ExampleBFS finds the shortest route through a small maze and prints its
// length and the route itself.
func ExampleBFS() {
	g, _ := grid.FromText(`
		S.#
		.##
		..E`)

	start, _ := grid.Find(g, byte('S'))
	end, _ := grid.Find(g, byte('E'))

	res, _ := bfs.BFS(g, start,
		bfs.WithPassable(func(p grid.Point) bool { return g.At(p) != '#' }))

	path, _ := res.PathTo(end)
	fmt.Println("steps:", res.Dist[end])
	fmt.Println("route:", path)

	// Output:
	// steps: 4
	// route: [(0,0) (0,1) (0,2) (1,2) (2,2)]
}
