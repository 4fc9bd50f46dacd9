package regions

import (
	"github.com/katalvlaran/gridkit/grid"
)

// Regions partitions g into maximal connected regions of equal cell values
// under the configured adjacency. Every cell belongs to exactly one region.
// Regions appear in row-major order of their first cell; cells within a
// region in BFS discovery order.
//
// Time: O(W×H×d), Memory: O(W×H).
func Regions[T comparable](g *grid.Grid[T], opts ...Option) ([]*Region, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	dirs := o.directions()
	assigned := make([]bool, g.Len())
	var regs []*Region

	for i := 0; i < g.Len(); i++ {
		if assigned[i] {
			continue
		}
		start := g.IndexToPoint(i)
		value := g.AtIndex(i)
		assigned[i] = true

		r := &Region{
			cells: []grid.Point{start},
			set:   map[grid.Point]struct{}{start: {}},
		}
		queue := []grid.Point{start}
		for qi := 0; qi < len(queue); qi++ {
			p := queue[qi]
			for _, d := range dirs {
				n, ok := g.Neighbor(p, d)
				if !ok {
					continue
				}
				ni := g.PointToIndex(n)
				if assigned[ni] || g.AtIndex(ni) != value {
					continue
				}
				assigned[ni] = true
				r.cells = append(r.cells, n)
				r.set[n] = struct{}{}
				queue = append(queue, n)
			}
		}
		regs = append(regs, r)
	}

	return regs, nil
}

// Perimeter returns the number of cardinal cell borders on the region's
// boundary: for each cell, each of its 4 sides facing a cell outside the
// region (or outside the grid) counts once.
//
// Time: O(|region|).
func (r *Region) Perimeter() int {
	perimeter := 0
	for _, p := range r.cells {
		for _, d := range grid.Cardinals {
			if !r.Contains(p.Move(d)) {
				perimeter++
			}
		}
	}
	return perimeter
}

// corner arm pairs: one vertical, one horizontal direction each.
var cornerPairs = [4][2]grid.Direction{
	{grid.Up, grid.Left},
	{grid.Up, grid.Right},
	{grid.Down, grid.Left},
	{grid.Down, grid.Right},
}

// Sides returns the number of straight boundary segments of the region,
// computed as its corner count. An exterior corner is a cell whose two arm
// neighbors both lie outside the region; an interior corner has both arms
// inside but the diagonal between them outside.
//
// Time: O(|region|).
func (r *Region) Sides() int {
	corners := 0
	for _, p := range r.cells {
		for _, pair := range cornerPairs {
			arm1 := p.Move(pair[0])
			arm2 := p.Move(pair[1])
			in1, in2 := r.Contains(arm1), r.Contains(arm2)
			switch {
			case !in1 && !in2:
				corners++ // exterior corner
			case in1 && in2 && !r.Contains(arm1.Move(pair[1])):
				corners++ // interior corner
			}
		}
	}
	return corners
}
