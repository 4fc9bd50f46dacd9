// Package scan finds straight-line occurrences of a target sequence in a
// grid.Grid: word-search style rays in any of the 8 directions, plus
// X-shaped pairs of diagonal matches.
package scan

import (
	"github.com/katalvlaran/gridkit/grid"
)

// Match reports whether the cells start, start+d, start+2d, … spell target.
// A ray that falls off the grid before target is exhausted does not match;
// an out-of-bounds start never matches. Empty targets never match.
func Match[T comparable](g *grid.Grid[T], start grid.Point, d grid.Direction, target []T) bool {
	if len(target) == 0 || !g.InBounds(start) || g.At(start) != target[0] {
		return false
	}
	cur := start
	for _, want := range target[1:] {
		next, ok := g.Neighbor(cur, d)
		if !ok || g.At(next) != want {
			return false
		}
		cur = next
	}
	return true
}

// Count returns the number of straight-line occurrences of target in g,
// scanning every cell as a potential start along every configured direction
// (all 8 by default). Occurrences may overlap and share cells.
//
// Time: O(W×H×d×len(target)).
func Count[T comparable](g *grid.Grid[T], target []T, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if len(target) == 0 {
		return 0, ErrEmptyTarget
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	count := 0
	for i := 0; i < g.Len(); i++ {
		if g.AtIndex(i) != target[0] {
			continue // cheap pre-filter before ray casting
		}
		p := g.IndexToPoint(i)
		for _, d := range o.Dirs {
			if Match(g, p, d, target) {
				count++
			}
		}
	}

	return count, nil
}

// CountCross returns the number of X-shaped matches of arm: cells where
// both diagonals through the center spell arm forwards or backwards.
// arm must have odd length ≥ 3 (its middle element is the center).
//
// Time: O(W×H×len(arm)).
func CountCross[T comparable](g *grid.Grid[T], arm []T) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if len(arm) < 3 || len(arm)%2 == 0 {
		return 0, ErrBadArm
	}

	half := len(arm) / 2
	center := arm[half]
	reversed := make([]T, len(arm))
	for i, v := range arm {
		reversed[len(arm)-1-i] = v
	}

	// Each axis is read from its top end downward; half steps back from the
	// center along the opposite diagonal give the ray start.
	axes := []grid.Direction{grid.DownRight, grid.DownLeft}

	count := 0
	for i := 0; i < g.Len(); i++ {
		if g.AtIndex(i) != center {
			continue
		}
		p := g.IndexToPoint(i)
		matched := true
		for _, axis := range axes {
			start := p
			for s := 0; s < half; s++ {
				start = start.Move(axis.Opposite())
			}
			if !Match(g, start, axis, arm) && !Match(g, start, axis, reversed) {
				matched = false
				break
			}
		}
		if matched {
			count++
		}
	}

	return count, nil
}
