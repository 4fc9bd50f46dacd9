// Package walk simulates a deterministic bounded walk: advance in a fixed
// heading until the cell ahead is blocked, then apply a turn policy;
// terminate on leaving the grid or on revisiting a (position, heading)
// state, which proves a loop.
package walk

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// walkState is the loop-detection key: a cell plus the heading it was
// occupied with. Positions alone do not prove loops — crossing a cell twice
// with different headings is a normal patrol.
type walkState struct {
	p grid.Point
	d grid.Direction
}

// Walk runs the simulation from start with the given cardinal heading.
//
// Each iteration looks one cell ahead: off the grid ends the walk with
// Exited; a blocked cell applies the turn policy in place; otherwise the
// walker advances one step. Revisiting a (position, heading) state ends the
// walk with Looped.
//
// Time: O(W×H×4) bounded by the state space, Memory: O(W×H).
func Walk[T any](g *grid.Grid[T], start grid.Point, heading grid.Direction, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !heading.Cardinal() {
		return nil, fmt.Errorf("%w: %s", ErrBadHeading, heading)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartOutOfBounds, start)
	}
	if o.Blocked(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartBlocked, start)
	}

	res := &Result{Visited: []grid.Point{start}}
	entered := map[grid.Point]struct{}{start: {}}
	seen := map[walkState]struct{}{{p: start, d: heading}: {}}
	pos := start

	for {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		next, ok := g.Neighbor(pos, heading)
		if !ok {
			res.Outcome = Exited
			return res, nil
		}
		if o.Blocked(next) {
			heading = o.Turn(heading)
		} else {
			pos = next
			res.Steps++
			if _, dup := entered[pos]; !dup {
				entered[pos] = struct{}{}
				res.Visited = append(res.Visited, pos)
			}
		}
		st := walkState{p: pos, d: heading}
		if _, dup := seen[st]; dup {
			res.Outcome = Looped
			return res, nil
		}
		seen[st] = struct{}{}
	}
}

// LoopingObstacles tries placing one obstacle on every open cell (except
// the start) of g and reports, in row-major order, the placements that trap
// the walker in a loop. Each trial runs on its own clone; g is never
// mutated. Cells are blocked exactly when they hold the obstacle value.
//
// Time: O((W×H)²) worst case — one full walk per open cell.
func LoopingObstacles[T comparable](g *grid.Grid[T], start grid.Point, heading grid.Direction, open, obstacle T, opts ...Option) ([]grid.Point, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	var looping []grid.Point
	for _, candidate := range grid.FindAll(g, open) {
		if candidate == start {
			continue
		}
		trial := g.Clone()
		trial.Set(candidate, obstacle)

		trialOpts := append([]Option{}, opts...)
		trialOpts = append(trialOpts, WithBlocked(func(p grid.Point) bool {
			return trial.At(p) == obstacle
		}))
		res, err := Walk(trial, start, heading, trialOpts...)
		if err != nil {
			return nil, err
		}
		if res.Outcome == Looped {
			looping = append(looping, candidate)
		}
	}

	return looping, nil
}
