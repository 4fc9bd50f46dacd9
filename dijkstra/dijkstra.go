// Package dijkstra implements cheapest-path search over a grid.Grid with
// non-negative move costs and optional turn penalties, using a min-heap
// priority queue with a lazy decrease-key strategy: duplicates are pushed
// and stale entries skipped on extraction.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// state is one search node. When turn costs are disabled every state uses
// the same heading, collapsing the state space to plain points.
type state struct {
	p grid.Point
	d grid.Direction
}

// node is a priority-queue entry: a state with its tentative cost.
type node struct {
	st   state
	cost int64
}

// minHeap orders nodes by ascending cost.
type minHeap []node

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(node)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// Dijkstra computes the cheapest cost from start to goal in g.
// Moves are priced by StepCost (default 1); with WithTurnCost the search
// state becomes (point, heading) and direction changes cost extra.
//
// Returns the cheapest cost, one cheapest path (start through goal) when
// WithReturnPath is set and nil otherwise, and an error.
//
// Validation order: ErrNilGrid, ErrOptionViolation, ErrStartOutOfBounds,
// ErrGoalOutOfBounds, ErrStartBlocked. During the search a negative value
// from StepCost aborts with ErrNegativeCost; an exhausted frontier (or a
// goal beyond MaxCost) yields ErrNoPath.
//
// Time: O(W×H×d × log(W×H×d)), Memory: O(W×H×d) — d is the move-set size
// times 4 headings when turn costs apply.
func Dijkstra[T any](g *grid.Grid[T], start, goal grid.Point, opts ...Option) (int64, []grid.Point, error) {
	if g == nil {
		return 0, nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, nil, o.err
	}
	if !g.InBounds(start) {
		return 0, nil, fmt.Errorf("%w: %s", ErrStartOutOfBounds, start)
	}
	if !g.InBounds(goal) {
		return 0, nil, fmt.Errorf("%w: %s", ErrGoalOutOfBounds, goal)
	}
	if !o.Passable(start) {
		return 0, nil, fmt.Errorf("%w: %s", ErrStartBlocked, start)
	}

	// Without turn costs every state shares one heading, so distinct points
	// are the whole state space.
	heading := o.Heading
	if o.TurnCost == 0 {
		heading = grid.Up
	}
	src := state{p: start, d: heading}

	dist := map[state]int64{src: 0}
	prev := make(map[state]state)
	pq := &minHeap{{st: src, cost: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		select {
		case <-o.Ctx.Done():
			return 0, nil, o.Ctx.Err()
		default:
		}

		cur := heap.Pop(pq).(node)
		if cur.cost > dist[cur.st] {
			continue // stale lazy-decrease-key entry
		}
		if cur.st.p == goal {
			return cur.cost, buildPath(prev, src, cur.st, o.ReturnPath), nil
		}

		for _, d := range o.Dirs {
			next, ok := g.Neighbor(cur.st.p, d)
			if !ok || !o.Passable(next) {
				continue
			}
			step := o.StepCost(cur.st.p, next)
			if step < 0 {
				return 0, nil, fmt.Errorf("%w: %d for %s→%s", ErrNegativeCost, step, cur.st.p, next)
			}
			if o.TurnCost > 0 && d != cur.st.d {
				step += o.TurnCost
			}
			nextState := state{p: next, d: d}
			if o.TurnCost == 0 {
				nextState.d = heading
			}
			nextCost := cur.cost + step
			if nextCost > o.MaxCost {
				continue
			}
			if best, seen := dist[nextState]; !seen || nextCost < best {
				dist[nextState] = nextCost
				prev[nextState] = cur.st
				heap.Push(pq, node{st: nextState, cost: nextCost})
			}
		}
	}

	return 0, nil, fmt.Errorf("%w: %s", ErrNoPath, goal)
}

// buildPath reconstructs start→goal from the predecessor map, or returns
// nil when the caller did not ask for a path.
func buildPath(prev map[state]state, src, dst state, want bool) []grid.Point {
	if !want {
		return nil
	}
	var path []grid.Point
	for cur := dst; ; {
		path = append(path, cur.p)
		if cur == src {
			break
		}
		cur = prev[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
