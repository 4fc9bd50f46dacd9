// Package bfs provides breadth-first search over a grid.Grid, returning
// unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	p     grid.Point
	depth int
}

// walker encapsulates mutable BFS state for one run.
type walker[T any] struct {
	g     *grid.Grid[T]
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Distances are step counts; the edge of the
// grid and cells failing the passable predicate bound the search.
//
// Returns ErrNilGrid, ErrStartOutOfBounds or ErrStartBlocked for invalid
// input, ErrOptionViolation for bad options, a context error on
// cancellation, or any wrapped OnVisit hook error.
//
// Time: O(W×H×d), Memory: O(W×H).
func BFS[T any](g *grid.Grid[T], start grid.Point, opts ...Option) (*Result, error) {
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
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartOutOfBounds, start)
	}
	if !o.Passable(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartBlocked, start)
	}

	w := &walker[T]{
		g:     g,
		opts:  o,
		queue: make([]queueItem, 0, g.Len()),
		res: &Result{
			Dist:   map[grid.Point]int{start: 0},
			Parent: make(map[grid.Point]grid.Point),
			start:  start,
		},
	}
	w.queue = append(w.queue, queueItem{p: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per cell)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.p)
		if err := w.opts.OnVisit(item.p, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %s: %w", item.p, err)
		}
		w.expand(item)
	}
	return nil
}

// expand enqueues every unseen, passable, unfiltered neighbor of item.
func (w *walker[T]) expand(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, d := range w.opts.Dirs {
		n, ok := w.g.Neighbor(item.p, d)
		if !ok {
			continue // fell off the edge
		}
		if _, seen := w.res.Dist[n]; seen {
			continue
		}
		if !w.opts.Passable(n) || !w.opts.FilterStep(item.p, n) {
			continue
		}
		w.res.Dist[n] = nextDepth
		w.res.Parent[n] = item.p
		w.queue = append(w.queue, queueItem{p: n, depth: nextDepth})
	}
}
