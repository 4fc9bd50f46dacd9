// Package bfs defines tunable options and error definitions for
// breadth-first search over a grid.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("bfs: grid is nil")

	// ErrStartOutOfBounds is returned when the start point lies outside the grid.
	ErrStartOutOfBounds = errors.New("bfs: start point out of bounds")

	// ErrStartBlocked is returned when the start point fails the passable predicate.
	ErrStartBlocked = errors.New("bfs: start point is not passable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by Result.PathTo for points the search never reached.
	ErrUnreachable = errors.New("bfs: destination not reached")
)

// Option configures BFS behavior via functional arguments. If an Option is
// invalid (nil directions, negative depth), it is recorded internally and
// surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Dirs is the neighbor expansion order. Defaults to grid.Cardinals;
	// the fixed order makes visit order reproducible.
	Dirs []grid.Direction

	// Passable reports whether a cell may be entered at all.
	// Cells failing it are treated like walls.
	Passable func(p grid.Point) bool

	// FilterStep can veto an individual step from → to, e.g. "height must
	// increase by exactly one". Called only for passable, in-bounds targets.
	FilterStep func(from, to grid.Point) bool

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(p grid.Point, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// cardinal directions, everything passable, no step filter, no depth limit,
// no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Dirs:       grid.Cardinals,
		Passable:   func(grid.Point) bool { return true },
		FilterStep: func(_, _ grid.Point) bool { return true },
		MaxDepth:   0,
		OnVisit:    func(grid.Point, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirections sets the neighbor expansion order, e.g. grid.All for
// 8-directional search. The slice must be non-empty.
func WithDirections(dirs []grid.Direction) Option {
	return func(o *Options) {
		if len(dirs) == 0 {
			o.err = fmt.Errorf("%w: empty direction set", ErrOptionViolation)
			return
		}
		o.Dirs = dirs
	}
}

// WithPassable marks cells failing fn as walls.
func WithPassable(fn func(p grid.Point) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Passable = fn
		}
	}
}

// WithFilterStep skips individual steps for which fn(from, to) is false.
func WithFilterStep(fn func(from, to grid.Point) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterStep = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback to run on each visit; returning an error
// from the callback stops the BFS.
func WithOnVisit(fn func(p grid.Point, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Dist: map from cell to its distance (in steps) from the start.
//   - Parent: map from cell to its predecessor in the BFS tree.
type Result struct {
	Order  []grid.Point
	Dist   map[grid.Point]int
	Parent map[grid.Point]grid.Point

	start grid.Point
}

// Reached reports whether the search visited p.
func (r *Result) Reached(p grid.Point) bool {
	_, ok := r.Dist[p]
	return ok
}

// PathTo reconstructs the path from the start cell to dest.
// Returns ErrUnreachable if dest was never reached.
func (r *Result) PathTo(dest grid.Point) ([]grid.Point, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, dest)
	}
	path := []grid.Point{dest}
	for cur := dest; cur != r.start; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
