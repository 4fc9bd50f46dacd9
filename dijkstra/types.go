// Package dijkstra defines core types and configuration options for
// cheapest-path search over a grid.Grid.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGrid indicates a nil grid pointer was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrStartOutOfBounds indicates the start point lies outside the grid.
	ErrStartOutOfBounds = errors.New("dijkstra: start point out of bounds")

	// ErrGoalOutOfBounds indicates the goal point lies outside the grid.
	ErrGoalOutOfBounds = errors.New("dijkstra: goal point out of bounds")

	// ErrStartBlocked indicates the start point fails the passable predicate.
	ErrStartBlocked = errors.New("dijkstra: start point is not passable")

	// ErrNegativeCost indicates the step-cost function returned a negative value.
	ErrNegativeCost = errors.New("dijkstra: negative step cost")

	// ErrNoPath indicates the goal is unreachable within MaxCost.
	ErrNoPath = errors.New("dijkstra: no path to goal")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Option configures Dijkstra via functional arguments. An invalid option is
// recorded internally and surfaced as ErrOptionViolation at call time.
type Option func(*Options)

// Options holds tunable parameters for the search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Dirs is the move set. Defaults to grid.Cardinals.
	Dirs []grid.Direction

	// Passable reports whether a cell may be entered; failing cells are walls.
	Passable func(p grid.Point) bool

	// StepCost prices the move from → to. Defaults to a constant 1.
	// Must never return a negative value (ErrNegativeCost).
	StepCost func(from, to grid.Point) int64

	// TurnCost, when > 0, adds search state: each move in a direction other
	// than the current heading costs TurnCost extra. This is how "steps are
	// cheap, turns are expensive" mazes are modeled.
	TurnCost int64

	// Heading is the initial facing, used only when TurnCost > 0.
	Heading grid.Direction

	// MaxCost bounds exploration: states costing more are never expanded.
	MaxCost int64

	// ReturnPath requests reconstruction of one cheapest path.
	ReturnPath bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, cardinal moves,
// everything passable, unit step cost, no turn cost, heading Right, no cost
// cap, and no path reconstruction.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Dirs:     grid.Cardinals,
		Passable: func(grid.Point) bool { return true },
		StepCost: func(_, _ grid.Point) int64 { return 1 },
		TurnCost: 0,
		Heading:  grid.Right,
		MaxCost:  math.MaxInt64,
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

// WithDirections sets the move set. The slice must be non-empty.
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

// WithStepCost sets the per-move pricing function.
func WithStepCost(fn func(from, to grid.Point) int64) Option {
	return func(o *Options) {
		if fn != nil {
			o.StepCost = fn
		}
	}
}

// WithTurnCost charges c for every move whose direction differs from the
// current heading, and makes (point, heading) the search state.
//
//	c > 0:  turns cost c
//	c == 0: explicit free turns (heading not tracked)
//	c < 0:  invalid option → ErrOptionViolation
func WithTurnCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: TurnCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.TurnCost = c
	}
}

// WithHeading sets the initial facing for turn-cost searches.
func WithHeading(d grid.Direction) Option {
	return func(o *Options) {
		o.Heading = d
	}
}

// WithMaxCost skips states costing more than c.
//
//	c >= 0: cap exploration at c
//	c < 0:  invalid option → ErrOptionViolation
func WithMaxCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithReturnPath requests one cheapest path in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}
