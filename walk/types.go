// Package walk defines options, results, and error definitions for bounded
// walk simulation over a grid.Grid.
package walk

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors for walk simulation.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("walk: grid is nil")

	// ErrStartOutOfBounds is returned when the start point lies outside the grid.
	ErrStartOutOfBounds = errors.New("walk: start point out of bounds")

	// ErrStartBlocked is returned when the start cell itself is blocked.
	ErrStartBlocked = errors.New("walk: start point is blocked")

	// ErrBadHeading is returned for a diagonal initial heading; turn
	// policies are defined on the 4 cardinal directions.
	ErrBadHeading = errors.New("walk: heading must be cardinal")
)

// Outcome states how a walk ended.
type Outcome int

const (
	// Exited means the walker stepped off the edge of the grid.
	Exited Outcome = iota
	// Looped means the walker revisited a (position, heading) state.
	Looped
)

// String returns "Exited" or "Looped".
func (o Outcome) String() string {
	if o == Looped {
		return "Looped"
	}
	return "Exited"
}

// Option configures walk behavior via functional arguments.
type Option func(*Options)

// Options holds parameters for Walk.
type Options struct {
	// Ctx allows cancellation of long simulations.
	Ctx context.Context

	// Blocked reports whether the walker may not enter a cell.
	// Defaults to nothing blocked.
	Blocked func(p grid.Point) bool

	// Turn maps the current heading to a new one when the cell ahead is
	// blocked. Defaults to a 90° right turn.
	Turn func(d grid.Direction) grid.Direction
}

// DefaultOptions returns Options with background context, no blocked cells,
// and the turn-right policy.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Blocked: func(grid.Point) bool { return false },
		Turn:    grid.Direction.RotateRight,
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

// WithBlocked marks cells for which fn is true as impassable.
func WithBlocked(fn func(p grid.Point) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Blocked = fn
		}
	}
}

// WithTurn replaces the turn policy applied when the cell ahead is blocked.
func WithTurn(fn func(d grid.Direction) grid.Direction) Option {
	return func(o *Options) {
		if fn != nil {
			o.Turn = fn
		}
	}
}

// Result holds the outcome of a walk:
//   - Outcome: Exited or Looped.
//   - Visited: distinct cells entered, in first-visit order (start first).
//   - Steps: total forward moves taken.
type Result struct {
	Outcome Outcome
	Visited []grid.Point
	Steps   int
}
