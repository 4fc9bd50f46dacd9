package regions

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors for region discovery.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("regions: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("regions: invalid option supplied")
)

// Connectivity selects neighbor adjacency: orthogonal only (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses the 4 cardinal directions.
	Conn4 Connectivity = iota
	// Conn8 adds the 4 diagonals.
	Conn8
)

// Option configures region discovery via functional arguments. An invalid
// option is recorded internally and surfaced as ErrOptionViolation when
// Regions is invoked.
type Option func(*Options)

// Options holds parameters for Regions.
type Options struct {
	// Conn chooses 4- or 8-directional adjacency.
	Conn Connectivity

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Conn4 adjacency.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// WithConnectivity selects Conn4 or Conn8 adjacency.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		if c != Conn4 && c != Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, c)
			return
		}
		o.Conn = c
	}
}

// directions returns the neighbor expansion order for the configured
// connectivity.
func (o Options) directions() []grid.Direction {
	if o.Conn == Conn8 {
		return grid.All
	}
	return grid.Cardinals
}

// Region is one maximal connected run of equal-valued cells.
type Region struct {
	cells []grid.Point
	set   map[grid.Point]struct{}
}

// Cells returns the region's points in BFS discovery order.
// The returned slice is owned by the Region; callers must not mutate it.
func (r *Region) Cells() []grid.Point { return r.cells }

// Area returns the number of cells in the region.
func (r *Region) Area() int { return len(r.cells) }

// Contains reports whether p belongs to the region.
func (r *Region) Contains(p grid.Point) bool {
	_, ok := r.set[p]
	return ok
}
