// Package scan defines options and error definitions for directional
// sequence scanning over a grid.Grid.
package scan

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors for scanning.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("scan: grid is nil")

	// ErrEmptyTarget is returned when the target sequence has no elements.
	ErrEmptyTarget = errors.New("scan: target sequence is empty")

	// ErrBadArm is returned when a cross arm is not of odd length ≥ 3.
	ErrBadArm = errors.New("scan: cross arm must have odd length of at least 3")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("scan: invalid option supplied")
)

// Option configures scanning via functional arguments.
type Option func(*Options)

// Options holds parameters for Count.
type Options struct {
	// Dirs is the set of ray directions to scan. Defaults to grid.All:
	// a word may read in any of the 8 directions.
	Dirs []grid.Direction

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options scanning all 8 directions.
func DefaultOptions() Options {
	return Options{Dirs: grid.All}
}

// WithDirections restricts scanning to the given ray directions.
// The slice must be non-empty.
func WithDirections(dirs []grid.Direction) Option {
	return func(o *Options) {
		if len(dirs) == 0 {
			o.err = fmt.Errorf("%w: empty direction set", ErrOptionViolation)
			return
		}
		o.Dirs = dirs
	}
}
