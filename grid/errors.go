package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no cells or a non-positive row length.
	ErrEmptyGrid = errors.New("grid: grid must have at least one cell and a positive row length")
	// ErrNonRectangular indicates the cell count is not a whole number of rows.
	ErrNonRectangular = errors.New("grid: cell count must be a multiple of the row length")
)
