package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular 2D collection of T stored as a flat row-major slice.
// Index i addresses the cell at point (i % lineLen, i / lineLen).
// Construct with New, Fill or FromText; the zero value is not usable.
type Grid[T any] struct {
	cells   []T
	lineLen int
}

// New builds a Grid from a flat row-major cell slice and a row length.
// The slice is copied, so later mutation of cells does not affect the grid.
// Returns ErrEmptyGrid if cells is empty or lineLen is not positive,
// ErrNonRectangular if len(cells) is not a multiple of lineLen.
func New[T any](cells []T, lineLen int) (*Grid[T], error) {
	if len(cells) == 0 || lineLen <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(cells)%lineLen != 0 {
		return nil, ErrNonRectangular
	}
	owned := make([]T, len(cells))
	copy(owned, cells)

	return &Grid[T]{cells: owned, lineLen: lineLen}, nil
}

// Fill builds a width×height grid with every cell set to v.
// Returns ErrEmptyGrid unless both dimensions are positive.
func Fill[T any](width, height int, v T) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = v
	}

	return &Grid[T]{cells: cells, lineLen: width}, nil
}

// FromText builds a byte grid from newline-separated text. Leading and
// trailing whitespace on each line is trimmed; blank lines are skipped.
// Returns ErrEmptyGrid for empty input, ErrNonRectangular if line lengths
// differ.
func FromText(s string) (*Grid[byte], error) {
	var cells []byte
	lineLen := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if lineLen == 0 {
			lineLen = len(line)
		} else if len(line) != lineLen {
			return nil, ErrNonRectangular
		}
		cells = append(cells, line...)
	}
	if lineLen == 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid[byte]{cells: cells, lineLen: lineLen}, nil
}

// Width returns the row length.
func (g *Grid[T]) Width() int { return g.lineLen }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return len(g.cells) / g.lineLen }

// Len returns the total cell count, Width()*Height().
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether p lies inside the rectangle. Any negative
// coordinate is out of bounds.
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.lineLen && p.Y >= 0 && p.Y < g.Height()
}

// PointToIndex maps p to its row-major linear index, p.Y*Width() + p.X.
// Panics if p is out of bounds: callers must bounds-check first via
// InBounds or Neighbor.
func (g *Grid[T]) PointToIndex(p Point) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: point %s out of bounds for %d×%d grid", p, g.Width(), g.Height()))
	}
	return p.Y*g.lineLen + p.X
}

// IndexToPoint maps a linear index back to its point,
// (i % Width(), i / Width()). Iterating indices 0..Len() therefore visits
// the grid row by row, left to right. Panics if i is outside [0, Len()).
func (g *Grid[T]) IndexToPoint(i int) Point {
	if i < 0 || i >= len(g.cells) {
		panic(fmt.Sprintf("grid: index %d out of range [0,%d)", i, len(g.cells)))
	}
	return Point{X: i % g.lineLen, Y: i / g.lineLen}
}

// Neighbor returns the point one unit from p in direction d and true,
// or the zero Point and false when that step leaves the rectangle.
// The false result is how every grid walk terminates at the edge.
func (g *Grid[T]) Neighbor(p Point, d Direction) (Point, bool) {
	next := p.Move(d)
	if !g.InBounds(next) {
		return Point{}, false
	}
	return next, true
}

// At returns the element at p. Panics if p is out of bounds.
func (g *Grid[T]) At(p Point) T {
	return g.cells[g.PointToIndex(p)]
}

// Set stores v at p. Panics if p is out of bounds.
func (g *Grid[T]) Set(p Point, v T) {
	g.cells[g.PointToIndex(p)] = v
}

// AtIndex returns the element at linear index i.
func (g *Grid[T]) AtIndex(i int) T { return g.cells[i] }

// SetIndex stores v at linear index i.
func (g *Grid[T]) SetIndex(i int, v T) { g.cells[i] = v }

// Clone returns a deep copy. Mutating the clone never affects the original;
// what-if scenarios must always mutate an owned clone.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)

	return &Grid[T]{cells: cells, lineLen: g.lineLen}
}

// ForEach calls fn for every cell in row-major order.
func (g *Grid[T]) ForEach(fn func(p Point, v T)) {
	for i, v := range g.cells {
		fn(g.IndexToPoint(i), v)
	}
}

// Find returns the first point (in row-major order) whose cell equals v,
// or false if no cell matches.
func Find[T comparable](g *Grid[T], v T) (Point, bool) {
	for i, c := range g.cells {
		if c == v {
			return g.IndexToPoint(i), true
		}
	}
	return Point{}, false
}

// FindAll returns every point whose cell equals v, in row-major order.
func FindAll[T comparable](g *Grid[T], v T) []Point {
	var pts []Point
	for i, c := range g.cells {
		if c == v {
			pts = append(pts, g.IndexToPoint(i))
		}
	}
	return pts
}
