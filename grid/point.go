package grid

import "fmt"

// Point is an immutable 2D integer coordinate. X grows rightward, Y grows
// downward (row-major reading order). Points compare and hash by value, so
// they are usable directly as map keys.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q, i.e. the offset vector
// from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Move returns the point one unit from p in direction d, without any bounds
// checking. Use Grid.Neighbor when the result must stay inside a grid.
func (p Point) Move(d Direction) Point {
	return p.Add(d.Offset())
}

// String returns "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
