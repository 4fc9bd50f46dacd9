package grid

import "fmt"

// Direction is one of the 8 fixed unit movement vectors on a grid.
// The zero value is Up. Values are ordered clockwise starting from Up,
// so Opposite and the 90° rotations are simple modular arithmetic.
type Direction uint8

const (
	Up Direction = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft

	numDirections = 8
)

// Cardinals lists the 4 orthogonal directions in clockwise order.
// Traversals expand neighbors in this order, making visit order reproducible.
var Cardinals = []Direction{Up, Right, Down, Left}

// Diagonals lists the 4 diagonal directions in clockwise order.
var Diagonals = []Direction{UpRight, DownRight, DownLeft, UpLeft}

// All lists all 8 directions in clockwise order starting from Up.
var All = []Direction{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}

// offsets[d] is the unit (dx,dy) vector for direction d.
// Y grows downward: Up is (0,-1).
var offsets = [numDirections]Point{
	Up:        {X: 0, Y: -1},
	UpRight:   {X: 1, Y: -1},
	Right:     {X: 1, Y: 0},
	DownRight: {X: 1, Y: 1},
	Down:      {X: 0, Y: 1},
	DownLeft:  {X: -1, Y: 1},
	Left:      {X: -1, Y: 0},
	UpLeft:    {X: -1, Y: -1},
}

var directionNames = [numDirections]string{
	Up:        "Up",
	UpRight:   "UpRight",
	Right:     "Right",
	DownRight: "DownRight",
	Down:      "Down",
	DownLeft:  "DownLeft",
	Left:      "Left",
	UpLeft:    "UpLeft",
}

// Offset returns the unit (dx,dy) vector for d.
func (d Direction) Offset() Point {
	return offsets[d%numDirections]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + numDirections/2) % numDirections
}

// Cardinal reports whether d is one of the 4 orthogonal directions.
func (d Direction) Cardinal() bool {
	return d%2 == 0
}

// RotateRight returns the cardinal direction 90° clockwise from d.
// Panics if d is diagonal: turn policies are defined on cardinals only.
func (d Direction) RotateRight() Direction {
	if !d.Cardinal() {
		panic(fmt.Sprintf("grid: RotateRight on diagonal direction %s", d))
	}
	return (d + 2) % numDirections
}

// RotateLeft returns the cardinal direction 90° counter-clockwise from d.
// Panics if d is diagonal.
func (d Direction) RotateLeft() Direction {
	if !d.Cardinal() {
		panic(fmt.Sprintf("grid: RotateLeft on diagonal direction %s", d))
	}
	return (d + numDirections - 2) % numDirections
}

// String returns the direction name, e.g. "DownLeft".
func (d Direction) String() string {
	if d >= numDirections {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}
