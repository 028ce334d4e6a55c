package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidCell indicates a byte that is not '.', '#' or a guard heading.
	ErrInvalidCell = errors.New("grid: invalid cell")
	// ErrNoGuard indicates the input carries no guard marker.
	ErrNoGuard = errors.New("grid: no guard marker")
	// ErrMultipleGuards indicates more than one guard marker.
	ErrMultipleGuards = errors.New("grid: multiple guard markers")
)

// Position is a (row, column) coordinate. Row 0 is the top line of input.
type Position struct {
	Row, Col int
}

// Add returns p moved by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String renders p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Less orders positions row-major.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Direction is a cardinal heading. Values are in clockwise order so that
// a right turn is (d+1) mod 4.
type Direction uint8

const (
	// Up heads toward row 0.
	Up Direction = iota
	// Right heads toward higher columns.
	Right
	// Down heads toward higher rows.
	Down
	// Left heads toward column 0.
	Left
)

// NumDirections is the size of the Direction enum.
const NumDirections = 4

var (
	deltas = [NumDirections][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	glyphs = [NumDirections]byte{'^', '>', 'v', '<'}
	names  = [NumDirections]string{"Up", "Right", "Down", "Left"}
)

// TurnRight returns d rotated 90° clockwise.
func (d Direction) TurnRight() Direction {
	return (d + 1) % NumDirections
}

// Delta returns the (dRow, dCol) unit step for d.
func (d Direction) Delta() (dr, dc int) {
	v := deltas[d%NumDirections]
	return v[0], v[1]
}

// Glyph returns the input byte that encodes d.
func (d Direction) Glyph() byte {
	return glyphs[d%NumDirections]
}

func (d Direction) String() string {
	if d >= NumDirections {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return names[d]
}

// ParseDirection maps a guard glyph to its Direction.
func ParseDirection(b byte) (Direction, bool) {
	for d, g := range glyphs {
		if g == b {
			return Direction(d), true
		}
	}
	return 0, false
}

// Cell is the content of a single grid square.
type Cell byte

const (
	// Empty is a walkable square.
	Empty Cell = '.'
	// Wall blocks the guard and makes it turn.
	Wall Cell = '#'
)

// Terrain is the read-only view a walker needs. *Grid and Obstructed
// implement it.
type Terrain interface {
	Rows() int
	Cols() int
	InBounds(p Position) bool
	IsWall(p Position) bool
}
