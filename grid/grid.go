package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLine bounds a single input row read by Parse.
const maxLine = 1 << 20

// Grid is an immutable rectangular map. cells is row-major: index r*cols+c.
// The guard marker is not stored in cells; its square is Empty and the
// heading is kept in startDir.
type Grid struct {
	rows, cols int
	cells      []Cell
	start      Position
	startDir   Direction
}

// Parse reads one row per line from r.
// Trailing blank lines and carriage returns are ignored.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}
	return FromLines(lines)
}

// ParseString is Parse over an in-memory blob.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// FromLines builds a Grid from rows of text. It validates the shape and
// alphabet and requires exactly one guard marker.
// Complexity: O(R×C).
func FromLines(lines []string) (*Grid, error) {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(lines), len(lines[0])
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, 0, rows*cols),
	}
	guards := 0
	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), cols)
		}
		for c := 0; c < cols; c++ {
			b := line[c]
			switch Cell(b) {
			case Empty, Wall:
				g.cells = append(g.cells, Cell(b))
				continue
			}
			d, ok := ParseDirection(b)
			if !ok {
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrInvalidCell, b, r, c)
			}
			guards++
			if guards > 1 {
				return nil, fmt.Errorf("%w: second marker at (%d,%d)", ErrMultipleGuards, r, c)
			}
			g.start, g.startDir = Position{Row: r, Col: c}, d
			g.cells = append(g.cells, Empty)
		}
	}
	if guards == 0 {
		return nil, ErrNoGuard
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the guard's initial position and heading.
func (g *Grid) Start() (Position, Direction) {
	return g.start, g.startDir
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell at p. The second result is false when p is outside
// the grid.
func (g *Grid) At(p Position) (Cell, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[g.Index(p)], true
}

// IsWall reports whether p is an in-bounds wall.
func (g *Grid) IsWall(p Position) bool {
	c, ok := g.At(p)
	return ok && c == Wall
}

// Index maps p to its row-major index. p must be in bounds.
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Position.
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// WithWall returns a deep copy of g with a wall at p. The receiver is left
// untouched. An out-of-bounds p yields a plain copy.
// Complexity: O(R×C).
func (g *Grid) WithWall(p Position) *Grid {
	cp := *g
	cp.cells = make([]Cell, len(g.cells))
	copy(cp.cells, g.cells)
	if g.InBounds(p) {
		cp.cells[g.Index(p)] = Wall
	}
	return &cp
}

// Obstruct returns an O(1) overlay of g with one extra wall at p.
func (g *Grid) Obstruct(p Position) Obstructed {
	return Obstructed{base: g, wall: p}
}

// Render writes the grid to w, one row per line. mark may override the byte
// printed for a position; returning 0 keeps the default. The start cell
// defaults to its heading glyph.
func (g *Grid) Render(w io.Writer, mark func(Position) byte) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, g.cols+1)
	line[g.cols] = '\n'
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := Position{Row: r, Col: c}
			b := byte(g.cells[g.Index(p)])
			if p == g.start {
				b = g.startDir.Glyph()
			}
			if mark != nil {
				if m := mark(p); m != 0 {
					b = m
				}
			}
			line[c] = b
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String renders the grid without marks.
func (g *Grid) String() string {
	var sb strings.Builder
	_ = g.Render(&sb, nil)
	return sb.String()
}

// Obstructed is a Grid with exactly one extra wall. It shares the base
// Grid's cells read-only, so many overlays over one base may be used from
// different goroutines.
type Obstructed struct {
	base *Grid
	wall Position
}

// Rows returns the base grid's row count.
func (o Obstructed) Rows() int { return o.base.rows }

// Cols returns the base grid's column count.
func (o Obstructed) Cols() int { return o.base.cols }

// InBounds defers to the base grid.
func (o Obstructed) InBounds(p Position) bool { return o.base.InBounds(p) }

// IsWall reports the extra wall or any wall of the base grid.
func (o Obstructed) IsWall(p Position) bool {
	return (p == o.wall && o.base.InBounds(p)) || o.base.IsWall(p)
}

// Wall returns the position of the added wall.
func (o Obstructed) Wall() Position { return o.wall }
