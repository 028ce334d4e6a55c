package patrol

import (
	"fmt"

	"github.com/katalvlaran/guardpatrol/grid"
)

// Trail is the outcome of a Simulate run: the distinct positions the guard
// occupied, in first-visit order, plus transition counters.
type Trail struct {
	order      []grid.Position
	seen       []bool
	rows, cols int
	steps      int
	turns      int
}

func newTrail(rows, cols int) *Trail {
	return &Trail{
		order: make([]grid.Position, 0, rows+cols),
		seen:  make([]bool, rows*cols),
		rows:  rows,
		cols:  cols,
	}
}

func (tr *Trail) visit(p grid.Position) {
	i := p.Row*tr.cols + p.Col
	if tr.seen[i] {
		return
	}
	tr.seen[i] = true
	tr.order = append(tr.order, p)
}

// Len returns the number of distinct visited positions.
func (tr *Trail) Len() int { return len(tr.order) }

// Contains reports whether the guard occupied p.
func (tr *Trail) Contains(p grid.Position) bool {
	if p.Row < 0 || p.Row >= tr.rows || p.Col < 0 || p.Col >= tr.cols {
		return false
	}
	return tr.seen[p.Row*tr.cols+p.Col]
}

// Positions returns a copy of the visited positions in first-visit order.
func (tr *Trail) Positions() []grid.Position {
	out := make([]grid.Position, len(tr.order))
	copy(out, tr.order)
	return out
}

// Steps returns the number of transitions taken, turns included.
func (tr *Trail) Steps() int { return tr.steps }

// Turns returns how many transitions were right turns in place.
func (tr *Trail) Turns() int { return tr.turns }

// Simulate walks the guard from start until it leaves t and returns the
// visited positions, start included.
//
// Returns ErrStartOutside if start is off the terrain and ErrGuardLoops
// if the guard is still inside after R·C·4 transitions.
// Complexity: O(R·C·4) time, O(R·C) memory.
func Simulate(t grid.Terrain, start State, opts ...Option) (*Trail, error) {
	if !t.InBounds(start.Pos) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutside, start.Pos)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tr := newTrail(t.Rows(), t.Cols())
	tr.visit(start.Pos)
	bound := stateBound(t)

	s := start
	for {
		next, ok := Step(t, s)
		if !ok {
			return tr, nil
		}
		// bound+1 states seen means one of them repeated
		if tr.steps >= bound {
			return nil, fmt.Errorf("%w: still inside after %d transitions from %v", ErrGuardLoops, tr.steps, start)
		}
		tr.steps++
		if next.Pos == s.Pos {
			tr.turns++
		} else {
			tr.visit(next.Pos)
		}
		if o.OnStep != nil {
			o.OnStep(next, len(tr.order))
		}
		s = next
	}
}
