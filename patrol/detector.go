package patrol

import (
	"fmt"

	"github.com/katalvlaran/guardpatrol/grid"
)

// Detector decides whether a walk repeats a State. It owns a dense table
// of R·C·4 generation stamps; a state is seen in the current run when its
// stamp equals epoch, so starting a new run is a counter bump.
//
// A Detector is not safe for concurrent use. Give each goroutine its own.
type Detector struct {
	rows, cols int
	stamps     []uint32
	epoch      uint32
}

// NewDetector returns a Detector for terrains up to rows×cols.
func NewDetector(rows, cols int) *Detector {
	return &Detector{
		rows:   rows,
		cols:   cols,
		stamps: make([]uint32, rows*cols*grid.NumDirections),
	}
}

// DetectLoop is a one-shot Loops on a fresh Detector sized for t.
func DetectLoop(t grid.Terrain, start State) (bool, error) {
	return NewDetector(t.Rows(), t.Cols()).Loops(t, start)
}

// Loops walks from start on t and reports true as soon as a State repeats,
// false when the guard leaves t.
//
// Returns ErrTerrainMismatch if t is larger than the Detector,
// ErrStartOutside if start is off t, and ErrStateBound if the walk outgrows
// the state space without a verdict.
func (d *Detector) Loops(t grid.Terrain, start State) (bool, error) {
	if t.Rows() > d.rows || t.Cols() > d.cols {
		return false, fmt.Errorf("%w: %dx%d terrain, %dx%d detector",
			ErrTerrainMismatch, t.Rows(), t.Cols(), d.rows, d.cols)
	}
	if !t.InBounds(start.Pos) {
		return false, fmt.Errorf("%w: %v", ErrStartOutside, start.Pos)
	}
	d.reset()
	d.mark(start)

	bound := stateBound(t)
	s := start
	for steps := 0; steps < bound; steps++ {
		next, ok := Step(t, s)
		if !ok {
			return false, nil
		}
		if d.seen(next) {
			return true, nil
		}
		d.mark(next)
		s = next
	}
	return false, fmt.Errorf("%w: %d transitions from %v", ErrStateBound, bound, start)
}

func (d *Detector) reset() {
	d.epoch++
	if d.epoch == 0 {
		clear(d.stamps)
		d.epoch = 1
	}
}

func (d *Detector) index(s State) int {
	return (s.Pos.Row*d.cols+s.Pos.Col)*grid.NumDirections + int(s.Dir)
}

func (d *Detector) seen(s State) bool {
	return d.stamps[d.index(s)] == d.epoch
}

func (d *Detector) mark(s State) {
	d.stamps[d.index(s)] = d.epoch
}
