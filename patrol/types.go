package patrol

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/guardpatrol/grid"
)

var (
	// ErrGuardLoops is returned by Simulate when the guard never leaves.
	ErrGuardLoops = errors.New("patrol: guard never leaves the grid")

	// ErrStateBound signals a walk longer than the terrain's state count
	// without a repeated state. It cannot happen with a correct Step.
	ErrStateBound = errors.New("patrol: state bound exceeded")

	// ErrTerrainMismatch is returned when a Detector is used on a terrain
	// larger than the one it was sized for.
	ErrTerrainMismatch = errors.New("patrol: terrain does not fit detector")

	// ErrStartOutside is returned when the start position is off the terrain.
	ErrStartOutside = errors.New("patrol: start position outside terrain")
)

// State is the guard's position and heading. Two walks reaching the same
// square facing the same way are in the same State.
type State struct {
	Pos grid.Position
	Dir grid.Direction
}

func (s State) String() string {
	return fmt.Sprintf("%v %v", s.Pos, s.Dir)
}

// Start returns the initial guard state of g.
func Start(g *grid.Grid) State {
	p, d := g.Start()
	return State{Pos: p, Dir: d}
}

// stateBound is the number of distinct states on t.
func stateBound(t grid.Terrain) int {
	return t.Rows() * t.Cols() * grid.NumDirections
}

// Option configures Simulate.
type Option func(*Options)

// Options holds Simulate hooks.
type Options struct {
	// OnStep, if non-nil, runs after every transition with the new state
	// and the number of distinct positions visited so far.
	OnStep func(s State, visited int)
}

// DefaultOptions returns Options with no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithOnStep installs fn as the per-transition hook.
func WithOnStep(fn func(s State, visited int)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}
