package patrol

import "github.com/katalvlaran/guardpatrol/grid"

// Step returns the state after one transition from s on t, or false when
// the guard walks off the edge. A turn does not move the guard.
// Step never mutates t.
func Step(t grid.Terrain, s State) (State, bool) {
	dr, dc := s.Dir.Delta()
	ahead := s.Pos.Add(dr, dc)
	switch {
	case !t.InBounds(ahead):
		return State{}, false
	case t.IsWall(ahead):
		return State{Pos: s.Pos, Dir: s.Dir.TurnRight()}, true
	default:
		return State{Pos: ahead, Dir: s.Dir}, true
	}
}
