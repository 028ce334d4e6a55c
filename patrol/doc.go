// Package patrol walks a guard across a grid.Terrain.
//
// What
//
//   - State is the guard's (position, heading) pair.
//   - Step is the pure transition: turn right in place when a wall is
//     ahead, leave when the grid edge is ahead, otherwise move one cell.
//   - Simulate applies Step from a start state until the guard leaves and
//     returns the Trail of distinct visited positions.
//   - Detector decides whether a start state ever repeats, i.e. whether the
//     guard patrols forever. It keys on position AND heading; a guard may
//     cross a square twice in different headings without looping.
//
// Bounds
//
//	A Terrain of R×C squares has at most R·C·4 states, so any walk longer
//	than that has repeated a state. Simulate reports ErrGuardLoops there;
//	Detector treats passing the bound without a verdict as a broken
//	invariant and returns ErrStateBound.
//
// Complexity (S = R·C·4)
//
//   - Step:     O(1)
//   - Simulate: O(S) time, O(R·C) memory
//   - Detector: O(S) time per run, O(S) memory once; reset is O(1)
//
// Errors
//
//   - ErrGuardLoops       Simulate on a map that never releases the guard.
//   - ErrStateBound       Detector walked past R·C·4 transitions.
//   - ErrTerrainMismatch  Detector sized for a smaller terrain.
//   - ErrStartOutside     start state is not inside the terrain.
package patrol
