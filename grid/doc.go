// Package grid models the patrol map: a rectangular matrix of empty and
// wall cells with a single guard marker.
//
// What:
//
//   - Grid holds an immutable row-major copy of the parsed map together with
//     the guard's start Position and Direction.
//   - Terrain is the read-only surface a walker needs (bounds + walls).
//   - Obstructed overlays exactly one extra wall on a base Grid in O(1)
//     without touching the base.
//   - Direction is a closed clockwise enum (Up, Right, Down, Left) with a
//     table-driven TurnRight.
//
// Input format:
//
//	one line per row; '.' empty, '#' wall, one of '^' '>' 'v' '<' for the guard.
//
// Complexity:
//
//   - Parse:           O(R×C) time and memory.
//   - InBounds/IsWall: O(1).
//   - WithWall:        O(R×C) (deep copy); Obstruct: O(1).
//
// Errors:
//
//   - ErrEmptyGrid:      no rows or an empty first row.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrInvalidCell:    a byte outside the input alphabet.
//   - ErrNoGuard:        no guard marker.
//   - ErrMultipleGuards: more than one guard marker.
package grid
