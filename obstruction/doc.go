// Package obstruction counts the squares where one extra wall traps the
// guard in an endless patrol.
//
// What
//
//   - Candidates: a wall only changes the walk if the guard would have
//     entered its square, so only squares on the unobstructed trail are
//     tested. The start square is excluded.
//   - Search: for each candidate, overlay a wall (grid.Obstructed) and run a
//     patrol.Detector from the unobstructed start state. Loop-inducing squares
//     are returned sorted row-major.
//   - WithFullScan tests every empty non-start square instead. It gives the
//     same answer and exists to check the restriction.
//
// Concurrency
//
//	Candidates are fed to a pool of workers run under an errgroup. Each
//	worker owns a Detector and builds its own overlays; the base Grid is
//	shared read-only. Each worker appends hits to its own partial slice and
//	the slices are merged after the pool drains, so no locking is needed.
//	Progress is an atomic counter.
//
// Complexity (P = candidates, S = R·C·4)
//
//   - Time:   O(P·S / workers)
//   - Memory: O(workers·S)
//
// Errors
//
//   - ErrGridNil          nil grid.
//   - ErrOptionViolation  negative worker count.
//   - patrol.ErrGuardLoops (wrapped) when the unobstructed map already traps the guard.
//   - ctx.Err() when the context given by WithContext is cancelled.
package obstruction
