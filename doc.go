// Package guardpatrol simulates a guard patrolling a walled grid and finds
// the squares where one extra wall would trap it in an endless loop.
//
// The guard walks straight ahead until a wall is in front of it, turns 90°
// clockwise in place, and keeps going until it steps off the map.
//
// Under the hood, everything is organized under three packages:
//
//	grid/        - Grid, Position, Direction, parsing, bounds and one-wall overlays
//	patrol/      - guard State, Step, Simulate (visited trail) and the loop Detector
//	obstruction/ - candidate restriction and the parallel loop-obstruction Search
//
// plus the guardpatrol command under cmd/ with its wiring in internal/.
//
// Quick example:
//
//	g, _ := grid.ParseString(input)
//	tr, _ := patrol.Simulate(g, patrol.Start(g))  // tr.Len() squares visited
//	res, _ := obstruction.Search(g)               // res.Count() loop squares
//
//	go run ./cmd/guardpatrol -render input.txt
package guardpatrol
