package obstruction_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/guardpatrol/grid"
	"github.com/katalvlaran/guardpatrol/obstruction"
	"github.com/katalvlaran/guardpatrol/patrol"
)

const sample = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

var sampleLoops = []grid.Position{
	{Row: 6, Col: 3}, {Row: 7, Col: 6}, {Row: 7, Col: 7},
	{Row: 8, Col: 1}, {Row: 8, Col: 3}, {Row: 9, Col: 7},
}

func mustParse(t testing.TB, s string) *grid.Grid {
	t.Helper()
	g, err := grid.ParseString(s)
	require.NoError(t, err)
	return g
}

// TestSearch_Sample checks the six canonical loop squares.
func TestSearch_Sample(t *testing.T) {
	g := mustParse(t, sample)
	res, err := obstruction.Search(g)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Count())
	assert.Equal(t, sampleLoops, res.Loops)
	assert.Equal(t, 40, res.Candidates, "41 trail squares minus the start")

	n, err := obstruction.Count(g)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

// TestSearch_WorkersAgree compares a single worker against wider pools.
func TestSearch_WorkersAgree(t *testing.T) {
	g := mustParse(t, sample)
	want, err := obstruction.Search(g, obstruction.WithWorkers(1))
	require.NoError(t, err)
	for _, w := range []int{0, 2, 7, 100} {
		got, err := obstruction.Search(g, obstruction.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, want.Loops, got.Loops, "workers=%d", w)
	}
}

// TestSearch_FullScanAgrees checks that restricting candidates to the trail
// loses no loop square.
func TestSearch_FullScanAgrees(t *testing.T) {
	g := mustParse(t, sample)
	full, err := obstruction.Search(g, obstruction.WithFullScan())
	require.NoError(t, err)
	assert.Equal(t, sampleLoops, full.Loops)
	assert.Greater(t, full.Candidates, 40)
}

// TestRestrictionSoundness walls every square off the trail and verifies the
// guard's walk is unchanged.
func TestRestrictionSoundness(t *testing.T) {
	g := mustParse(t, sample)
	start := patrol.Start(g)
	base, err := patrol.Simulate(g, start)
	require.NoError(t, err)

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := grid.Position{Row: r, Col: c}
			if base.Contains(p) || g.IsWall(p) {
				continue
			}
			tr, err := patrol.Simulate(g.Obstruct(p), start)
			require.NoError(t, err, "wall at %v", p)
			if diff := cmp.Diff(base.Positions(), tr.Positions()); diff != "" {
				t.Errorf("wall at %v changed the trail (-base +walled):\n%s", p, diff)
			}
		}
	}
}

// TestCandidates excludes the start square and keeps trail order.
func TestCandidates(t *testing.T) {
	g := mustParse(t, ".#..\n...#\n.^..\n..#.\n")
	start := patrol.Start(g)
	tr, err := patrol.Simulate(g, start)
	require.NoError(t, err)
	got := obstruction.Candidates(tr, start.Pos)
	assert.Equal(t, []grid.Position{
		{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 2, Col: 0},
	}, got)
}

// TestSearch_NoCandidates covers a guard that leaves immediately.
func TestSearch_NoCandidates(t *testing.T) {
	g := mustParse(t, ".^.\n...\n")
	res, err := obstruction.Search(g)
	require.NoError(t, err)
	assert.Zero(t, res.Count())
	assert.Zero(t, res.Candidates)
}

// TestSearch_Progress counts hook calls.
func TestSearch_Progress(t *testing.T) {
	g := mustParse(t, sample)
	var calls, last atomic.Int64
	res, err := obstruction.Search(g, obstruction.WithWorkers(4), obstruction.WithOnProgress(func(done, total int) {
		calls.Add(1)
		if int64(done) > last.Load() {
			last.Store(int64(done))
		}
		assert.Equal(t, 40, total)
	}))
	require.NoError(t, err)
	assert.Equal(t, int64(res.Candidates), calls.Load())
	assert.Equal(t, int64(res.Candidates), last.Load())
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	_, err := obstruction.Search(nil)
	assert.ErrorIs(t, err, obstruction.ErrGridNil)

	g := mustParse(t, sample)
	_, err = obstruction.Search(g, obstruction.WithWorkers(-1))
	assert.ErrorIs(t, err, obstruction.ErrOptionViolation)

	trapped := mustParse(t, ".#...\n....#\n.^...\n#....\n...#.\n")
	_, err = obstruction.Search(trapped)
	assert.ErrorIs(t, err, patrol.ErrGuardLoops)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = obstruction.Search(g, obstruction.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
