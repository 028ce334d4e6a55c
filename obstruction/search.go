package obstruction

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/guardpatrol/grid"
	"github.com/katalvlaran/guardpatrol/patrol"
)

// Candidates returns the trail squares in first-visit order, without start.
func Candidates(tr *patrol.Trail, start grid.Position) []grid.Position {
	out := make([]grid.Position, 0, tr.Len())
	for _, p := range tr.Positions() {
		if p != start {
			out = append(out, p)
		}
	}
	return out
}

// allEmpty lists every empty square of g except start, row-major.
func allEmpty(g *grid.Grid, start grid.Position) []grid.Position {
	out := make([]grid.Position, 0, g.Rows()*g.Cols())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := grid.Position{Row: r, Col: c}
			if p != start && !g.IsWall(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// Count is Search with default options, returning only the tally.
func Count(g *grid.Grid) (int, error) {
	res, err := Search(g)
	if err != nil {
		return 0, err
	}
	return res.Count(), nil
}

// Search tests every candidate square and returns those where an extra wall
// makes the guard loop.
func Search(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start := patrol.Start(g)
	var cands []grid.Position
	if o.FullScan {
		cands = allEmpty(g, start.Pos)
	} else {
		tr, err := patrol.Simulate(g, start)
		if err != nil {
			return nil, fmt.Errorf("obstruction: unobstructed walk: %w", err)
		}
		cands = Candidates(tr, start.Pos)
	}

	loops, err := run(o, g, start, cands)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(loops, func(a, b grid.Position) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return &Result{Candidates: len(cands), Loops: loops}, nil
}

// run fans cands out to the worker pool and merges per-worker hits.
func run(o Options, g *grid.Grid, start patrol.State, cands []grid.Position) ([]grid.Position, error) {
	total := len(cands)
	if total == 0 {
		return nil, o.Ctx.Err()
	}
	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, total)

	eg, ctx := errgroup.WithContext(o.Ctx)
	feed := make(chan grid.Position)
	partials := make([][]grid.Position, workers)
	var done atomic.Int64

	eg.Go(func() error {
		defer close(feed)
		for _, p := range cands {
			select {
			case feed <- p:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			return work(ctx, g, start, feed, &partials[w], func() {
				n := done.Add(1)
				if o.OnProgress != nil {
					o.OnProgress(int(n), total)
				}
			})
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var loops []grid.Position
	for _, part := range partials {
		loops = append(loops, part...)
	}
	return loops, nil
}

// work drains feed with its own Detector, appending loop squares to hits.
func work(ctx context.Context, g *grid.Grid, start patrol.State, feed <-chan grid.Position, hits *[]grid.Position, tick func()) error {
	d := patrol.NewDetector(g.Rows(), g.Cols())
	for p := range feed {
		if err := ctx.Err(); err != nil {
			return err
		}
		loops, err := d.Loops(g.Obstruct(p), start)
		if err != nil {
			return fmt.Errorf("obstruction: candidate %v: %w", p, err)
		}
		if loops {
			*hits = append(*hits, p)
		}
		tick()
	}
	return nil
}
