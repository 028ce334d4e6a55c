package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/guardpatrol/grid"
	"github.com/katalvlaran/guardpatrol/internal/ctxlog"
	"github.com/katalvlaran/guardpatrol/obstruction"
	"github.com/katalvlaran/guardpatrol/patrol"
)

// App holds a run's streams, logger and configuration.
type App struct {
	inR    io.Reader
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp builds an App. Answers go to outW, logs to logW, and an input
// path of "-" reads inR.
func NewApp(inR io.Reader, outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")
	return &App{
		inR:    inR,
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

// Answers is the outcome of Solve.
type Answers struct {
	Trail  *patrol.Trail
	Search *obstruction.Result
}

// Visited is the part one answer.
func (a *Answers) Visited() int { return a.Trail.Len() }

// Loops is the part two answer.
func (a *Answers) Loops() int { return a.Search.Count() }

// Run loads the map, solves both parts and prints them.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "input", a.config.InputPath)

	g, err := a.load()
	if err != nil {
		return err
	}
	a.logger.Info("Map loaded.", "rows", g.Rows(), "cols", g.Cols())

	ans, err := Solve(ctx, g, a.config.Workers)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.outW, "part1: %d\npart2: %d\n", ans.Visited(), ans.Loops())
	if a.config.Render {
		if err := render(a.outW, g, ans); err != nil {
			return fmt.Errorf("failed to render map: %w", err)
		}
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// load reads and parses the configured input.
func (a *App) load() (*grid.Grid, error) {
	if a.config.InputPath == "-" {
		g, err := grid.Parse(a.inR)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stdin: %w", err)
		}
		return g, nil
	}
	f, err := os.Open(a.config.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	g, err := grid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", a.config.InputPath, err)
	}
	return g, nil
}

// Solve walks the guard and runs the obstruction search with the given
// pool size, logging through the context's logger.
func Solve(ctx context.Context, g *grid.Grid, workers int) (*Answers, error) {
	logger := ctxlog.FromContext(ctx)

	began := time.Now()
	tr, err := patrol.Simulate(g, patrol.Start(g))
	if err != nil {
		return nil, fmt.Errorf("patrol failed: %w", err)
	}
	logger.Debug("Patrol finished.", "visited", tr.Len(), "steps", tr.Steps(), "turns", tr.Turns(), "elapsed", time.Since(began))

	began = time.Now()
	res, err := obstruction.Search(g,
		obstruction.WithContext(ctx),
		obstruction.WithWorkers(workers),
		obstruction.WithOnProgress(progressLogger(logger)),
	)
	if err != nil {
		return nil, fmt.Errorf("obstruction search failed: %w", err)
	}
	logger.Info("Obstruction search finished.", "candidates", res.Candidates, "loops", res.Count(), "elapsed", time.Since(began))

	return &Answers{Trail: tr, Search: res}, nil
}

// progressLogger logs roughly every tenth of the search at debug level.
func progressLogger(logger *slog.Logger) func(done, total int) {
	return func(done, total int) {
		step := max(total/10, 1)
		if done%step == 0 || done == total {
			logger.Debug("Obstruction search progress.", "done", done, "total", total)
		}
	}
}

// render prints the map with the trail as X and loop obstructions as O.
func render(w io.Writer, g *grid.Grid, ans *Answers) error {
	loops := make(map[grid.Position]struct{}, len(ans.Search.Loops))
	for _, p := range ans.Search.Loops {
		loops[p] = struct{}{}
	}
	start, _ := g.Start()
	return g.Render(w, func(p grid.Position) byte {
		if _, ok := loops[p]; ok {
			return 'O'
		}
		if p != start && ans.Trail.Contains(p) {
			return 'X'
		}
		return 0
	})
}
