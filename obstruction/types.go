package obstruction

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/guardpatrol/grid"
)

// Sentinel errors for Search.
var (
	// ErrGridNil is returned if a nil grid is passed.
	ErrGridNil = errors.New("obstruction: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("obstruction: invalid option supplied")
)

// Result is the outcome of a Search.
type Result struct {
	// Candidates is the number of squares tested.
	Candidates int
	// Loops lists the loop-inducing squares, sorted row-major.
	Loops []grid.Position
}

// Count returns the number of loop-inducing squares.
func (r *Result) Count() int {
	return len(r.Loops)
}

// Option configures Search via functional arguments.
type Option func(*Options)

// Options holds parameters for Search.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Workers is the pool size. 0 means runtime.GOMAXPROCS(0).
	Workers int

	// FullScan tests every empty non-start square instead of the trail.
	FullScan bool

	// OnProgress, if non-nil, is called after each candidate with the
	// number finished and the total. It is called from worker goroutines.
	OnProgress func(done, total int)

	err error
}

// DefaultOptions returns Options with a background context, automatic pool
// size and trail-restricted candidates.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 0,
	}
}

// WithContext sets a context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the pool size.
//
//	n > 0:  exactly n workers (capped at the candidate count)
//	n == 0: runtime.GOMAXPROCS(0)
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithFullScan tests every empty square except the start.
func WithFullScan() Option {
	return func(o *Options) {
		o.FullScan = true
	}
}

// WithOnProgress installs a progress hook. It must be safe for concurrent use.
func WithOnProgress(fn func(done, total int)) Option {
	return func(o *Options) {
		o.OnProgress = fn
	}
}
