package parallel

import (
	"context"
	"runtime"
	"sync"

	"github.com/katalvlaran/combsolve/backtrack"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Driver runs backtrack.Engine's root fan-out across workers. Its zero
// value is not meaningful; build one with NewDriver.
type Driver struct {
	engine  *backtrack.Engine
	workers int
	hook    ProgressHook
	log     *zap.Logger
}

// Option configures a Driver, following the pack's functional-option
// convention (matrix.Option, builder.BuilderOption).
type Option func(*Driver)

// WithWorkers overrides the worker count. n<=0 means "use
// runtime.GOMAXPROCS(0)". The effective count is further capped to
// the first group's size in Run, since that cap depends on the engine.
func WithWorkers(n int) Option {
	return func(d *Driver) { d.workers = n }
}

// WithProgressHook installs a ProgressHook. Passing nil is equivalent
// to omitting the option; Run functions correctly with no hook.
func WithProgressHook(hook ProgressHook) Option {
	return func(d *Driver) { d.hook = hook }
}

// WithLogger installs a *zap.Logger for Debug/Warn-level worker
// dispatch/cancellation logging. A nil logger is replaced with
// zap.NewNop() so Driver never needs a nil check at call sites.
func WithLogger(log *zap.Logger) Option {
	return func(d *Driver) {
		if log == nil {
			log = zap.NewNop()
		}
		d.log = log
	}
}

// NewDriver builds a Driver over engine with the given options.
func NewDriver(engine *backtrack.Engine, opts ...Option) *Driver {
	d := &Driver{engine: engine, log: zap.NewNop()}
	for _, o := range opts {
		o(d)
	}
	if d.workers <= 0 {
		d.workers = runtime.GOMAXPROCS(0)
	}

	return d
}

// Run splits the engine's first group across workers and aggregates
// their partial results. ctx cancellation (deadline or explicit Cancel)
// is observed at each worker's recursive entry via backtrack.CancelToken;
// on cancellation, Run discards partial results and returns ErrCancelled.
func (d *Driver) Run(ctx context.Context) (Aggregate, error) {
	total := d.engine.FirstGroupSize()
	if total == 0 {
		return Aggregate{Count: 0}, nil
	}

	workers := d.workers
	if workers > total {
		workers = total
	}
	d.log.Debug("dispatching parallel search",
		zap.Int("first_group_size", total),
		zap.Int("workers", workers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	token := &ctxCancelToken{ctx: gctx}

	var (
		mu   sync.Mutex
		agg  Aggregate
		done int
	)

	for i := 0; i < total; i++ {
		i := i
		g.Go(func() error {
			res, err := d.engine.RunSubtree(i, token)
			if err != nil {
				return err
			}

			mu.Lock()
			agg.Count += res.Count
			agg.CombinedMasks = append(agg.CombinedMasks, res.CombinedMasks...)
			agg.Indices = append(agg.Indices, res.Indices...)
			done++
			if d.hook != nil {
				d.hook(done, total)
			}
			mu.Unlock()

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		if ctx.Err() != nil {
			d.log.Warn("parallel search cancelled", zap.Error(ctx.Err()))

			return Aggregate{}, ErrCancelled
		}

		return Aggregate{}, ErrInternal
	}
	if ctx.Err() != nil {
		return Aggregate{}, ErrCancelled
	}

	return agg, nil
}

// ctxCancelToken adapts a context.Context to backtrack.CancelToken: a
// cheap, non-blocking ctx.Err() != nil check against the context's
// internally-synchronized done channel state.
type ctxCancelToken struct {
	ctx context.Context
}

// Cancelled reports whether the underlying context has been cancelled.
func (t *ctxCancelToken) Cancelled() bool {
	return t.ctx.Err() != nil
}
