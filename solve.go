package combsolve

import (
	"context"
	"errors"

	"github.com/katalvlaran/combsolve/backtrack"
	"github.com/katalvlaran/combsolve/bitset"
	"github.com/katalvlaran/combsolve/collapse"
	"github.com/katalvlaran/combsolve/parallel"
	"github.com/katalvlaran/combsolve/precombine"
)

// Solve is the dispatcher: it validates config, runs
// collapse → precombine → backtrack (sequentially or via parallel),
// and packs the result into the Solution shape config.ReturnType
// demands. The facade performs no computation of its own.
func Solve(problem Problem, config SolverConfig) (Solution, error) {
	mode, err := resultMode(config)
	if err != nil {
		return Solution{}, err
	}

	rawGroups := make([]collapse.Group, len(problem.groups))
	for i, g := range problem.groups {
		rawGroups[i] = collapse.Group(g)
	}
	collapsed := collapse.Collapse(rawGroups, config.Symmetry)

	precombined := precombine.Groups(collapsed)
	groupMasks := make([][]bitset.Mask128, len(precombined))
	for i, p := range precombined {
		groupMasks[i] = p.Unions
	}

	var engineOpts []backtrack.EngineOption
	if enabled, ok := config.Heuristics["bit_lookup"].(bool); ok && enabled {
		engineOpts = append(engineOpts, backtrack.WithBitLookupAccel(true))
	}
	engine := backtrack.NewEngine(groupMasks, mode, engineOpts...)

	ctx := context.Background()
	var cancel context.CancelFunc
	if config.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	var agg parallel.Aggregate
	if config.Parallel && engine.NumGroups() > 0 {
		driver := parallel.NewDriver(engine,
			parallel.WithWorkers(config.Workers),
			parallel.WithProgressHook(config.ProgressHook),
			parallel.WithLogger(config.Logger),
		)
		agg, err = driver.Run(ctx)
		if err != nil {
			return Solution{}, translateParallelErr(err)
		}
	} else {
		res, rerr := engine.Run(&ctxCancelToken{ctx: ctx})
		if rerr != nil {
			return Solution{}, translateBacktrackErr(rerr)
		}
		agg = parallel.Aggregate{Count: res.Count, CombinedMasks: res.CombinedMasks, Indices: res.Indices}
	}

	return buildSolution(config.ReturnType, agg), nil
}

func resultMode(config SolverConfig) (backtrack.Mode, error) {
	if config.Method != Backtracking {
		return 0, ErrInvalidConfig
	}
	switch config.ReturnType {
	case ReturnCount:
		return backtrack.ModeCount, nil
	case ReturnCombinedMasks:
		return backtrack.ModeCombinedMasks, nil
	case ReturnIndices:
		return backtrack.ModeIndices, nil
	default:
		return 0, ErrInvalidConfig
	}
}

func buildSolution(rt ReturnType, agg parallel.Aggregate) Solution {
	sol := Solution{Count: agg.Count}
	switch rt {
	case ReturnCombinedMasks:
		sol.CombinedMasks = agg.CombinedMasks
	case ReturnIndices:
		sol.Indices = agg.Indices
	}

	return sol
}

func translateParallelErr(err error) error {
	switch {
	case errors.Is(err, parallel.ErrCancelled):
		return ErrCancelled
	case errors.Is(err, parallel.ErrInternal):
		return ErrInternal
	default:
		return ErrInternal
	}
}

func translateBacktrackErr(err error) error {
	switch {
	case errors.Is(err, backtrack.ErrCancelled):
		return ErrCancelled
	case errors.Is(err, backtrack.ErrInvariant):
		return ErrInternal
	default:
		return ErrInternal
	}
}

// ctxCancelToken adapts a context.Context to backtrack.CancelToken for
// the sequential (Parallel=false) path, so a configured Timeout is
// honored even without ParallelDriver: when Parallel is false, a
// single worker processes the whole first group, but the cancellation
// contract still applies to that one worker.
type ctxCancelToken struct {
	ctx context.Context
}

// Cancelled reports whether the underlying context has been cancelled.
func (t *ctxCancelToken) Cancelled() bool {
	return t.ctx.Err() != nil
}
