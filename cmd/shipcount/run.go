package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	combsolve "github.com/katalvlaran/combsolve"
	"github.com/katalvlaran/combsolve/battleship"
)

func run(ctx context.Context, cfg *runConfig, log *zap.Logger) error {
	board, err := battleship.NewBoard(cfg.Width, cfg.Height, cfg.Ships)
	if err != nil {
		return err
	}
	groups := board.GenerateGroups()
	problem := combsolve.FromGroups(groups)

	rt, err := parseReturnType(cfg.ReturnType)
	if err != nil {
		return err
	}

	opts := []combsolve.Option{
		combsolve.WithReturnType(rt),
		combsolve.WithSymmetry(cfg.Symmetry),
		combsolve.WithParallel(cfg.Parallel),
		combsolve.WithWorkers(cfg.Workers),
		combsolve.WithTimeout(cfg.Timeout),
		combsolve.WithLogger(log),
		combsolve.WithHeuristic("bit_lookup", cfg.BitLookup),
	}

	var shutdownMetrics func()
	if cfg.MetricsAddr != "" {
		metrics := newSearchMetrics()
		opts = append(opts, combsolve.WithProgressHook(metrics.hook()))
		shutdownMetrics = serve(ctx, cfg.MetricsAddr, log)
		defer shutdownMetrics()
	}

	solution, err := combsolve.Solve(problem, combsolve.NewConfig(opts...))
	if err != nil {
		return fmt.Errorf("shipcount: %w", err)
	}

	printSolution(rt, solution)

	return nil
}

func parseReturnType(s string) (combsolve.ReturnType, error) {
	switch s {
	case "count":
		return combsolve.ReturnCount, nil
	case "combined_masks":
		return combsolve.ReturnCombinedMasks, nil
	case "indices":
		return combsolve.ReturnIndices, nil
	default:
		return 0, fmt.Errorf("shipcount: unknown return type %q", s)
	}
}

func printSolution(rt combsolve.ReturnType, sol combsolve.Solution) {
	fmt.Printf("count: %d\n", sol.Count)
	switch rt {
	case combsolve.ReturnCombinedMasks:
		for _, m := range sol.CombinedMasks {
			fmt.Printf("  mask: hi=%064b lo=%064b\n", m.Hi, m.Lo)
		}
	case combsolve.ReturnIndices:
		for _, idx := range sol.Indices {
			fmt.Printf("  indices: %v\n", idx)
		}
	}
}
