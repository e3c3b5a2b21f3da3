// Package parallel implements a driver that splits the first (smallest,
// post-sort) group's candidates into one task per index, runs each as
// an independent backtrack.Engine subtree on a worker, and aggregates
// the per-worker partial results. Workers are stateless beyond their
// own accumulator; the Engine's unpacked hi/lo limb arrays are shared
// read-only across workers.
package parallel

import (
	"errors"

	"github.com/katalvlaran/combsolve/bitset"
)

// Sentinel errors.
var (
	// ErrCancelled is returned when the driver's context was cancelled
	// (explicit Cancel() call or deadline) before all workers finished.
	// Partial results are discarded.
	ErrCancelled = errors.New("parallel: search cancelled")

	// ErrInternal wraps a worker-reported backtrack.ErrInvariant, surfaced
	// at the aggregation boundary.
	ErrInternal = errors.New("parallel: internal invariant violation in a worker")
)

// ProgressHook is called once per completed first-group task. Driver
// serializes these calls under its aggregation lock, so a hook never
// needs to be reentrant or thread-safe on its own, but it also must not
// block for long or it will stall every worker's aggregation. It is a
// plain, out-of-band callback: the core never imports a metrics or
// logging library to implement this, and calling Solve with a nil hook
// is always valid and has no effect.
type ProgressHook func(completed, total int)

// Aggregate is the combined Result across all workers: counts sum,
// enumerations concatenate. Leaf order across workers is unspecified.
type Aggregate struct {
	Count         uint64
	CombinedMasks []bitset.Mask128
	Indices       [][]int
}
