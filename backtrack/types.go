// Package backtrack implements a depth-first disjointness search over
// precombined groups, specialized for the 128-bit (two-limb) mask
// representation so the hot inner test stays two AND + two equality
// checks with no heap allocation per candidate.
//
// Engine operates on parallel hi[]/lo[] limb arrays per group — a
// SIMD-friendly unpacked representation — rather than on bitset.Mask128
// values directly, so the innermost loop touches flat uint64 slices
// (mirroring a dense weight-buffer-and-accessor discipline: explicit
// engine struct, no closures).
package backtrack

import (
	"errors"

	"github.com/katalvlaran/combsolve/bitset"
)

// Sentinel errors.
var (
	// ErrCancelled is returned by Run when the supplied CancelToken fired
	// before the search completed. Partial results are discarded.
	ErrCancelled = errors.New("backtrack: search cancelled")

	// ErrInvariant flags a violated disjointness invariant. It should
	// never be observed in practice: dfs only ever recurses through
	// candidates it has just verified disjoint.
	ErrInvariant = errors.New("backtrack: disjointness invariant violated")
)

// Mode selects what Run accumulates at each leaf.
type Mode int

const (
	// ModeCount maintains a single running total; cheapest mode.
	ModeCount Mode = iota
	// ModeCombinedMasks records, per leaf, the OR of all chosen masks.
	ModeCombinedMasks
	// ModeIndices records, per leaf, the per-group candidate index path.
	ModeIndices
)

// CancelToken is checked at the top of every recursive call; it is
// meant to be a cheap, relaxed-atomic-style load. The zero value of any
// type implementing it that always reports false is equivalent to no
// cancellation.
type CancelToken interface {
	Cancelled() bool
}

// NoCancel never cancels; the default when the caller supplies no token.
type NoCancel struct{}

// Cancelled always reports false.
func (NoCancel) Cancelled() bool { return false }

// Result holds the fields populated for the Engine's configured Mode.
type Result struct {
	// Count is always populated — the leaf count of this subtree.
	Count uint64
	// CombinedMasks is populated only in ModeCombinedMasks.
	CombinedMasks []bitset.Mask128
	// Indices is populated only in ModeIndices. Each entry has one index
	// per group, in the original (pre-sort) group order the Engine was
	// constructed with.
	Indices [][]int
}
