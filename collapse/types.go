// Package collapse detects groups that hold the same set of masks
// (duplicate masks within a group are removed first, so groups are
// compared as sets) and records their multiplicity, so package precombine can
// treat all copies of a duplicated group jointly instead of letting
// the backtracking search double-count permutations of indistinguishable
// slots.
package collapse

import "github.com/katalvlaran/combsolve/bitset"

// Group is an ordered sequence of masks as supplied by the caller, one
// per admissible choice for a single slot of the selection.
type Group []bitset.Mask128

// Collapsed is a collapsed group: a sorted, deduplicated mask sequence
// paired with the number of original Groups it stands in for.
type Collapsed struct {
	// Masks is the canonical (sorted, unique) mask sequence.
	Masks []bitset.Mask128
	// Multiplicity is how many original Groups collapsed into this one.
	Multiplicity int
}
