package backtrack

import "math/bits"

// lookupAccel.go implements an optional per-bit candidate lookup
// accelerator: for each group, precompute which candidate indices carry
// each bit of the universe. During search, instead of testing every
// remaining candidate against the running union with an AND, the
// accelerator marks exactly the candidates that conflict with a bit
// already set in the union and skips them directly.
//
// This changes iteration strategy only — it visits the identical set of
// leaves the AND-test traversal would, in the same order, and is
// therefore a pure pruning-order optimization: it must never change
// Count, CombinedMasks, or Indices output. It is off by default
// (SolverConfig.Heuristics["bit_lookup"]) and pays off only when groups
// are large and running unions accumulate many bits quickly.

// EngineOption configures optional, correctness-preserving Engine
// behavior. The zero value of Engine (no options) runs the default
// algorithm; options only change how candidates are traversed.
type EngineOption func(*engineConfig)

type engineConfig struct {
	bitLookupAccel bool
}

// WithBitLookupAccel enables the per-bit candidate lookup accelerator.
func WithBitLookupAccel(enable bool) EngineOption {
	return func(c *engineConfig) { c.bitLookupAccel = enable }
}

// bitLookup maps a bit position to the sorted candidate indices of one
// group that have that bit set (i.e. the indices excluded the instant
// that bit appears in the running union).
type bitLookup map[int][]int

// buildBitLookup precomputes g's bitLookup table by streaming the set
// bits of every candidate mask once.
func buildBitLookup(g *groupData) bitLookup {
	table := make(bitLookup)
	for idx := 0; idx < g.size(); idx++ {
		lo := g.lo[idx]
		for lo != 0 {
			b := bits.TrailingZeros64(lo)
			table[b] = append(table[b], idx)
			lo &= lo - 1
		}
		hi := g.hi[idx]
		for hi != 0 {
			b := bits.TrailingZeros64(hi)
			table[b+64] = append(table[b+64], idx)
			hi &= hi - 1
		}
	}

	return table
}

// forbiddenSet returns, for the given running union and group lookup
// table, a boolean mask over candidate indices that conflict with at
// least one bit already set in the union.
func forbiddenSet(table bitLookup, maskHi, maskLo uint64, size int) []bool {
	forbidden := make([]bool, size)
	lo := maskLo
	for lo != 0 {
		b := bits.TrailingZeros64(lo)
		for _, idx := range table[b] {
			forbidden[idx] = true
		}
		lo &= lo - 1
	}
	hi := maskHi
	for hi != 0 {
		b := bits.TrailingZeros64(hi)
		for _, idx := range table[b+64] {
			forbidden[idx] = true
		}
		hi &= hi - 1
	}

	return forbidden
}
