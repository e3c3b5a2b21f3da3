// Package precombine, for each collapsed group (masks, μ), enumerates
// all unordered μ-subsets of pairwise-disjoint masks and replaces the
// group by the list of their OR-unions. This is what makes package
// collapse's multiplicity collapse correct — a naive reduction of μ
// identical groups to a single group would over- or under-count the
// backtracking search's assignments.
package precombine

import (
	"github.com/katalvlaran/combsolve/bitset"
	"github.com/katalvlaran/combsolve/collapse"
)

// Precombined is a precombined group: OR-unions of μ-subsets from one
// collapsed group. Its output multiplicity is always 1.
type Precombined struct {
	Unions []bitset.Mask128
}

// Group enumerates unions for one collapsed group. For μ=1 this is
// simply a copy of masks. For μ>len(masks) the group is infeasible and
// Unions is empty — the caller's overall Problem then has count 0;
// this is not an error here.
func Group(c collapse.Collapsed) Precombined {
	mu := c.Multiplicity
	if mu <= 0 {
		mu = 1
	}
	if mu == 1 {
		unions := make([]bitset.Mask128, len(c.Masks))
		copy(unions, c.Masks)

		return Precombined{Unions: unions}
	}
	if mu > len(c.Masks) {
		return Precombined{Unions: nil}
	}

	e := &enumerator{masks: c.Masks, mu: mu}
	e.chosen = make([]int, 0, mu)
	e.dfs(0, bitset.Zero128())

	return Precombined{Unions: e.out}
}

// enumerator holds the DFS state for one group's μ-subset enumeration.
// Kept as an explicit struct (not closures) so dependencies stay visible.
type enumerator struct {
	masks  []bitset.Mask128
	mu     int
	chosen []int
	out    []bitset.Mask128
}

// dfs enumerates strictly-increasing index tuples of length e.mu whose
// masks are pairwise disjoint, starting the scan at start. The
// strictly-increasing index discipline is what prevents counting the
// same unordered subset twice. At depth e.mu it emits the union of the
// chosen masks.
func (e *enumerator) dfs(start int, union bitset.Mask128) {
	if len(e.chosen) == e.mu {
		e.out = append(e.out, union)
		return
	}
	// Prune: not enough remaining candidates to reach the target depth.
	remaining := e.mu - len(e.chosen)
	for i := start; i <= len(e.masks)-remaining; i++ {
		cand := e.masks[i]
		if !bitset.AndIsZero128(union, cand) {
			continue
		}
		e.chosen = append(e.chosen, i)
		e.dfs(i+1, bitset.Or128(union, cand))
		e.chosen = e.chosen[:len(e.chosen)-1]
	}
}

// Groups applies Group to every collapsed group, preserving order.
func Groups(collapsed []collapse.Collapsed) []Precombined {
	out := make([]Precombined, len(collapsed))
	for i, c := range collapsed {
		out[i] = Group(c)
	}

	return out
}
