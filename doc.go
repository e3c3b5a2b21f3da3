// Package combsolve counts or enumerates the ways to pick exactly one
// element from each of several groups of fixed-width bitmasks such that
// the chosen masks are pairwise bit-disjoint.
//
// # What & Why
//
// Given an ordered list of groups G₁…G_k, where each G_i is a multiset
// of fixed-width bitmasks over a shared universe of bit positions,
// combsolve computes the number — and, optionally, the set — of
// k-tuples (m₁,…,m_k), m_i ∈ G_i, satisfying m_i AND m_j = 0 for all
// i ≠ j. The reference application is ship-placement counting on a
// grid (package battleship): each group is the set of admissible
// placements of one ship, padded per the German no-touch rule, so
// disjointness of masks is exactly non-adjacency of ships.
//
// combsolve is deliberately domain-agnostic: it accepts abstract mask
// groups and knows nothing about boards, ships, or any other caller
// concept (package battleship is one collaborator among many the core
// could serve).
//
// # Pipeline
//
//	raw groups → collapse.Collapse → precombine.Groups →
//	  backtrack.Engine (sorted, size-ascending) → parallel.Driver →
//	  Solution
//
//  1. collapse detects groups that hold the same masks (duplicates
//     within a group are removed first) and records
//     their multiplicity, so duplicated ship sizes don't force the
//     search to re-explore isomorphic subtrees independently.
//  2. precombine replaces a collapsed group of multiplicity μ by the
//     list of OR-unions of its pairwise-disjoint μ-subsets — the only
//     representation under which the collapse is counting-correct.
//  3. backtrack runs the depth-first disjointness search, sorted
//     ascending by group size for maximal early pruning.
//  4. parallel fans the search out across workers at the (smallest)
//     first group, aggregating partial counts/enumerations.
//
// # Options
//
//	type SolverConfig struct {
//	    ReturnType ReturnType // Count / CombinedMasks / Indices
//	    Symmetry   bool       // enable collapse.Collapse (default true)
//	    Parallel   bool       // enable parallel.Driver (default true)
//	    Method     Method     // only Backtracking is defined
//	    Heuristics map[string]any // opaque, unknown keys ignored
//	    Workers    int        // 0 = runtime.GOMAXPROCS(0)
//	    Timeout    time.Duration // 0 = no deadline
//	}
//
//	func DefaultConfig() SolverConfig
//	func NewConfig(opts ...Option) SolverConfig
//
// # Errors
//
//	ErrInvalidConfig — unknown ReturnType/Method; raised before any work starts.
//	ErrCancelled     — a timeout/cancellation fired; partial results discarded.
//	ErrInternal      — a violated search invariant (should never occur).
//
// Infeasible inputs are not an error: Solution.Count is 0 and any
// enumeration fields are empty.
//
// # Determinism
//
//	Solution.Count never depends on group order, worker count, or
//	scheduling: reordering groups and varying Workers leave Count
//	unchanged. Symmetry does change Count: with Symmetry=true, μ
//	identical groups are filled by one unordered μ-subset, so each
//	unordered choice is counted once instead of once per ordering
//	(two identical 4-mask groups beside a 3-mask group: 18 with
//	Symmetry=true, 36 with Symmetry=false).
package combsolve
