package combsolve

import (
	"time"

	"github.com/katalvlaran/combsolve/bitset"
	"github.com/katalvlaran/combsolve/parallel"
	"go.uber.org/zap"
)

// Group is an ordered sequence of candidate masks for one slot of the
// selection, as supplied by the caller.
type Group []bitset.Mask128

// Problem is an ordered list of Groups. Order only matters insofar as
// it defines group identity for ReturnIndices: once collapse merges
// identical groups, that original correspondence is intentionally not
// preserved.
type Problem struct {
	groups []Group
}

// FromGroups builds a Problem from a sequence of mask groups.
func FromGroups(groups [][]bitset.Mask128) Problem {
	p := Problem{groups: make([]Group, len(groups))}
	for i, g := range groups {
		cp := make(Group, len(g))
		copy(cp, g)
		p.groups[i] = cp
	}

	return p
}

// AddGroup appends one more group to the Problem.
func (p *Problem) AddGroup(masks []bitset.Mask128) {
	cp := make(Group, len(masks))
	copy(cp, masks)
	p.groups = append(p.groups, cp)
}

// NumGroups reports how many groups the Problem currently holds.
func (p *Problem) NumGroups() int { return len(p.groups) }

// ReturnType selects what a Solution carries.
type ReturnType int

const (
	// ReturnCount populates only Solution.Count. Strictly cheapest.
	ReturnCount ReturnType = iota
	// ReturnCombinedMasks additionally populates Solution.CombinedMasks.
	ReturnCombinedMasks
	// ReturnIndices additionally populates Solution.Indices.
	ReturnIndices
)

// Method selects the top-level solving strategy. Only Backtracking is
// defined; the field exists as a reserved extension point.
type Method int

const (
	// Backtracking is the only defined Method.
	Backtracking Method = iota
)

// SolverConfig configures one Solve call. Its zero value is not
// meaningful beyond ReturnCount/Backtracking defaulting correctly for
// ReturnType/Method (both zero); use DefaultConfig or NewConfig.
type SolverConfig struct {
	// ReturnType selects what the Solution carries. Default: ReturnCount.
	ReturnType ReturnType

	// Symmetry enables GroupCollapser. Default: true.
	Symmetry bool

	// Parallel enables ParallelDriver. Default: true. When false, a
	// single worker processes the whole first group.
	Parallel bool

	// Method selects the top-level algorithm. Default: Backtracking
	// (the only defined value).
	Method Method

	// Heuristics is an opaque key/value map reserved for tuning knobs.
	// Unknown keys are accepted and ignored. Recognized:
	//   "bit_lookup" (bool) — enable backtrack's per-bit candidate
	//   lookup accelerator. Default off.
	Heuristics map[string]interface{}

	// Workers overrides ParallelDriver's worker count. 0 (default)
	// means runtime.GOMAXPROCS(0), capped to the first group's size.
	Workers int

	// Timeout bounds wall-clock search time. 0 (default) means no
	// deadline. On expiry, Solve returns ErrCancelled.
	Timeout time.Duration

	// Logger receives Debug/Warn-level ParallelDriver diagnostics. A
	// nil Logger is replaced with zap.NewNop(); logging is a
	// collaborator, never required for correctness.
	Logger *zap.Logger

	// ProgressHook receives one call per completed first-group task
	// when Parallel is true. Always safe to leave nil.
	ProgressHook parallel.ProgressHook
}

// DefaultConfig returns a SolverConfig with its documented defaults:
// ReturnCount, Symmetry=true, Parallel=true, Backtracking, no
// heuristics, auto worker count, no timeout.
func DefaultConfig() SolverConfig {
	return SolverConfig{
		ReturnType: ReturnCount,
		Symmetry:   true,
		Parallel:   true,
		Method:     Backtracking,
		Heuristics: map[string]interface{}{},
	}
}

// Solution carries the outcome of a Solve call. Only the fields
// corresponding to the requesting SolverConfig.ReturnType are
// populated; the rest are left at their zero value.
type Solution struct {
	// Count is always populated.
	Count uint64
	// CombinedMasks is populated only for ReturnCombinedMasks.
	CombinedMasks []bitset.Mask128
	// Indices is populated only for ReturnIndices. Each entry has one
	// candidate index per (collapsed/precombined) group.
	Indices [][]int
	// Profiling is a slot for timing/diagnostic data. Solve does not
	// populate it; it is left nil.
	Profiling map[string]interface{}
}
