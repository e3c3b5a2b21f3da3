package backtrack

import (
	"sort"

	"github.com/katalvlaran/combsolve/bitset"
)

// groupData is one precombined group unpacked into parallel hi/lo limb
// arrays. origIndex records the group's position before the ascending
// size-sort, so ModeIndices output can be remapped back to the caller's
// original group order.
type groupData struct {
	hi        []uint64
	lo        []uint64
	origIndex int
}

func (g *groupData) size() int { return len(g.hi) }

// Engine runs the sequential depth-first disjointness search over one
// set of precombined groups. An Engine is built once and may be run
// multiple times (Run is read-only over its groups); this is what lets
// ParallelDriver share one Engine's sorted group data across workers,
// each only varying the fixed first-group candidate.
type Engine struct {
	groups  []groupData
	mode    Mode
	cfg     engineConfig
	lookups []bitLookup // only built when cfg.bitLookupAccel is set
}

// NewEngine unpacks groups into the hi/lo limb layout and sorts them
// ascending by candidate count (smallest first), which matters for
// pruning. This sort is a pruning-only optimization: it changes search
// order, never the count.
func NewEngine(groups [][]bitset.Mask128, mode Mode, opts ...EngineOption) *Engine {
	gs := make([]groupData, len(groups))
	for i, g := range groups {
		hi := make([]uint64, len(g))
		lo := make([]uint64, len(g))
		for j, m := range g {
			hi[j] = m.Hi
			lo[j] = m.Lo
		}
		gs[i] = groupData{hi: hi, lo: lo, origIndex: i}
	}
	sort.SliceStable(gs, func(i, j int) bool { return gs[i].size() < gs[j].size() })

	var cfg engineConfig
	for _, o := range opts {
		o(&cfg)
	}

	e := &Engine{groups: gs, mode: mode, cfg: cfg}
	if cfg.bitLookupAccel {
		e.lookups = make([]bitLookup, len(gs))
		for i := range gs {
			e.lookups[i] = buildBitLookup(&gs[i])
		}
	}

	return e
}

// NumGroups returns the number of groups the Engine searches over.
func (e *Engine) NumGroups() int { return len(e.groups) }

// FirstGroupSize returns the candidate count of the (post-sort) smallest
// group — the group ParallelDriver splits across workers.
func (e *Engine) FirstGroupSize() int {
	if len(e.groups) == 0 {
		return 0
	}

	return e.groups[0].size()
}

// Run performs the full sequential search from the root (depth 0, empty
// union) and returns the aggregated Result for the Engine's Mode.
func (e *Engine) Run(token CancelToken) (Result, error) {
	return e.run(0, 0, 0, nil, token)
}

// RunSubtree runs the search rooted at a fixed choice of firstIdx within
// the (sorted) first group — the unit of work ParallelDriver dispatches
// to each worker: recursion starts at depth 1 with the initial union
// set to that first candidate.
func (e *Engine) RunSubtree(firstIdx int, token CancelToken) (Result, error) {
	if len(e.groups) == 0 || firstIdx < 0 || firstIdx >= e.groups[0].size() {
		return Result{Count: 0}, nil
	}
	first := &e.groups[0]

	return e.run(1, first.hi[firstIdx], first.lo[firstIdx], []int{firstIdx}, token)
}

// run is the shared entry point for Run/RunSubtree: it allocates leaf
// accumulators sized for the Engine's Mode and drives the recursive dfs.
func (e *Engine) run(startDepth int, maskHi, maskLo uint64, prefix []int, token CancelToken) (Result, error) {
	if token == nil {
		token = NoCancel{}
	}
	if n := len(e.groups); n == 0 {
		return Result{Count: 1}, nil // vacuous: no groups, one empty assignment
	}
	for _, g := range e.groups {
		if g.size() == 0 {
			return Result{Count: 0}, nil // an empty group makes the whole selection infeasible
		}
	}

	path := make([]int, len(e.groups))
	copy(path, prefix)

	d := &dfsState{engine: e, token: token, path: path}
	if startDepth >= len(e.groups) {
		d.emitLeaf(maskHi, maskLo)
	} else {
		d.dfs(startDepth, maskHi, maskLo)
	}
	if d.cancelled {
		return Result{}, ErrCancelled
	}

	return d.result, nil
}

// dfsState carries the mutable recursion state for one Run/RunSubtree
// invocation: the running union, the chosen-index path, and the
// accumulating Result. Kept as an explicit struct rather than closures
// over local variables.
type dfsState struct {
	engine    *Engine
	token     CancelToken
	path      []int
	result    Result
	cancelled bool
}

// dfs is the recursive disjointness search. depth indexes into the
// (sorted) group list; maskHi/maskLo is the running union of all masks
// chosen at shallower depths.
func (d *dfsState) dfs(depth int, maskHi, maskLo uint64) {
	if d.cancelled || d.token.Cancelled() {
		d.cancelled = true
		return
	}
	if depth == len(d.engine.groups) {
		d.emitLeaf(maskHi, maskLo)
		return
	}

	g := &d.engine.groups[depth]
	if d.engine.cfg.bitLookupAccel {
		forbidden := forbiddenSet(d.engine.lookups[depth], maskHi, maskLo, g.size())
		for i := 0; i < g.size(); i++ {
			if forbidden[i] {
				continue
			}
			d.path[depth] = i
			d.dfs(depth+1, maskHi|g.hi[i], maskLo|g.lo[i])
			if d.cancelled {
				return
			}
		}

		return
	}

	for i := 0; i < g.size(); i++ {
		if g.hi[i]&maskHi != 0 || g.lo[i]&maskLo != 0 {
			continue
		}
		d.path[depth] = i
		d.dfs(depth+1, maskHi|g.hi[i], maskLo|g.lo[i])
		if d.cancelled {
			return
		}
	}
}

// emitLeaf records one complete, disjoint assignment according to the
// Engine's Mode.
func (d *dfsState) emitLeaf(maskHi, maskLo uint64) {
	d.result.Count++
	switch d.engine.mode {
	case ModeCombinedMasks:
		d.result.CombinedMasks = append(d.result.CombinedMasks, bitset.Mask128{Hi: maskHi, Lo: maskLo})
	case ModeIndices:
		remapped := make([]int, len(d.path))
		for sortedPos, g := range d.engine.groups {
			remapped[g.origIndex] = d.path[sortedPos]
		}
		d.result.Indices = append(d.result.Indices, remapped)
	}
}
