package backtrack_test

import (
	"testing"

	"github.com/katalvlaran/combsolve/backtrack"
	"github.com/katalvlaran/combsolve/bitset"
	"github.com/stretchr/testify/require"
)

func m(bit int) bitset.Mask128 { return bitset.FromBit128(bit) }

// S1 scenario: G1=[0b11000000,0b01100000,0b00110000], G2=G3=[0b1000,0b0100,0b0010,0b0001]
func bitsOf(v uint64) bitset.Mask128 { return bitset.Mask128{Lo: v} }

func TestBacktrackS1SymmetryTrueEquivalent(t *testing.T) {
	g1 := []bitset.Mask128{bitsOf(0b11000000), bitsOf(0b01100000), bitsOf(0b00110000)}
	g2 := []bitset.Mask128{bitsOf(0b00001000), bitsOf(0b00000100), bitsOf(0b00000010), bitsOf(0b00000001)}

	// symmetry=true path: G2/G3 collapse to one precombined group with
	// all C(4,2)=6 disjoint-pair unions; searched alongside G1.
	pairUnions := make([]bitset.Mask128, 0, 6)
	for i := 0; i < len(g2); i++ {
		for j := i + 1; j < len(g2); j++ {
			if bitset.AndIsZero128(g2[i], g2[j]) {
				pairUnions = append(pairUnions, bitset.Or128(g2[i], g2[j]))
			}
		}
	}
	require.Len(t, pairUnions, 6)

	eng := backtrack.NewEngine([][]bitset.Mask128{g1, pairUnions}, backtrack.ModeCount)
	res, err := eng.Run(nil)
	require.NoError(t, err)
	require.Equal(t, uint64(18), res.Count)
}

func TestBacktrackS1SymmetryFalse(t *testing.T) {
	g1 := []bitset.Mask128{bitsOf(0b11000000), bitsOf(0b01100000), bitsOf(0b00110000)}
	g2 := []bitset.Mask128{bitsOf(0b00001000), bitsOf(0b00000100), bitsOf(0b00000010), bitsOf(0b00000001)}
	g3 := append([]bitset.Mask128(nil), g2...)

	eng := backtrack.NewEngine([][]bitset.Mask128{g1, g2, g3}, backtrack.ModeCount)
	res, err := eng.Run(nil)
	require.NoError(t, err)
	require.Equal(t, uint64(36), res.Count)
}

func TestBacktrackS2Infeasible(t *testing.T) {
	eng := backtrack.NewEngine([][]bitset.Mask128{{bitsOf(0b11)}, {bitsOf(0b11)}}, backtrack.ModeIndices)
	res, err := eng.Run(nil)
	require.NoError(t, err)
	require.Equal(t, uint64(0), res.Count)
	require.Empty(t, res.Indices)
}

func TestBacktrackS3Singleton(t *testing.T) {
	eng := backtrack.NewEngine([][]bitset.Mask128{{bitsOf(0b10)}, {bitsOf(0b01)}}, backtrack.ModeCombinedMasks)
	res, err := eng.Run(nil)
	require.NoError(t, err)
	require.Equal(t, uint64(1), res.Count)
	require.Equal(t, []bitset.Mask128{bitsOf(0b11)}, res.CombinedMasks)

	engIdx := backtrack.NewEngine([][]bitset.Mask128{{bitsOf(0b10)}, {bitsOf(0b01)}}, backtrack.ModeIndices)
	resIdx, err := engIdx.Run(nil)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 0}}, resIdx.Indices)
}

func TestBacktrackS4Identity(t *testing.T) {
	for _, mode := range []backtrack.Mode{backtrack.ModeCount, backtrack.ModeCombinedMasks, backtrack.ModeIndices} {
		eng := backtrack.NewEngine([][]bitset.Mask128{{bitsOf(0b1)}}, mode)
		res, err := eng.Run(nil)
		require.NoError(t, err)
		require.Equal(t, uint64(1), res.Count)
	}
}

func TestBacktrackEmptyGroupYieldsZero(t *testing.T) {
	eng := backtrack.NewEngine([][]bitset.Mask128{{}, {bitsOf(1)}}, backtrack.ModeCount)
	res, err := eng.Run(nil)
	require.NoError(t, err)
	require.Equal(t, uint64(0), res.Count)
}

func TestBacktrackDisjointnessLeafInvariant(t *testing.T) {
	g1 := []bitset.Mask128{m(0), m(1)}
	g2 := []bitset.Mask128{m(2), m(3)}
	g3 := []bitset.Mask128{m(4), m(0)} // m(0) conflicts with g1's m(0)

	eng := backtrack.NewEngine([][]bitset.Mask128{g1, g2, g3}, backtrack.ModeIndices)
	res, err := eng.Run(nil)
	require.NoError(t, err)

	groups := [][]bitset.Mask128{g1, g2, g3}
	for _, path := range res.Indices {
		var union bitset.Mask128
		for gi, idx := range path {
			cand := groups[gi][idx]
			require.True(t, bitset.AndIsZero128(union, cand), "leaf must stay pairwise disjoint")
			union = bitset.Or128(union, cand)
		}
	}
}

func TestBacktrackCountEnumerateConsistency(t *testing.T) {
	g1 := []bitset.Mask128{m(0), m(1), m(2)}
	g2 := []bitset.Mask128{m(3), m(4)}

	count, err := backtrack.NewEngine([][]bitset.Mask128{g1, g2}, backtrack.ModeCount).Run(nil)
	require.NoError(t, err)
	idx, err := backtrack.NewEngine([][]bitset.Mask128{g1, g2}, backtrack.ModeIndices).Run(nil)
	require.NoError(t, err)
	masks, err := backtrack.NewEngine([][]bitset.Mask128{g1, g2}, backtrack.ModeCombinedMasks).Run(nil)
	require.NoError(t, err)

	require.Equal(t, count.Count, uint64(len(idx.Indices)))
	require.Equal(t, count.Count, uint64(len(masks.CombinedMasks)))
}

func TestBacktrackOrderIndependenceOfGroups(t *testing.T) {
	g1 := []bitset.Mask128{m(0), m(1), m(2)}
	g2 := []bitset.Mask128{m(3), m(4)}
	g3 := []bitset.Mask128{m(5)}

	a, err := backtrack.NewEngine([][]bitset.Mask128{g1, g2, g3}, backtrack.ModeCount).Run(nil)
	require.NoError(t, err)
	b, err := backtrack.NewEngine([][]bitset.Mask128{g3, g1, g2}, backtrack.ModeCount).Run(nil)
	require.NoError(t, err)
	require.Equal(t, a.Count, b.Count)
}

func TestBacktrackCancellation(t *testing.T) {
	g1 := []bitset.Mask128{m(0), m(1), m(2), m(3)}
	g2 := []bitset.Mask128{m(4), m(5), m(6), m(7)}

	eng := backtrack.NewEngine([][]bitset.Mask128{g1, g2}, backtrack.ModeCount)
	tok := alwaysCancelled{}
	_, err := eng.Run(tok)
	require.ErrorIs(t, err, backtrack.ErrCancelled)
}

type alwaysCancelled struct{}

func (alwaysCancelled) Cancelled() bool { return true }

func TestBacktrackBitLookupAccelMatchesDefault(t *testing.T) {
	g1 := []bitset.Mask128{m(0), m(1), m(2), m(3)}
	g2 := []bitset.Mask128{m(4), m(5), m(6)}
	g3 := []bitset.Mask128{m(7), m(0)}

	base, err := backtrack.NewEngine([][]bitset.Mask128{g1, g2, g3}, backtrack.ModeCount).Run(nil)
	require.NoError(t, err)
	accel, err := backtrack.NewEngine([][]bitset.Mask128{g1, g2, g3}, backtrack.ModeCount, backtrack.WithBitLookupAccel(true)).Run(nil)
	require.NoError(t, err)
	require.Equal(t, base.Count, accel.Count)
}

func TestRunSubtreeMatchesFullRunSummedOverFirstGroup(t *testing.T) {
	g1 := []bitset.Mask128{m(0), m(1), m(2)}
	g2 := []bitset.Mask128{m(3), m(4)}

	eng := backtrack.NewEngine([][]bitset.Mask128{g1, g2}, backtrack.ModeCount)
	full, err := eng.Run(nil)
	require.NoError(t, err)

	var summed uint64
	for i := 0; i < eng.FirstGroupSize(); i++ {
		r, err := eng.RunSubtree(i, nil)
		require.NoError(t, err)
		summed += r.Count
	}
	require.Equal(t, full.Count, summed)
}
