package precombine_test

import (
	"testing"

	"github.com/katalvlaran/combsolve/bitset"
	"github.com/katalvlaran/combsolve/collapse"
	"github.com/katalvlaran/combsolve/precombine"
	"github.com/stretchr/testify/require"
)

func m(bit int) bitset.Mask128 { return bitset.FromBit128(bit) }

func TestGroupMultiplicityOne(t *testing.T) {
	c := collapse.Collapsed{Masks: []bitset.Mask128{m(0), m(1), m(2)}, Multiplicity: 1}
	p := precombine.Group(c)
	require.Equal(t, c.Masks, p.Unions)
}

func TestGroupMultiplicityTwoAllDisjoint(t *testing.T) {
	// 4 pairwise-disjoint single-bit masks, μ=2 -> C(4,2)=6 unions.
	masks := []bitset.Mask128{m(0), m(1), m(2), m(3)}
	c := collapse.Collapsed{Masks: masks, Multiplicity: 2}
	p := precombine.Group(c)
	require.Len(t, p.Unions, 6)

	// Every union must have exactly 2 bits set (disjoint inputs).
	for _, u := range p.Unions {
		require.Equal(t, 2, bitset.PopCount128(u))
	}
}

func TestGroupMultiplicityExceedsSize(t *testing.T) {
	c := collapse.Collapsed{Masks: []bitset.Mask128{m(0), m(1)}, Multiplicity: 3}
	p := precombine.Group(c)
	require.Empty(t, p.Unions)
}

func TestGroupSkipsOverlappingSubsets(t *testing.T) {
	// m(0)|m(1) overlaps with m(0) alone at bit 0; only disjoint subsets count.
	overlapping := bitset.Or128(m(0), m(1))
	masks := []bitset.Mask128{m(0), overlapping, m(2)}
	c := collapse.Collapsed{Masks: masks, Multiplicity: 2}
	p := precombine.Group(c)

	// Disjoint pairs: (m(0), m(2)) and (overlapping, m(2)); the pair
	// (m(0), overlapping) shares bit 0 and is skipped.
	require.Equal(t, []bitset.Mask128{bitset.Or128(m(0), m(2)), bitset.Or128(overlapping, m(2))}, p.Unions)
	require.NotEmpty(t, p.Unions)
}

func TestGroupsPreservesOrder(t *testing.T) {
	collapsed := []collapse.Collapsed{
		{Masks: []bitset.Mask128{m(0)}, Multiplicity: 1},
		{Masks: []bitset.Mask128{m(1), m(2)}, Multiplicity: 1},
	}
	out := precombine.Groups(collapsed)
	require.Len(t, out, 2)
	require.Equal(t, []bitset.Mask128{m(0)}, out[0].Unions)
	require.Equal(t, []bitset.Mask128{m(1), m(2)}, out[1].Unions)
}
