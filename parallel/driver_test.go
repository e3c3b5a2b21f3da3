package parallel_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/combsolve/backtrack"
	"github.com/katalvlaran/combsolve/bitset"
	"github.com/katalvlaran/combsolve/parallel"
	"github.com/stretchr/testify/require"
)

func m(bit int) bitset.Mask128 { return bitset.FromBit128(bit) }

func TestDriverMatchesSequentialCount(t *testing.T) {
	g1 := []bitset.Mask128{m(0), m(1), m(2), m(3)}
	g2 := []bitset.Mask128{m(4), m(5), m(6)}
	g3 := []bitset.Mask128{m(7), m(0)}

	groups := [][]bitset.Mask128{g1, g2, g3}

	seq := backtrack.NewEngine(groups, backtrack.ModeCount)
	seqRes, err := seq.Run(nil)
	require.NoError(t, err)

	par := backtrack.NewEngine(groups, backtrack.ModeCount)
	d := parallel.NewDriver(par, parallel.WithWorkers(3))
	parRes, err := d.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, seqRes.Count, parRes.Count)
}

func TestDriverParallelDeterminismAcrossWorkerCounts(t *testing.T) {
	g1 := []bitset.Mask128{m(0), m(1), m(2), m(3), m(4)}
	g2 := []bitset.Mask128{m(5), m(6), m(7)}
	groups := [][]bitset.Mask128{g1, g2}

	var counts []uint64
	for _, w := range []int{1, 2, 4, 8} {
		eng := backtrack.NewEngine(groups, backtrack.ModeCount)
		d := parallel.NewDriver(eng, parallel.WithWorkers(w))
		res, err := d.Run(context.Background())
		require.NoError(t, err)
		counts = append(counts, res.Count)
	}
	for _, c := range counts[1:] {
		require.Equal(t, counts[0], c)
	}
}

func TestDriverEmptyFirstGroup(t *testing.T) {
	eng := backtrack.NewEngine([][]bitset.Mask128{{}, {m(0)}}, backtrack.ModeCount)
	d := parallel.NewDriver(eng)
	res, err := d.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(0), res.Count)
}

func TestDriverProgressHookFiresOncePerTask(t *testing.T) {
	g1 := []bitset.Mask128{m(0), m(1), m(2)}
	g2 := []bitset.Mask128{m(3)}
	eng := backtrack.NewEngine([][]bitset.Mask128{g1, g2}, backtrack.ModeCount)

	var mu sync.Mutex
	var ticks int
	d := parallel.NewDriver(eng, parallel.WithWorkers(2), parallel.WithProgressHook(func(completed, total int) {
		mu.Lock()
		defer mu.Unlock()
		ticks++
		require.LessOrEqual(t, completed, total)
	}))
	_, err := d.Run(context.Background())
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, ticks) // one per candidate of the post-sort first group (g2, size 1)
}

func TestDriverCancellation(t *testing.T) {
	// Build a large-ish fan-out so the deadline fires before completion.
	var g1 []bitset.Mask128
	for i := 0; i < 40; i++ {
		g1 = append(g1, m(i))
	}
	var g2 []bitset.Mask128
	for i := 40; i < 60; i++ {
		g2 = append(g2, m(i))
	}
	eng := backtrack.NewEngine([][]bitset.Mask128{g1, g2}, backtrack.ModeCount)
	d := parallel.NewDriver(eng, parallel.WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := d.Run(ctx)
	require.ErrorIs(t, err, parallel.ErrCancelled)
}
