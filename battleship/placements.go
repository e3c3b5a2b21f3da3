package battleship

import "github.com/katalvlaran/combsolve/bitset"

// placement is one candidate location for a ship: the ordered list of
// cells it occupies.
type placement struct {
	cells [][2]int // [row, col] pairs
}

// validPlacements enumerates every horizontal and vertical placement of
// a ship of the given size that avoids all Miss/Sunk cells on the
// current board.
func (b *Board) validPlacements(shipSize int) []placement {
	var out []placement
	for r := 0; r < b.Height; r++ {
		for c := 0; c < b.Width; c++ {
			if c+shipSize <= b.Width {
				out = append(out, b.horizontalAt(r, c, shipSize))
			}
			if r+shipSize <= b.Height {
				out = append(out, b.verticalAt(r, c, shipSize))
			}
		}
	}

	filtered := out[:0]
	for _, p := range out {
		if !b.overlapsBlocked(p) {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

func (b *Board) horizontalAt(r, c, size int) placement {
	cells := make([][2]int, size)
	for i := 0; i < size; i++ {
		cells[i] = [2]int{r, c + i}
	}

	return placement{cells: cells}
}

func (b *Board) verticalAt(r, c, size int) placement {
	cells := make([][2]int, size)
	for i := 0; i < size; i++ {
		cells[i] = [2]int{r + i, c}
	}

	return placement{cells: cells}
}

func (b *Board) overlapsBlocked(p placement) bool {
	for _, rc := range p.cells {
		switch b.cells[rc[0]][rc[1]] {
		case Miss, Sunk:
			return true
		}
	}

	return false
}

// padNeighbors are the German no-touch rule's positive-direction
// neighbor offsets: right, down, and down-right. Padding only the
// positive side (rather than all eight neighbors) is enough, since
// every pair of candidate masks is tested both ways by the disjointness
// check — if A's right neighbor overlaps B's own cell, B's own cell
// also overlaps A's padded cell from the other pass over the pair.
var padNeighbors = [3][2]int{{1, 0}, {0, 1}, {1, 1}}

// toMask converts a placement into a Mask128 whose set bits are the
// ship's own cells plus its positive-direction padding.
func (b *Board) toMask(p placement) bitset.Mask128 {
	m := bitset.Zero128()
	for _, rc := range p.cells {
		r, c := rc[0], rc[1]
		m = bitset.Or128(m, bitset.FromBit128(b.bit(c, r)))
		for _, d := range padNeighbors {
			rr, cc := r+d[0], c+d[1]
			if rr >= 0 && rr < b.Height && cc >= 0 && cc < b.Width {
				m = bitset.Or128(m, bitset.FromBit128(b.bit(cc, rr)))
			}
		}
	}

	return m
}

// GenerateGroups returns one mask group per entry in b.ShipSizes, in
// that order, each containing every admissible padded placement mask
// for that ship size given the board's current cell states. Ships that
// share a size naturally end up with byte-identical candidate lists,
// which is exactly the duplication combsolve's Symmetry option collapses.
func (b *Board) GenerateGroups() [][]bitset.Mask128 {
	cache := make(map[int][]bitset.Mask128)
	groups := make([][]bitset.Mask128, len(b.ShipSizes))
	for i, size := range b.ShipSizes {
		masks, ok := cache[size]
		if !ok {
			placements := b.validPlacements(size)
			masks = make([]bitset.Mask128, len(placements))
			for j, p := range placements {
				masks[j] = b.toMask(p)
			}
			cache[size] = masks
		}
		groups[i] = masks
	}

	return groups
}
