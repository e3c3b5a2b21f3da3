package bitset

import "math/bits"

// Zero128 returns the empty Mask128. Provided for readability at call
// sites that build up a running union mask.
func Zero128() Mask128 { return Mask128{} }

// FromBit128 returns a Mask128 with exactly bit set (0-indexed from the low
// end). Panics-free: out-of-range bits above 127 are rejected by the caller
// via BitOutOfRange128, since this hot-path constructor must stay branch-light
// for the common, validated case.
func FromBit128(bit int) Mask128 {
	if bit < 64 {
		return Mask128{Lo: uint64(1) << uint(bit)}
	}

	return Mask128{Hi: uint64(1) << uint(bit-64)}
}

// BitOutOfRange128 reports whether bit falls outside [0, width).
func BitOutOfRange128(bit, width int) bool {
	return bit < 0 || bit >= width
}

// Or128 returns a | b, limb-wise.
func Or128(a, b Mask128) Mask128 {
	return Mask128{Hi: a.Hi | b.Hi, Lo: a.Lo | b.Lo}
}

// And128 returns a & b, limb-wise.
func And128(a, b Mask128) Mask128 {
	return Mask128{Hi: a.Hi & b.Hi, Lo: a.Lo & b.Lo}
}

// AndIsZero128 reports whether a & b == 0, i.e. a and b are disjoint.
// This is the single hottest predicate in the whole solver: two AND +
// two equality checks, no branches beyond the boolean result.
func AndIsZero128(a, b Mask128) bool {
	return a.Hi&b.Hi == 0 && a.Lo&b.Lo == 0
}

// IsZero128 reports whether m has no bits set.
func IsZero128(m Mask128) bool {
	return m.Hi == 0 && m.Lo == 0
}

// Equal128 reports whether a and b have identical bit patterns.
func Equal128(a, b Mask128) bool {
	return a.Hi == b.Hi && a.Lo == b.Lo
}

// Less128 provides a total order over Mask128 (Hi primary, Lo secondary),
// used by collapse to canonicalize (sort+dedupe) a group's masks.
func Less128(a, b Mask128) bool {
	if a.Hi != b.Hi {
		return a.Hi < b.Hi
	}

	return a.Lo < b.Lo
}

// PopCount128 returns the number of set bits in m.
func PopCount128(m Mask128) int {
	return bits.OnesCount64(m.Hi) + bits.OnesCount64(m.Lo)
}

// Bits128 streams the set-bit positions of m in ascending order, lowest
// bit first. It allocates its result slice once, sized exactly to
// PopCount128(m).
func Bits128(m Mask128) []int {
	out := make([]int, 0, PopCount128(m))
	lo := m.Lo
	for lo != 0 {
		b := bits.TrailingZeros64(lo)
		out = append(out, b)
		lo &= lo - 1
	}
	hi := m.Hi
	for hi != 0 {
		b := bits.TrailingZeros64(hi)
		out = append(out, b+64)
		hi &= hi - 1
	}

	return out
}
