// Package bitset implements fixed-width, allocation-free bitmasks used as
// the hot-path representation throughout combsolve: a mask is an unsigned
// integer over a fixed universe of bit positions, represented as one or
// more 64-bit limbs rather than an arbitrary-precision integer.
//
// Two concrete shapes are exported:
//
//   - Mask128: two limbs (Hi, Lo), specialized for the reference 100-bit
//     universe (10×10 board) and any universe up to 128 bits. This is the
//     type the backtrack package's hot loop is monomorphised for.
//   - Wide: an arbitrary number of limbs, for universes beyond 128 bits,
//     extending the same API to an array of limbs.
//
// Every operation here is O(W/64). The Mask128 operations perform no heap
// allocation, except Bits128, which allocates its result slice. Wide
// operations that return a Wide or a bit list (NewWide, SetBit, Or, Bits)
// allocate their result.
package bitset

import "errors"

// Sentinel errors for bitset construction.
var (
	// ErrBitOutOfRange indicates a requested bit index exceeds the mask's width.
	ErrBitOutOfRange = errors.New("bitset: bit index out of range")

	// ErrWidthMismatch indicates two Wide masks of different limb counts were combined.
	ErrWidthMismatch = errors.New("bitset: limb-count mismatch between operands")
)

// Mask128 is an immutable 128-bit mask split into two 64-bit limbs.
// Hi holds bits [64,128), Lo holds bits [0,64). Zero value is the empty mask.
type Mask128 struct {
	Hi uint64
	Lo uint64
}
