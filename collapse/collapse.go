package collapse

import (
	"encoding/binary"
	"sort"

	"github.com/katalvlaran/combsolve/bitset"
)

// Collapse canonicalizes each group (sort + dedupe its masks), then, when
// symmetry is true, groups identical canonical sequences together and
// emits one Collapsed entry per equivalence class with Multiplicity equal
// to the class size. When symmetry is false, each input group is still
// canonicalized (duplicate masks within a group are always collapsed at
// ingestion) but emitted individually with Multiplicity 1.
//
// Empty input yields empty output. There are no failure modes.
func Collapse(groups []Group, symmetry bool) []Collapsed {
	canon := make([][]bitset.Mask128, len(groups))
	for i, g := range groups {
		canon[i] = canonicalize(g)
	}

	if !symmetry {
		out := make([]Collapsed, len(canon))
		for i, masks := range canon {
			out[i] = Collapsed{Masks: masks, Multiplicity: 1}
		}

		return out
	}

	// Partition by canonical-sequence identity, preserving first-seen
	// order for deterministic output. Original positional order across
	// equivalence classes is lost here by design.
	index := make(map[string]int, len(canon))
	var out []Collapsed
	for _, masks := range canon {
		key := encodeKey(masks)
		if idx, ok := index[key]; ok {
			out[idx].Multiplicity++
			continue
		}
		index[key] = len(out)
		out = append(out, Collapsed{Masks: masks, Multiplicity: 1})
	}

	return out
}

// canonicalize returns a sorted copy of g with duplicate masks removed.
func canonicalize(g Group) []bitset.Mask128 {
	cp := make([]bitset.Mask128, len(g))
	copy(cp, g)
	sort.Slice(cp, func(i, j int) bool { return bitset.Less128(cp[i], cp[j]) })

	out := cp[:0:0]
	for i, m := range cp {
		if i == 0 || !bitset.Equal128(m, cp[i-1]) {
			out = append(out, m)
		}
	}

	return out
}

// encodeKey builds a byte-exact map key from a canonical mask sequence so
// that two groups compare equal iff their canonical sequences are
// bit-for-bit identical.
func encodeKey(masks []bitset.Mask128) string {
	buf := make([]byte, len(masks)*16)
	for i, m := range masks {
		binary.BigEndian.PutUint64(buf[i*16:], m.Hi)
		binary.BigEndian.PutUint64(buf[i*16+8:], m.Lo)
	}

	return string(buf)
}
