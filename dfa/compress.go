package dfa

// CompressedTable is the column-compressed, table-driven form of a DFA
// (spec §4.5): a 256-entry equivalence-class map, the class count, a dense
// accept vector, and a |DFA| x K transition table holding target DFA ids
// (or InvalidState).
type CompressedTable struct {
	EC     [256]byte
	K      int
	Accept []bool
	Next   [][]StateID
	Start  StateID
}

// Compress partitions the 256-symbol alphabet into equivalence classes and
// emits a dense transition table indexed by (state, class) — the
// column-compression pass comparable to the table a classical lexer
// generator emits (spec §4.5).
//
// Two code units share a class iff their transition columns are identical
// across every DFA state. The partition is computed by scanning code units
// left to right: each unassigned unit starts a fresh class, and every
// later unassigned unit whose column matches it joins that class.
func Compress(d *DFA) *CompressedTable {
	var ec [256]byte
	var assigned [256]bool
	class := byte(0)

	for c1 := 0; c1 < 256; c1++ {
		if assigned[c1] {
			continue
		}
		ec[c1] = class
		assigned[c1] = true
		for c2 := c1 + 1; c2 < 256; c2++ {
			if assigned[c2] {
				continue
			}
			if columnsEqual(d, byte(c1), byte(c2)) {
				ec[c2] = class
				assigned[c2] = true
			}
		}
		class++
	}
	k := int(class)

	// One representative code unit per class: the smallest code unit
	// mapping to it (spec §4.5).
	reps := make([]int, k)
	for i := range reps {
		reps[i] = -1
	}
	for c := 0; c < 256; c++ {
		cls := int(ec[c])
		if reps[cls] == -1 {
			reps[cls] = c
		}
	}

	accept := make([]bool, len(d.states))
	next := make([][]StateID, len(d.states))
	for i, st := range d.states {
		accept[i] = st.Accepting
		row := make([]StateID, k)
		for cls, rep := range reps {
			row[cls] = st.Next[rep]
		}
		next[i] = row
	}

	return &CompressedTable{EC: ec, K: k, Accept: accept, Next: next, Start: d.start}
}

func columnsEqual(d *DFA, c1, c2 byte) bool {
	for _, st := range d.states {
		if st.Next[c1] != st.Next[c2] {
			return false
		}
	}
	return true
}
