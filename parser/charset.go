package parser

import "github.com/coregx/rex/internal/bitset"

// CharSet is a compiled character class: a 256-bit membership bitmap plus a
// negation flag. The bitmap always stores the *inclusive* set named by the
// class body; negation is applied by callers (NFA construction materializes
// it, see the nfa package) rather than baked into the bitmap itself, so the
// bitmap stays canonical regardless of how many times the set is consumed.
type CharSet struct {
	bitmap  *bitset.Bitmap
	Negated bool
}

// NewCharSet returns an empty, non-negated character set.
func NewCharSet() *CharSet {
	return &CharSet{bitmap: bitset.New(256)}
}

// Add marks code unit c as a member of the inclusive set.
func (cs *CharSet) Add(c byte) {
	cs.bitmap.Set(int(c))
}

// AddRange marks every code unit in [lo, hi] (inclusive) as a member.
func (cs *CharSet) AddRange(lo, hi byte) {
	for c := int(lo); c <= int(hi); c++ {
		cs.bitmap.Set(c)
	}
}

// Contains reports whether c is a member of the set under negation: if
// Negated is false this is plain inclusive membership; if true it is the
// complement.
func (cs *CharSet) Contains(c byte) bool {
	member := cs.bitmap.Test(int(c))
	if cs.Negated {
		return !member
	}
	return member
}

// Members calls f once for every code unit included under negation, in
// ascending order. Used by NFA construction to materialize the class as a
// disjunction of literal transitions (spec §4.3).
//
// Code unit 0 is never yielded, even by a negated class whose complement
// would otherwise include it: 0 is reserved for epsilon on NFA transitions
// (spec §6) and can appear in no pattern or input, so it is not part of the
// 1..255 alphabet a class draws from.
func (cs *CharSet) Members(f func(c byte)) {
	for c := 1; c < 256; c++ {
		if cs.Contains(byte(c)) {
			f(byte(c))
		}
	}
}

// Count returns the number of code units Members will yield, without
// calling it: the class's cardinality over the valid 1..255 alphabet.
func (cs *CharSet) Count() int {
	inclusive := cs.bitmap.PopCount()
	if cs.bitmap.Test(0) {
		inclusive--
	}
	if cs.Negated {
		return 255 - inclusive
	}
	return inclusive
}
