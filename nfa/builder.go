package nfa

import (
	"github.com/coregx/rex/internal/conv"
	"github.com/coregx/rex/parser"
)

// Fragment is a transient value used during construction: a start state id
// plus an ordered list of dangling output state ids whose outgoing
// transitions have not yet been filled in. A fragment never escapes the
// builder and is consumed exactly once by the combinator that accepts it
// (spec §3, §9).
type Fragment struct {
	Start StateID
	Outs  []StateID
}

// Builder constructs an NFA incrementally via Thompson's construction
// combinators (spec §4.3). It is the sole allocator of state ids for one
// compilation.
type Builder struct {
	states []State
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) newState() StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{ID: id})
	return id
}

func (b *Builder) addTransition(from StateID, sym Symbol, to StateID) {
	b.states[from].Transitions = append(b.states[from].Transitions, Transition{Symbol: sym, To: to})
}

// States reports how many states have been allocated so far. Used by the
// compiler to enforce Config.MaxStates without waiting for Finalize.
func (b *Builder) States() int {
	return len(b.states)
}

// Char allocates a two-state fragment consuming a single code unit. A '.'
// atom is realized as the wildcard symbol rather than the literal byte
// '.' (spec §4.3).
func (b *Builder) Char(c byte) Fragment {
	sym := Symbol(c)
	if c == '.' {
		sym = SymWildcard
	}
	s := b.newState()
	e := b.newState()
	b.addTransition(s, sym, e)
	return Fragment{Start: s, Outs: []StateID{e}}
}

// Class expands a character set into a disjunction of literal-symbol
// transitions: one epsilon hop per included code unit to a private
// intermediate state, then a literal transition to a fresh output (spec
// §4.3). This keeps the NFA's symbol alphabet trivially equal to the
// code-unit alphabet, at the cost of NFA size (spec §9).
func (b *Builder) Class(cs *parser.CharSet) Fragment {
	s := b.newState()
	outs := make([]StateID, 0, cs.Count())
	cs.Members(func(u byte) {
		mid := b.newState()
		end := b.newState()
		b.addTransition(s, SymEpsilon, mid)
		b.addTransition(mid, Symbol(u), end)
		outs = append(outs, end)
	})
	return Fragment{Start: s, Outs: outs}
}

// Empty allocates a fragment matching only the zero-length string: its
// single state is both the start and (once Finalize marks it) the sole
// accepting output, with no outgoing transitions.
func (b *Builder) Empty() Fragment {
	s := b.newState()
	return Fragment{Start: s, Outs: []StateID{s}}
}

// Concat wires every dangling output of a to b's start, consuming both
// fragments and yielding one whose outputs are b's (spec §4.3).
func (b *Builder) Concat(a, bf Fragment) Fragment {
	for _, out := range a.Outs {
		b.addTransition(out, SymEpsilon, bf.Start)
	}
	return Fragment{Start: a.Start, Outs: bf.Outs}
}

// Alt allocates a new start with epsilon edges to both operands' starts,
// consuming both fragments (spec §4.3).
func (b *Builder) Alt(a, bf Fragment) Fragment {
	s := b.newState()
	b.addTransition(s, SymEpsilon, a.Start)
	b.addTransition(s, SymEpsilon, bf.Start)
	outs := make([]StateID, 0, len(a.Outs)+len(bf.Outs))
	outs = append(outs, a.Outs...)
	outs = append(outs, bf.Outs...)
	return Fragment{Start: s, Outs: outs}
}

// Star wires f for zero-or-more repetitions (spec §4.3).
func (b *Builder) Star(f Fragment) Fragment {
	s := b.newState()
	e := b.newState()
	b.addTransition(s, SymEpsilon, f.Start)
	b.addTransition(s, SymEpsilon, e)
	for _, out := range f.Outs {
		b.addTransition(out, SymEpsilon, f.Start)
		b.addTransition(out, SymEpsilon, e)
	}
	return Fragment{Start: s, Outs: []StateID{e}}
}

// Plus wires f for one-or-more repetitions (spec §4.3).
func (b *Builder) Plus(f Fragment) Fragment {
	e := b.newState()
	for _, out := range f.Outs {
		b.addTransition(out, SymEpsilon, f.Start)
		b.addTransition(out, SymEpsilon, e)
	}
	return Fragment{Start: f.Start, Outs: []StateID{e}}
}

// Optional wires f for zero-or-one repetitions (spec §4.3).
func (b *Builder) Optional(f Fragment) Fragment {
	s := b.newState()
	e := b.newState()
	b.addTransition(s, SymEpsilon, f.Start)
	b.addTransition(s, SymEpsilon, e)
	for _, out := range f.Outs {
		b.addTransition(out, SymEpsilon, e)
	}
	return Fragment{Start: s, Outs: []StateID{e}}
}

// Finalize marks every dangling output of root as accepting and returns
// the completed NFA, consuming the Builder (spec §4.3: "finalize records
// start_id and marks every out in root.outs as accepting").
func (b *Builder) Finalize(root Fragment) *NFA {
	for _, out := range root.Outs {
		b.states[out].Accepting = true
	}
	return &NFA{states: b.states, start: root.Start}
}
