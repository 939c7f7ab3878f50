// Package nfa implements Thompson's construction (spec §4.3): it walks a
// parser syntax tree and emits a nondeterministic finite automaton, and
// provides an NFA simulator (spec §4.6) that runs that automaton directly
// against input without determinizing it first.
package nfa

import (
	"fmt"

	"github.com/coregx/rex/internal/bitset"
)

// StateID uniquely identifies an NFA state. States are dense and 0-based,
// stable for the lifetime of the NFA (spec §3).
type StateID uint32

// InvalidState is a sentinel StateID that names no state. No accessor in
// this package returns it.
const InvalidState StateID = 0xFFFFFFFF

// Symbol labels a transition. Values 0..255 are the epsilon/literal
// alphabet described in spec §6, where 0 is reserved for epsilon and is
// never a real input byte. SymWildcard is a distinguished value outside
// that range realizing '.' (spec §4.3): it is an NFA-level symbol only and
// never appears on a DFA transition (spec §4.4).
type Symbol uint16

const (
	// SymEpsilon consumes no input.
	SymEpsilon Symbol = 0
	// SymWildcard fires on every input code unit.
	SymWildcard Symbol = 256
)

// Transition is a pair (input symbol, target id).
type Transition struct {
	Symbol Symbol
	To     StateID
}

// State is a single NFA state: a dense id, an accepting flag, and an
// append-only vector of outgoing transitions (spec §3).
type State struct {
	ID         StateID
	Accepting  bool
	Transitions []Transition
}

// NFA is the container that owns all states and exposes the start state id
// (spec §3). It is the sole allocator of state ids for the lifetime of one
// compiled pattern.
type NFA struct {
	states []State
	start  StateID
}

// Start returns the start state id.
func (n *NFA) Start() StateID { return n.start }

// States returns the number of states in the NFA.
func (n *NFA) States() int { return len(n.states) }

// IsMatch reports whether id is an accepting state.
func (n *NFA) IsMatch(id StateID) bool {
	return n.states[id].Accepting
}

// Transitions returns the outgoing transitions of state id.
func (n *NFA) Transitions(id StateID) []Transition {
	return n.states[id].Transitions
}

// String returns a short diagnostic summary.
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d}", len(n.states), n.start)
}

// EpsilonClosure advances set to its epsilon-closure in place: starting
// from the bits already set, it iterates to a fixed point, adding the
// target of every epsilon transition out of every state currently in the
// set (spec §4.4). The iteration terminates because the set is monotone
// non-decreasing and bounded by set.Len().
func (n *NFA) EpsilonClosure(set *bitset.Bitmap) {
	// Worklist of newly-added states still needing their epsilon edges
	// followed. Re-scanning the whole bitmap to a fixed point would be
	// O(states^2); a worklist keeps this linear in the number of edges
	// actually traversed.
	var worklist []StateID
	set.Bits(func(i int) { worklist = append(worklist, StateID(i)) })

	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, t := range n.states[id].Transitions {
			if t.Symbol != SymEpsilon {
				continue
			}
			if !set.Test(int(t.To)) {
				set.Set(int(t.To))
				worklist = append(worklist, t.To)
			}
		}
	}
}
