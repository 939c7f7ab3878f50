// Package dfa implements subset (powerset) construction (spec §4.4), the
// column-compression pass that yields a table-driven scanner (spec §4.5),
// and the DFA simulator that runs on that compressed table (spec §4.7).
package dfa

import (
	"fmt"

	"github.com/coregx/rex/internal/bitset"
	"github.com/coregx/rex/internal/conv"
)

// StateID uniquely identifies a DFA state.
type StateID uint32

// InvalidState is the sentinel recorded for "no transition" — there is no
// valid continuation on that code unit from that state (spec §3).
const InvalidState StateID = 0xFFFFFFFF

// State is a single DFA state: a dense id, an accepting flag, the
// NFA-state-set bitmap it represents (used both for deduplication and for
// marking accepting, spec §3), and a dense vector of 256 transitions
// indexed by input code unit.
type State struct {
	ID         StateID
	Accepting  bool
	Membership *bitset.Bitmap
	Next       [256]StateID
}

// DFA owns all DFA states and carries the start state id (spec §3).
type DFA struct {
	states []State
	start  StateID
}

// Start returns the start DFA id.
func (d *DFA) Start() StateID { return d.start }

// States returns the number of DFA states.
func (d *DFA) States() int { return len(d.states) }

// State returns the state with the given id.
func (d *DFA) State(id StateID) *State { return &d.states[id] }

// String returns a short diagnostic summary.
func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states: %d, start: %d}", len(d.states), d.start)
}

func (d *DFA) addState(membership *bitset.Bitmap, accepting bool) StateID {
	id := StateID(conv.IntToUint32(len(d.states)))
	st := State{ID: id, Accepting: accepting, Membership: membership}
	for i := range st.Next {
		st.Next[i] = InvalidState
	}
	d.states = append(d.states, st)
	return id
}
