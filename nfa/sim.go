package nfa

import "github.com/coregx/rex/internal/bitset"

// Simulator runs the NFA simulator described in spec §4.6: it walks the
// automaton directly via state-set bitmaps, without ever determinizing it.
// A Simulator owns two reusable bitmaps sized to the NFA's state count so
// repeated MatchAt calls do not reallocate.
type Simulator struct {
	nfa            *NFA
	current, next  *bitset.Bitmap
}

// NewSimulator returns a Simulator for n.
func NewSimulator(n *NFA) *Simulator {
	return &Simulator{
		nfa:     n,
		current: bitset.New(n.States()),
		next:    bitset.New(n.States()),
	}
}

// MatchAt returns the length of the longest prefix of input[start:] that
// the NFA accepts, starting the automaton fresh at start. It returns 0 if
// no non-empty prefix is accepted (this includes the case where only the
// empty prefix is accepted — spec §4.6 says zero-length accepts are
// reported as "no match" by the caller, see the anywhere scanner in
// rex.go).
//
// Malformed input containing the reserved code unit 0 is treated as ending
// at the first 0 (spec §7): matching simply stops there as if input ended.
func (s *Simulator) MatchAt(input []byte, start int) int {
	s.current.Clear()
	s.current.Set(int(s.nfa.Start()))
	s.nfa.EpsilonClosure(s.current)

	lastAccept := 0
	if s.hasAccepting() {
		lastAccept = 0
	}

	i := 0
	for start+i < len(input) {
		c := input[start+i]
		if c == 0 {
			break
		}

		s.next.Clear()
		s.current.Bits(func(id int) {
			for _, t := range s.nfa.Transitions(StateID(id)) {
				if t.Symbol == SymEpsilon {
					continue
				}
				if t.Symbol == SymWildcard || t.Symbol == Symbol(c) {
					s.next.Set(int(t.To))
				}
			}
		})
		s.nfa.EpsilonClosure(s.next)
		if s.next.IsEmpty() {
			break
		}

		s.current, s.next = s.next, s.current
		i++
		if s.hasAccepting() {
			lastAccept = i
		}
	}

	return lastAccept
}

func (s *Simulator) hasAccepting() bool {
	found := false
	s.current.Bits(func(id int) {
		if !found && s.nfa.IsMatch(StateID(id)) {
			found = true
		}
	})
	return found
}
