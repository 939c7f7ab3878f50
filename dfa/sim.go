package dfa

// Simulator runs a CompressedTable over input (spec §4.7): a single dense
// state id replaces the NFA simulator's state-set bitmap, so each step is
// one table lookup instead of a closure recomputation.
type Simulator struct {
	table *CompressedTable
}

// NewSimulator builds a simulator over a compressed DFA table.
func NewSimulator(t *CompressedTable) *Simulator {
	return &Simulator{table: t}
}

// MatchAt returns the length of the longest prefix of input[start:] accepted
// by the DFA, or 0 if no non-empty prefix is accepted. Matching halts on the
// reserved code unit 0, mirroring the NFA simulator's malformed-input
// truncation (spec §7).
func (s *Simulator) MatchAt(input []byte, start int) int {
	state := s.table.Start
	lastAccept := 0
	if s.table.Accept[state] {
		lastAccept = 0
	}

	for i := start; i < len(input); i++ {
		b := input[i]
		if b == 0 {
			break
		}
		cls := s.table.EC[b]
		next := s.table.Next[state][cls]
		if next == InvalidState {
			break
		}
		state = next
		if s.table.Accept[state] {
			lastAccept = i - start + 1
		}
	}

	return lastAccept
}
