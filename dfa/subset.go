package dfa

import (
	"github.com/coregx/rex/internal/bitset"
	"github.com/coregx/rex/nfa"
)

// Limits bounds subset construction.
type Limits struct {
	// MaxStates caps the number of DFA states Build will allocate. Zero
	// means unbounded.
	MaxStates int
}

// Build determinizes n into a DFA via subset (powerset) construction (spec
// §4.4). DFA-state identity is defined solely by NFA-state-set membership
// equality; a linear scan would work per spec's "the states are few" note,
// but this implementation keys states by their membership bitmap so
// dedup lookup stays proportional to the number of distinct sets rather
// than quadratic in them.
func Build(n *nfa.NFA, limits Limits) (*DFA, error) {
	d := &DFA{}
	seen := make(map[string]StateID)

	start := bitset.New(n.States())
	start.Set(int(n.Start()))
	n.EpsilonClosure(start)

	startID := d.addState(start, membershipAccepts(n, start))
	seen[start.Key()] = startID
	d.start = startID

	queue := []StateID{startID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		membership := d.states[id].Membership

		for c := 1; c <= 255; c++ {
			moved := bitset.New(n.States())
			membership.Bits(func(sid int) {
				for _, t := range n.Transitions(nfa.StateID(sid)) {
					if t.Symbol == nfa.SymEpsilon {
						continue
					}
					if t.Symbol == nfa.SymWildcard || int(t.Symbol) == c {
						moved.Set(int(t.To))
					}
				}
			})
			if moved.IsEmpty() {
				continue
			}
			n.EpsilonClosure(moved)

			key := moved.Key()
			target, ok := seen[key]
			if !ok {
				if limits.MaxStates > 0 && len(d.states) >= limits.MaxStates {
					return nil, ErrTooManyStates
				}
				target = d.addState(moved, membershipAccepts(n, moved))
				seen[key] = target
				queue = append(queue, target)
			}
			d.states[id].Next[c] = target
		}
	}

	return d, nil
}

func membershipAccepts(n *nfa.NFA, set *bitset.Bitmap) bool {
	accepts := false
	set.Bits(func(sid int) {
		if !accepts && n.IsMatch(nfa.StateID(sid)) {
			accepts = true
		}
	})
	return accepts
}
