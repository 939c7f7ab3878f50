package dfa

import "errors"

// ErrTooManyStates indicates subset construction produced more DFA states
// than Limits.MaxStates allows — the classical exponential-blowup failure
// mode of powerset construction (spec §7: ResourceError during
// compilation).
var ErrTooManyStates = errors.New("subset construction exceeded DFA state limit")
