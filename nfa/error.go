package nfa

import "errors"

// Sentinel errors for NFA construction, following the same convention as
// the parser package: a small set of errors.New sentinels, wrapped with
// positional/size context where useful.
var (
	// ErrTooComplex indicates the pattern produced more states than
	// Config.MaxStates allows.
	ErrTooComplex = errors.New("pattern too complex: NFA state limit exceeded")

	// ErrRecursionLimit indicates the syntax tree was deeper than
	// Config.MaxRecursionDepth, which would otherwise recurse the builder
	// past a safe stack depth (spec §9: "pattern depth is bounded by
	// pattern length; converting to an explicit stack is optional").
	ErrRecursionLimit = errors.New("pattern too deeply nested")
)
