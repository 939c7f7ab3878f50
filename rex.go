// Package rex implements a regular-expression matching engine following
// the classical Thompson/Rabin–Scott pipeline: a recursive-descent parser
// produces a syntax tree, Thompson's construction converts it into an NFA,
// subset construction determinizes the NFA into a DFA, and a
// column-compression pass builds a table-driven scanner comparable to
// those emitted by classical lexer generators.
//
// Example:
//
//	re, err := rex.Compile("[0-9]+")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, m := range re.FindAll([]byte("a42b7c")) {
//		fmt.Println(m.Offset, m.Length)
//	}
package rex

import (
	"fmt"

	"github.com/coregx/rex/dfa"
	"github.com/coregx/rex/literal"
	"github.com/coregx/rex/nfa"
	"github.com/coregx/rex/parser"
)

// Strategy selects which compiled simulator an Engine runs at match time.
type Strategy int

const (
	// StrategyAuto prefers the DFA simulator and falls back to the NFA
	// simulator only when DFA construction was skipped or failed.
	StrategyAuto Strategy = iota
	// StrategyNFA forces the NFA simulator even when a DFA was built.
	StrategyNFA
	// StrategyDFA forces the DFA simulator; Compile fails with a
	// ResourceError if DFA construction did not succeed.
	StrategyDFA
)

// Config controls compilation limits and simulator selection.
//
// Example:
//
//	cfg := rex.DefaultConfig()
//	cfg.DisableDFA = true // force NFA-only execution
//	re, err := rex.CompileWithConfig(pattern, cfg)
type Config struct {
	// MaxClassBody caps the number of entries in a single character class
	// body; a single code unit or an "X-Y" range each count as one entry.
	// Default: 255.
	MaxClassBody int

	// MaxStates caps the number of states the NFA builder and the DFA
	// subset constructor may each allocate for one pattern. Default:
	// 1<<20.
	MaxStates int

	// MaxRecursionDepth caps the NFA builder's recursion depth over the
	// syntax tree, guarding against stack overflow on deeply nested trees.
	// The parser's own recursion is not bounded by it. Default: 10000.
	MaxRecursionDepth int

	// Strategy selects which simulator FindAll and IsMatch run. Default:
	// StrategyAuto.
	Strategy Strategy

	// DisableDFA skips DFA construction entirely, leaving the engine to
	// run on the NFA simulator; combined with StrategyDFA, compilation
	// fails with a ResourceError. Default: false.
	DisableDFA bool

	// DisableLiteralPrefilter skips the Aho-Corasick complete-prefilter
	// path for patterns that compile to a single fixed literal. Default:
	// false.
	DisableLiteralPrefilter bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxClassBody:      255,
		MaxStates:         1 << 20,
		MaxRecursionDepth: 10000,
		Strategy:          StrategyAuto,
	}
}

// Match reports the location of one occurrence: the byte offset into the
// searched input and the match length in bytes.
type Match struct {
	Offset int
	Length int
}

// Engine is a compiled pattern: a syntax tree, the NFA it was built into,
// an optional determinized-and-compressed DFA table, and an optional
// complete literal prefilter. An Engine owns all of these artifacts for
// its lifetime. The NFA simulator it holds reuses two scratch bitmaps on
// every match, so an Engine that matches through the NFA simulator is not
// safe for concurrent use (FindAll, IsMatch) by multiple goroutines.
type Engine struct {
	pattern   string
	tree      *parser.Node
	automaton *nfa.NFA
	nfaSim    *nfa.Simulator

	dfaTable *dfa.CompressedTable
	dfaSim   *dfa.Simulator
	dfaSize  int

	prefilter *literal.Prefilter

	strategy Strategy
}

// Compile parses and compiles pattern using DefaultConfig.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics on error. Intended for
// package-level pattern variables whose correctness is established at
// development time.
func MustCompile(pattern string) *Engine {
	e, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return e
}

// CompileWithConfig parses and compiles pattern under cfg, building an NFA
// unconditionally and, unless cfg.DisableDFA is set, a determinized and
// compressed DFA as well. Compilation fails atomically: on any error no
// Engine is returned and every partial artifact is discarded (spec §7's
// failure-path release rule — in a garbage-collected runtime this is
// simply "don't retain the partial state").
func CompileWithConfig(pattern string, cfg Config) (*Engine, error) {
	tree, err := parser.Parse(pattern, parser.Limits{MaxClassBody: cfg.MaxClassBody})
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Stage: StageParse, Err: err}
	}

	compileLimits := nfa.CompileLimits{
		MaxStates:         cfg.MaxStates,
		MaxRecursionDepth: cfg.MaxRecursionDepth,
	}
	automaton, err := nfa.Compile(tree, compileLimits)
	if err != nil {
		switch err {
		case nfa.ErrTooComplex:
			return nil, &ResourceError{Pattern: pattern, Limit: "MaxStates", Err: err}
		case nfa.ErrRecursionLimit:
			return nil, &ResourceError{Pattern: pattern, Limit: "MaxRecursionDepth", Err: err}
		default:
			return nil, &CompileError{Pattern: pattern, Stage: StageNFA, Err: err}
		}
	}

	e := &Engine{
		pattern:   pattern,
		tree:      tree,
		automaton: automaton,
		nfaSim:    nfa.NewSimulator(automaton),
		strategy:  cfg.Strategy,
	}

	if !cfg.DisableDFA {
		d, err := dfa.Build(automaton, dfa.Limits{MaxStates: cfg.MaxStates})
		if err != nil {
			if cfg.Strategy == StrategyDFA {
				return nil, &ResourceError{Pattern: pattern, Limit: "MaxStates", Err: err}
			}
			// Auto/NFA strategies tolerate DFA construction failure: the
			// engine simply runs on the NFA simulator.
		} else {
			e.dfaTable = dfa.Compress(d)
			e.dfaSim = dfa.NewSimulator(e.dfaTable)
			e.dfaSize = d.States()
		}
	} else if cfg.Strategy == StrategyDFA {
		return nil, &ResourceError{Pattern: pattern, Limit: "MaxStates", Err: dfa.ErrTooManyStates}
	}

	if !cfg.DisableLiteralPrefilter {
		if lit, ok := literal.Extract(tree); ok {
			pf, err := literal.Build(lit)
			if err != nil {
				return nil, &CompileError{Pattern: pattern, Stage: StageLiteral, Err: err}
			}
			e.prefilter = pf
		}
	}

	return e, nil
}

// PatternSource returns the original pattern text the Engine was compiled
// from.
func (e *Engine) PatternSource() string { return e.pattern }

// String returns a short diagnostic summary.
func (e *Engine) String() string {
	dfaStates := "none"
	if e.dfaTable != nil {
		dfaStates = fmt.Sprintf("%d", e.dfaSize)
	}
	return fmt.Sprintf("Engine{pattern: %q, nfaStates: %d, dfaStates: %s}", e.pattern, e.automaton.States(), dfaStates)
}

// NFAStates returns the number of states in the compiled NFA.
func (e *Engine) NFAStates() int { return e.automaton.States() }

// DFAStates returns the number of states in the compiled DFA, or 0 if no
// DFA was built.
func (e *Engine) DFAStates() int { return e.dfaSize }

// usesDFA reports whether matchAt should run the DFA simulator.
func (e *Engine) usesDFA() bool {
	if e.dfaSim == nil {
		return false
	}
	return e.strategy != StrategyNFA
}

// matchAt returns the length of the longest match starting exactly at
// offset start, or 0 if none.
func (e *Engine) matchAt(input []byte, start int) int {
	if e.usesDFA() {
		return e.dfaSim.MatchAt(input, start)
	}
	return e.nfaSim.MatchAt(input, start)
}

// IsMatch reports whether the pattern occurs anywhere in input.
func (e *Engine) IsMatch(input []byte) bool {
	if e.prefilter != nil {
		return e.prefilter.IsMatch(input)
	}
	for p := 0; p <= len(input); p++ {
		if e.matchAt(input, p) > 0 {
			return true
		}
	}
	return false
}

// FindAll returns every non-overlapping, leftmost-longest match in input
// (spec §4.8). Matching starts at offset 0 and, after each match (or each
// position with no match), advances past it; zero-length matches are never
// reported and never stall the cursor — it advances by one instead.
func (e *Engine) FindAll(input []byte) []Match {
	if e.prefilter != nil {
		return e.findAllLiteral(input)
	}
	var matches []Match
	p := 0
	for p <= len(input) {
		n := e.matchAt(input, p)
		if n > 0 {
			matches = append(matches, Match{Offset: p, Length: n})
			p += n
			continue
		}
		p++
	}
	return matches
}

// findAllLiteral implements FindAll for patterns with a complete literal
// prefilter: every prefilter hit is itself a final, unverified match.
func (e *Engine) findAllLiteral(input []byte) []Match {
	var matches []Match
	p := 0
	for {
		start, end, ok := e.prefilter.Find(input, p)
		if !ok {
			break
		}
		if end == start {
			p = start + 1
			continue
		}
		matches = append(matches, Match{Offset: start, Length: end - start})
		p = end
	}
	return matches
}
