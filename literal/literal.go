// Package literal recognizes patterns that compile to a single fixed byte
// string and gives them a complete prefilter: an Aho-Corasick automaton
// whose match IS the regex match, bypassing the NFA/DFA simulators
// entirely (mirrors github.com/coregx/coregex's prefilter.Prefilter,
// where IsComplete() lets the engine trust the prefilter's own match span).
package literal

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/rex/parser"
)

// Extract walks tree and returns the literal byte string it represents, and
// true, if tree is a pure concatenation of unquantified single-byte
// characters with no alternation, class, or wildcard anywhere in it. Such a
// tree matches exactly one string, so an exact-substring search subsumes
// the DFA/NFA simulators for it.
func Extract(tree *parser.Node) ([]byte, bool) {
	if tree == nil {
		return nil, false
	}
	var buf []byte
	if !collect(tree, &buf) {
		return nil, false
	}
	return buf, true
}

func collect(n *parser.Node, buf *[]byte) bool {
	if n.Op != parser.OpNone {
		return false
	}
	switch n.Kind {
	case parser.KindChar:
		if n.IsWildcard() {
			return false
		}
		*buf = append(*buf, n.Char)
		return true
	case parser.KindConcat:
		return collect(n.Left, buf) && collect(n.Right, buf)
	default:
		return false
	}
}

// Prefilter wraps a single-literal Aho-Corasick automaton. Because the
// underlying pattern has exactly one member, every automaton hit is a
// complete regex match: there is nothing left for a simulator to verify.
type Prefilter struct {
	auto    *ahocorasick.Automaton
	pattern []byte
}

// Build constructs a complete prefilter for the literal byte string s.
func Build(s []byte) (*Prefilter, error) {
	builder := ahocorasick.NewBuilder()
	builder.AddPattern(s)
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Prefilter{auto: auto, pattern: s}, nil
}

// IsComplete always reports true: a literal-prefilter hit is itself the
// final match, never merely a candidate requiring simulator confirmation.
func (p *Prefilter) IsComplete() bool { return true }

// Find returns the start and end offsets of the first occurrence of the
// literal at or after at, or ok == false if there is none.
func (p *Prefilter) Find(haystack []byte, at int) (start, end int, ok bool) {
	if at >= len(haystack) {
		if len(p.pattern) == 0 {
			return at, at, true
		}
		return 0, 0, false
	}
	m := p.auto.Find(haystack, at)
	if m == nil {
		return 0, 0, false
	}
	return m.Start, m.End, true
}

// IsMatch reports whether the literal occurs anywhere in haystack.
func (p *Prefilter) IsMatch(haystack []byte) bool {
	return p.auto.IsMatch(haystack)
}
