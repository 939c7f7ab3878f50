package nfa

import "github.com/coregx/rex/parser"

// CompileLimits bounds NFA construction, mirroring the teacher engine's
// CompilerConfig pattern (one small limits struct per compiled pattern,
// with no state surviving across compilations).
type CompileLimits struct {
	// MaxStates caps the number of NFA states Compile will allocate. Zero
	// means unbounded. Tripping this aborts compilation with ErrTooComplex
	// (spec §7: ResourceError on allocation failure during compilation).
	MaxStates int

	// MaxRecursionDepth caps the syntax-tree depth Compile will walk.
	// Zero means unbounded.
	MaxRecursionDepth int
}

// DefaultCompileLimits returns the limits this engine applies unless a
// caller overrides them via the top-level Config.
func DefaultCompileLimits() CompileLimits {
	return CompileLimits{MaxStates: 1 << 20, MaxRecursionDepth: 10000}
}

type compiler struct {
	builder *Builder
	limits  CompileLimits
	depth   int
}

// Compile walks tree post-order and emits an NFA by Thompson's construction
// (spec §4.3). A nil tree (the parser's representation of a pattern that
// matches only the empty string) compiles to a single accepting state with
// no transitions.
func Compile(tree *parser.Node, limits CompileLimits) (*NFA, error) {
	b := NewBuilder()
	if tree == nil {
		return b.Finalize(b.Empty()), nil
	}

	c := &compiler{builder: b, limits: limits}
	root, err := c.build(tree)
	if err != nil {
		return nil, err
	}
	return b.Finalize(root), nil
}

func (c *compiler) build(n *parser.Node) (Fragment, error) {
	c.depth++
	defer func() { c.depth-- }()
	if c.limits.MaxRecursionDepth > 0 && c.depth > c.limits.MaxRecursionDepth {
		return Fragment{}, ErrRecursionLimit
	}

	var frag Fragment
	switch n.Kind {
	case parser.KindChar:
		frag = c.builder.Char(n.Char)

	case parser.KindClass:
		frag = c.builder.Class(n.Class)

	case parser.KindConcat:
		left, err := c.build(n.Left)
		if err != nil {
			return Fragment{}, err
		}
		right, err := c.build(n.Right)
		if err != nil {
			return Fragment{}, err
		}
		frag = c.builder.Concat(left, right)

	case parser.KindAlt:
		left, err := c.build(n.Left)
		if err != nil {
			return Fragment{}, err
		}
		right, err := c.build(n.Right)
		if err != nil {
			return Fragment{}, err
		}
		frag = c.builder.Alt(left, right)
	}

	switch n.Op {
	case parser.OpStar:
		frag = c.builder.Star(frag)
	case parser.OpPlus:
		frag = c.builder.Plus(frag)
	case parser.OpOptional:
		frag = c.builder.Optional(frag)
	}

	if c.limits.MaxStates > 0 && c.builder.States() > c.limits.MaxStates {
		return Fragment{}, ErrTooComplex
	}
	return frag, nil
}
