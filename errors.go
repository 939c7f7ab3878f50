package rex

import "fmt"

// Stage names the compilation phase that failed, for CompileError.
type Stage string

const (
	StageParse   Stage = "parse"
	StageNFA     Stage = "nfa"
	StageDFA     Stage = "dfa"
	StageLiteral Stage = "literal"
)

// CompileError reports a failure during pattern compilation, naming the
// stage (parse, NFA build, DFA build, literal prefilter build) at which it
// occurred and wrapping the underlying cause.
type CompileError struct {
	Pattern string
	Stage   Stage
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("rex: compiling %q failed at %s: %v", e.Pattern, e.Stage, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// ResourceError reports that a configured resource limit (Config.MaxStates,
// Config.MaxRecursionDepth) was exceeded during compilation. An oversized
// class body (Config.MaxClassBody) is reported as a CompileError at
// StageParse instead.
type ResourceError struct {
	Pattern string
	Limit   string
	Err     error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("rex: compiling %q exceeded resource limit %s: %v", e.Pattern, e.Limit, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }
