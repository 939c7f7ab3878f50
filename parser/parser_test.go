package parser

import "testing"

func mustParse(t *testing.T, pattern string) *Node {
	t.Helper()
	node, err := Parse(pattern, DefaultLimits())
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", pattern, err)
	}
	return node
}

func TestParseChar(t *testing.T) {
	n := mustParse(t, "a")
	if n.Kind != KindChar || n.Char != 'a' || n.Op != OpNone {
		t.Fatalf("got %+v", n)
	}
}

func TestParseConcat(t *testing.T) {
	n := mustParse(t, "ab")
	if n.Kind != KindConcat {
		t.Fatalf("expected Concat root, got %v", n.Kind)
	}
	if n.Left.Char != 'a' || n.Right.Char != 'b' {
		t.Fatalf("got left=%v right=%v", n.Left, n.Right)
	}
}

func TestParseAlt(t *testing.T) {
	n := mustParse(t, "a|b")
	if n.Kind != KindAlt {
		t.Fatalf("expected Alt root, got %v", n.Kind)
	}
	if n.Left.Char != 'a' || n.Right.Char != 'b' {
		t.Fatalf("got left=%v right=%v", n.Left, n.Right)
	}
}

func TestConcatLeftAssociative(t *testing.T) {
	n := mustParse(t, "abc")
	// ((a.b).c)
	if n.Kind != KindConcat || n.Right.Char != 'c' {
		t.Fatalf("expected outer concat ending in c, got %+v", n)
	}
	inner := n.Left
	if inner.Kind != KindConcat || inner.Left.Char != 'a' || inner.Right.Char != 'b' {
		t.Fatalf("expected left-leaning spine, got %+v", inner)
	}
}

func TestPostfixBindsToAtom(t *testing.T) {
	n := mustParse(t, "ab*")
	if n.Kind != KindConcat {
		t.Fatalf("expected Concat root, got %+v", n)
	}
	if n.Right.Char != 'b' || n.Right.Op != OpStar {
		t.Fatalf("expected '*' bound to 'b', got %+v", n.Right)
	}
	if n.Left.Op != OpNone {
		t.Fatalf("expected 'a' to have no operator, got %+v", n.Left)
	}
}

func TestGroupUnwraps(t *testing.T) {
	n := mustParse(t, "(ab)+c")
	if n.Kind != KindConcat {
		t.Fatalf("expected Concat root, got %+v", n)
	}
	group := n.Left
	if group.Kind != KindConcat || group.Op != OpPlus {
		t.Fatalf("expected group concat with '+' attached, got %+v", group)
	}
	if n.Right.Char != 'c' {
		t.Fatalf("expected trailing 'c', got %+v", n.Right)
	}
}

func TestWildcardIsCharDot(t *testing.T) {
	n := mustParse(t, ".")
	if n.Kind != KindChar || n.Char != '.' || !n.IsWildcard() {
		t.Fatalf("expected wildcard Char node, got %+v", n)
	}
}

func TestClassRange(t *testing.T) {
	n := mustParse(t, "[0-9]")
	if n.Kind != KindClass {
		t.Fatalf("expected Class node, got %v", n.Kind)
	}
	if n.Class.Negated {
		t.Fatal("expected non-negated class")
	}
	for c := byte('0'); c <= '9'; c++ {
		if !n.Class.Contains(c) {
			t.Fatalf("expected class to contain %q", c)
		}
	}
	if n.Class.Contains('a') {
		t.Fatal("expected class to exclude 'a'")
	}
}

func TestClassNegated(t *testing.T) {
	n := mustParse(t, "[^abc]")
	if !n.Class.Negated {
		t.Fatal("expected negated class")
	}
	if n.Class.Contains('a') || n.Class.Contains('b') || n.Class.Contains('c') {
		t.Fatal("negated class should exclude listed members")
	}
	if !n.Class.Contains('x') {
		t.Fatal("negated class should include everything else")
	}
}

func TestClassDashAsLiteralBeforeBracket(t *testing.T) {
	n := mustParse(t, "[a-]")
	if !n.Class.Contains('a') || !n.Class.Contains('-') {
		t.Fatalf("expected both 'a' and '-' as literal members")
	}
}

func TestClassInvalidRangeIsError(t *testing.T) {
	_, err := Parse("[z-a]", DefaultLimits())
	if err == nil {
		t.Fatal("expected error for inverted range")
	}
}

func TestMissingCloseParenTolerated(t *testing.T) {
	n := mustParse(t, "(ab")
	if n.Kind != KindConcat || n.Left.Char != 'a' || n.Right.Char != 'b' {
		t.Fatalf("expected concat(a,b) despite missing ')', got %+v", n)
	}
}

func TestMissingCloseBracketTolerated(t *testing.T) {
	n := mustParse(t, "[ab")
	if n.Kind != KindClass || !n.Class.Contains('a') || !n.Class.Contains('b') {
		t.Fatalf("expected class{a,b} despite missing ']', got %+v", n)
	}
}

func TestStrayCloseParenSkipped(t *testing.T) {
	n := mustParse(t, "a)b")
	if n.Kind != KindConcat || n.Left.Char != 'a' || n.Right.Char != 'b' {
		t.Fatalf("expected concat(a,b) with stray ')' skipped, got %+v", n)
	}
}

func TestStackedQuantifierIsError(t *testing.T) {
	if _, err := Parse("a**", DefaultLimits()); err == nil {
		t.Fatal("expected error for stacked quantifier 'a**'")
	}
}

func TestStackedQuantifierOnGroupIsError(t *testing.T) {
	if _, err := Parse("(a*)+", DefaultLimits()); err == nil {
		t.Fatal("expected error for '(a*)+' since the group already carries '*'")
	}
}

func TestDanglingQuantifierIsError(t *testing.T) {
	if _, err := Parse("*a", DefaultLimits()); err == nil {
		t.Fatal("expected error for leading '*' with no atom")
	}
}

func TestEmptyPatternMatchesEmptyString(t *testing.T) {
	node, err := Parse("", DefaultLimits())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node != nil {
		t.Fatalf("expected nil tree for empty pattern, got %+v", node)
	}
}

func TestClassTooLongIsError(t *testing.T) {
	limits := Limits{MaxClassBody: 2}
	if _, err := Parse("[abc]", limits); err == nil {
		t.Fatal("expected ErrClassTooLong")
	}
}
