package rex

import (
	"reflect"
	"testing"
)

func matches(t *testing.T, re *Engine, input string) []Match {
	t.Helper()
	return re.FindAll([]byte(input))
}

func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		pattern, input string
		want           []Match
	}{
		{"a", "banana", []Match{{1, 1}, {3, 1}, {5, 1}}},
		{"ab", "cababc", []Match{{1, 2}, {3, 2}}},
		{"a|b", "cab", []Match{{1, 1}, {2, 1}}},
		{"a.b", "aXbaYb", []Match{{0, 3}, {3, 3}}},
		{"a*", "aaabaa", []Match{{0, 3}, {4, 2}}},
		{"(ab)+c", "ababcXabc", []Match{{0, 5}, {6, 3}}},
		{"[0-9]+", "a42b7c", []Match{{1, 2}, {4, 1}}},
		{"[^abc]", "abXcY", []Match{{2, 1}, {4, 1}}},
	}
	for _, c := range cases {
		re, err := Compile(c.pattern)
		if err != nil {
			t.Fatalf("Compile(%q): %v", c.pattern, err)
		}
		got := matches(t, re, c.input)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("FindAll(%q, %q) = %v, want %v", c.pattern, c.input, got, c.want)
		}
	}
}

func TestNFAAndDFAAgree(t *testing.T) {
	patterns := []string{"a", "ab", "a|b", "a.b", "a*", "a+", "ab?c", "(ab)+c", "[0-9]+", "[^abc]"}
	inputs := []string{"banana", "cababc", "cab", "aXbaYb", "aaabaa", "a42b7c", "abXcY", ""}

	for _, p := range patterns {
		nfaOnly, err := CompileWithConfig(p, Config{MaxClassBody: 255, MaxStates: 1 << 20, MaxRecursionDepth: 10000, Strategy: StrategyNFA, DisableLiteralPrefilter: true})
		if err != nil {
			t.Fatalf("CompileWithConfig(%q) NFA: %v", p, err)
		}
		dfaOnly, err := CompileWithConfig(p, Config{MaxClassBody: 255, MaxStates: 1 << 20, MaxRecursionDepth: 10000, Strategy: StrategyDFA, DisableLiteralPrefilter: true})
		if err != nil {
			t.Fatalf("CompileWithConfig(%q) DFA: %v", p, err)
		}
		for _, in := range inputs {
			a := matches(t, nfaOnly, in)
			b := matches(t, dfaOnly, in)
			if !reflect.DeepEqual(a, b) {
				t.Errorf("pattern %q input %q: NFA=%v DFA=%v", p, in, a, b)
			}
		}
	}
}

func TestFindAllZeroLengthSuppressedButAdvances(t *testing.T) {
	re, err := Compile("a*")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	got := matches(t, re, "bbb")
	if len(got) != 0 {
		t.Fatalf("expected no reported matches for all-zero-length scan, got %v", got)
	}
}

func TestIsMatch(t *testing.T) {
	re := MustCompile("[0-9]+")
	if !re.IsMatch([]byte("x42y")) {
		t.Fatal("expected a match")
	}
	if re.IsMatch([]byte("xyz")) {
		t.Fatal("expected no match")
	}
}

func TestLiteralPrefilterAgreesWithGeneralPath(t *testing.T) {
	withPrefilter, err := Compile("ab")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	withoutPrefilter, err := CompileWithConfig("ab", Config{MaxClassBody: 255, MaxStates: 1 << 20, MaxRecursionDepth: 10000, DisableLiteralPrefilter: true})
	if err != nil {
		t.Fatalf("CompileWithConfig: %v", err)
	}
	in := "cababc"
	a := matches(t, withPrefilter, in)
	b := matches(t, withoutPrefilter, in)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("literal prefilter disagrees with general path: %v vs %v", a, b)
	}
}

func TestCompileParseError(t *testing.T) {
	_, err := Compile("a**")
	if err == nil {
		t.Fatal("expected a parse error for stacked quantifiers")
	}
	var ce *CompileError
	if !asCompileError(err, &ce) {
		t.Fatalf("expected *CompileError, got %T", err)
	}
	if ce.Stage != StageParse {
		t.Fatalf("got stage %v, want %v", ce.Stage, StageParse)
	}
}

func asCompileError(err error, target **CompileError) bool {
	ce, ok := err.(*CompileError)
	if !ok {
		return false
	}
	*target = ce
	return true
}

func TestMustCompilePanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustCompile to panic on an invalid pattern")
		}
	}()
	MustCompile("a**")
}

func TestEngineDiagnostics(t *testing.T) {
	re := MustCompile("a|b")
	if re.PatternSource() != "a|b" {
		t.Fatalf("got %q, want %q", re.PatternSource(), "a|b")
	}
	if re.NFAStates() == 0 {
		t.Fatal("expected a non-zero NFA state count")
	}
	if re.DFAStates() == 0 {
		t.Fatal("expected a non-zero DFA state count by default")
	}
	if re.String() == "" {
		t.Fatal("expected a non-empty diagnostic string")
	}
}

func TestDisableDFAFallsBackToNFA(t *testing.T) {
	re, err := CompileWithConfig("a|b", Config{MaxClassBody: 255, MaxStates: 1 << 20, MaxRecursionDepth: 10000, DisableDFA: true})
	if err != nil {
		t.Fatalf("CompileWithConfig: %v", err)
	}
	if re.DFAStates() != 0 {
		t.Fatalf("expected no DFA states, got %d", re.DFAStates())
	}
	got := matches(t, re, "cab")
	want := []Match{{1, 1}, {2, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
