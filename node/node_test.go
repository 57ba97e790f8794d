package node

import "testing"

func mustMatch(t *testing.T, n Node, source string, opts ...EvalOption) string {
	t.Helper()
	m, err := Evaluate(n, []byte(source), opts...)
	if err != nil {
		t.Fatalf("Evaluate(%q) returned error: %v", source, err)
	}
	return m.String()
}

func mustNotMatch(t *testing.T, n Node, source string) {
	t.Helper()
	_, err := Evaluate(n, []byte(source))
	if err == nil {
		t.Fatalf("Evaluate(%q) unexpectedly matched", source)
	}
}

func TestLiteralCaseSensitivity(t *testing.T) {
	insensitive := NewLiteral([]byte("abc"), false)
	if got := mustMatch(t, insensitive, "AbC"); got != "AbC" {
		t.Fatalf("got %q", got)
	}

	sensitive := NewLiteral([]byte("abc"), true)
	mustNotMatch(t, sensitive, "AbC")
	if got := mustMatch(t, sensitive, "abc"); got != "abc" {
		t.Fatalf("got %q", got)
	}
}

func TestRangedLiteral(t *testing.T) {
	digit := NewRangedLiteral('0', '9')
	if got := mustMatch(t, digit, "5"); got != "5" {
		t.Fatalf("got %q", got)
	}
	mustNotMatch(t, digit, "a")
	mustNotMatch(t, digit, "")
}

// foo = 2DIGIT on "42" -> success, root name foo, two DIGIT children.
func TestConcatenationTwoDigits(t *testing.T) {
	digit := NewRangedLiteral('0', '9')
	digit.SetName("DIGIT")
	foo := NewConcatenation(digit, digit.Clone())
	foo.SetName("foo")

	m, err := Evaluate(foo, []byte("42"))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if m.Name != "foo" {
		t.Fatalf("root name = %q, want foo", m.Name)
	}
	if len(m.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(m.Children))
	}
	if string(m.Children[0].Value()) != "4" || string(m.Children[1].Value()) != "2" {
		t.Fatalf("unexpected child values: %q %q", m.Children[0].Value(), m.Children[1].Value())
	}
	for _, c := range m.Children {
		if c.Name != "DIGIT" {
			t.Fatalf("child name = %q, want DIGIT", c.Name)
		}
	}
}

func TestConcatenationFlattensAnonymousChildren(t *testing.T) {
	a := NewLiteral([]byte("a"), true)
	b := NewLiteral([]byte("b"), true)
	c := NewLiteral([]byte("c"), true)

	// ((a b) c) with the inner concatenation left unnamed should produce
	// three flat children, not a nested one.
	inner := NewConcatenation(a, b)
	outer := NewConcatenation(inner, c)
	outer.SetName("abc")

	m, err := Evaluate(outer, []byte("abc"))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(m.Children) != 3 {
		t.Fatalf("children = %d, want 3 (flattened)", len(m.Children))
	}
}

// foo = 1*3"a" on "aaaa" -> no match (greedy 3 leaves one over);
// on "aaa" -> success with three literal children.
func TestRepetitionGreedyFullInputConstraint(t *testing.T) {
	a := NewLiteral([]byte("a"), true)
	foo := NewRepetition(a, 1, 3)
	foo.SetName("foo")

	mustNotMatch(t, foo, "aaaa")

	m, err := Evaluate(foo, []byte("aaa"))
	if err != nil {
		t.Fatalf("Evaluate(aaa): %v", err)
	}
	if len(m.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(m.Children))
	}
}

func TestRepetitionMinZeroYieldsEmptyMatch(t *testing.T) {
	a := NewLiteral([]byte("a"), true)
	star := NewRepetition(a, 0, Unbounded)
	star.SetName("star")

	m, err := Evaluate(star, []byte(""))
	if err != nil {
		t.Fatalf("Evaluate(\"\"): %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("expected zero-length match, got len %d", m.Len())
	}
}

func TestOptionIsRepetitionZeroOne(t *testing.T) {
	a := NewLiteral([]byte("a"), true)
	opt := NewOption(a)
	if opt.Min != 0 || opt.Max != 1 {
		t.Fatalf("Option should be Repetition{0,1}, got {%d,%d}", opt.Min, opt.Max)
	}
	if opt.Name() != NameOption {
		t.Fatalf("Option default name = %q, want %q", opt.Name(), NameOption)
	}
}

func TestAlternationOrderAndNaming(t *testing.T) {
	first := NewLiteral([]byte("a"), true)
	second := NewLiteral([]byte("b"), true)
	alt := NewAlternation(first, second)
	alt.SetName("ab")

	for _, src := range []string{"a", "b"} {
		m, err := Evaluate(alt, []byte(src))
		if err != nil {
			t.Fatalf("Evaluate(%q): %v", src, err)
		}
		if m.Name != "ab" {
			t.Fatalf("name = %q, want ab", m.Name)
		}
		if len(m.Children) != 1 {
			t.Fatalf("children = %d, want 1", len(m.Children))
		}
	}

	mustNotMatch(t, alt, "c")
}

func TestAlternationUnnamedPassesThrough(t *testing.T) {
	first := NewLiteral([]byte("a"), true)
	second := NewLiteral([]byte("b"), true)
	alt := NewAlternation(first, second) // anonymous

	m, err := Evaluate(alt, []byte("a"))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if m.Name != NameLiteral {
		t.Fatalf("unnamed alternation should pass through inner match name, got %q", m.Name)
	}
}

func TestNumericRangeAndConcatenationCRLF(t *testing.T) {
	// %x30-39 matches any single byte 0x30..0x39
	hexRange := NewRangedLiteral(0x30, 0x39)
	if got := mustMatch(t, hexRange, "5"); got != "5" {
		t.Fatalf("got %q", got)
	}

	// %d13.10 matches exactly CRLF (two-byte sequence).
	cr := NewLiteral([]byte{13}, true)
	lf := NewLiteral([]byte{10}, true)
	crlf := NewConcatenation(cr, lf)
	if got := mustMatch(t, crlf, "\r\n"); got != "\r\n" {
		t.Fatalf("got %q", got)
	}
}

func TestBacktrackingLimitReached(t *testing.T) {
	a := NewLiteral([]byte("a"), true)
	star := NewRepetition(a, 0, Unbounded)
	star.SetName("star")

	// Force a backtracking budget of 1: the greedy accumulation over a
	// long run of "a"s, followed by the mandatory backtrack to satisfy
	// full-input consumption against a trailing non-"a" byte, will reach
	// it on the first backtrack.
	source := []byte("aaaaaaaaaab")
	_, err := Evaluate(star, source, WithBacktrackLimit(1))
	if err == nil {
		t.Fatalf("expected backtracking limit error")
	}
	var btErr *BacktrackingLimitError
	if !asBacktrackingLimitError(err, &btErr) {
		t.Fatalf("expected *BacktrackingLimitError, got %v (%T)", err, err)
	}
}

func asBacktrackingLimitError(err error, target **BacktrackingLimitError) bool {
	if e, ok := err.(*BacktrackingLimitError); ok {
		*target = e
		return true
	}
	return false
}

func TestBudgetMonotonicity(t *testing.T) {
	a := NewLiteral([]byte("a"), true)
	star := NewRepetition(a, 0, Unbounded)
	star.SetName("star")

	source := []byte("aaaaaaaaaab")

	_, smallErr := Evaluate(star, source, WithBacktrackLimit(1))
	if smallErr == nil {
		t.Fatalf("expected failure with a tiny backtracking limit")
	}

	_, largeErr := Evaluate(star, source, WithoutBacktrackLimit())
	if largeErr == nil {
		t.Fatalf("unlimited backtracking should still fail (no 'a's exhaust before hitting 'b'), want NoMatchError")
	}
	if _, ok := largeErr.(*NoMatchError); !ok {
		t.Fatalf("enabling a larger/unlimited budget should turn a budget failure into NoMatch, not stay a budget error; got %T", largeErr)
	}
}

func TestEvaluateWithoutErrorOnNoMatch(t *testing.T) {
	a := NewLiteral([]byte("a"), true)
	m, err := Evaluate(a, []byte("b"), WithoutErrorOnNoMatch())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if m != nil {
		t.Fatalf("expected nil match, got %v", m)
	}
}
