package ruleset_test

import (
	"testing"

	"github.com/coregx/abnf/corerules"
	"github.com/coregx/abnf/node"
	"github.com/coregx/abnf/ruleset"
)

func mustMatch(t *testing.T, n node.Node, source string) string {
	t.Helper()
	m, err := node.Evaluate(n, []byte(source))
	if err != nil {
		t.Fatalf("Evaluate(%q) returned error: %v", source, err)
	}
	return m.String()
}

func mustNotMatch(t *testing.T, n node.Node, source string) {
	t.Helper()
	_, err := node.Evaluate(n, []byte(source))
	if err == nil {
		t.Fatalf("Evaluate(%q) unexpectedly matched", source)
	}
}

func TestInsertAndLookup(t *testing.T) {
	rs := ruleset.New()
	rs.Insert("greeting", node.NewLiteral([]byte("hi"), true))

	n, err := rs.Lookup("greeting")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	mustMatch(t, n, "hi")

	if _, err := rs.Lookup("missing"); err == nil {
		t.Fatal("Lookup(missing) returned nil error")
	}
}

func TestLookupFallsBackToCore(t *testing.T) {
	rs := ruleset.NewWithCore(corerules.Core())
	n, err := rs.Lookup("DIGIT")
	if err != nil {
		t.Fatalf("Lookup(DIGIT): %v", err)
	}
	mustMatch(t, n, "7")
}

func TestHas(t *testing.T) {
	rs := ruleset.New()
	rs.Insert("a", node.NewLiteral([]byte("a"), true))
	if !rs.Has("a") {
		t.Error("Has(a) = false, want true")
	}
	if rs.Has("b") {
		t.Error("Has(b) = true, want false")
	}
}

func TestFromSourceLiteral(t *testing.T) {
	rs, err := ruleset.FromSource([]byte(`greeting = "hello"`+"\r\n"), nil)
	if err != nil {
		t.Fatalf("FromSource: %v", err)
	}
	n, err := rs.Lookup("greeting")
	if err != nil {
		t.Fatalf("Lookup(greeting): %v", err)
	}
	mustMatch(t, n, "hello")
	mustMatch(t, n, "HELLO") // case-insensitive char-val by default
}

func TestFromSourceCaseSensitive(t *testing.T) {
	rs, err := ruleset.FromSource([]byte(`greeting = %s"hello"`+"\r\n"), nil)
	if err != nil {
		t.Fatalf("FromSource: %v", err)
	}
	n, _ := rs.Lookup("greeting")
	mustMatch(t, n, "hello")
	mustNotMatch(t, n, "HELLO")
}

func TestFromSourceConcatenationAndRepetition(t *testing.T) {
	rs, err := ruleset.FromSource([]byte(`word = 1*3ALPHA`+"\r\n"), corerules.Core())
	if err != nil {
		t.Fatalf("FromSource: %v", err)
	}
	n, _ := rs.Lookup("word")
	mustMatch(t, n, "abc")
	mustNotMatch(t, n, "abcd")
	mustNotMatch(t, n, "")
}

func TestFromSourceAlternation(t *testing.T) {
	rs, err := ruleset.FromSource([]byte(`bit = "0" / "1"`+"\r\n"), nil)
	if err != nil {
		t.Fatalf("FromSource: %v", err)
	}
	n, _ := rs.Lookup("bit")
	mustMatch(t, n, "0")
	mustMatch(t, n, "1")
	mustNotMatch(t, n, "2")
}

func TestFromSourceOptionAndGroup(t *testing.T) {
	rs, err := ruleset.FromSource([]byte(`greeting = ("hi" / "hey") [","]`+"\r\n"), nil)
	if err != nil {
		t.Fatalf("FromSource: %v", err)
	}
	n, _ := rs.Lookup("greeting")
	mustMatch(t, n, "hi")
	mustMatch(t, n, "hey,")
	mustNotMatch(t, n, "bye")
}

func TestFromSourceRuleReferenceForwardAndMutual(t *testing.T) {
	rs, err := ruleset.FromSource([]byte(
		`a = "x" b`+"\r\n"+
			`b = "y" / a`+"\r\n",
	), nil)
	if err != nil {
		t.Fatalf("FromSource: %v", err)
	}
	a, _ := rs.Lookup("a")
	mustMatch(t, a, "xy")
	mustMatch(t, a, "xxy")
}

func TestFromSourceNumVal(t *testing.T) {
	rs, err := ruleset.FromSource([]byte(
		`crlf = %d13.10`+"\r\n"+
			`digit = %x30-39`+"\r\n"+
			`one = %b00110001`+"\r\n",
	), nil)
	if err != nil {
		t.Fatalf("FromSource: %v", err)
	}
	crlf, _ := rs.Lookup("crlf")
	mustMatch(t, crlf, "\r\n")

	digit, _ := rs.Lookup("digit")
	mustMatch(t, digit, "5")
	mustNotMatch(t, digit, "a")

	one, _ := rs.Lookup("one")
	mustMatch(t, one, "1")
}

func TestFromSourceZeroRepetitionShorthand(t *testing.T) {
	rs, err := ruleset.FromSource([]byte(
		`pchar = %x61`+"\r\n"+
			`path-empty = 0pchar`+"\r\n",
	), nil)
	if err != nil {
		t.Fatalf("FromSource: %v", err)
	}
	n, _ := rs.Lookup("path-empty")
	mustMatch(t, n, "")
	mustNotMatch(t, n, "a")
}

func TestFromSourceDanglingRuleReferenceFails(t *testing.T) {
	_, err := ruleset.FromSource([]byte(`greeting = "hello" nonexistent`+"\r\n"), nil)
	if err == nil {
		t.Fatal("FromSource with a reference to an undefined rule returned nil error")
	}
	var notFound *ruleset.RuleNotFoundError
	if _, ok := err.(*ruleset.RuleNotFoundError); !ok {
		t.Fatalf("error type = %T, want %T", err, notFound)
	}
}

func TestUpdateFromSourceIncrementalAlternative(t *testing.T) {
	rs, err := ruleset.FromSource([]byte(`bit = "0"`+"\r\n"), nil)
	if err != nil {
		t.Fatalf("FromSource: %v", err)
	}
	if err := ruleset.UpdateFromSource(rs, []byte(`bit =/ "1"`+"\r\n")); err != nil {
		t.Fatalf("UpdateFromSource: %v", err)
	}
	n, _ := rs.Lookup("bit")
	mustMatch(t, n, "0")
	mustMatch(t, n, "1")
}

func TestUpdateFromSourceIncrementalWithoutPriorDefinitionFails(t *testing.T) {
	rs := ruleset.New()
	if err := ruleset.UpdateFromSource(rs, []byte(`bit =/ "1"`+"\r\n")); err == nil {
		t.Fatal("UpdateFromSource with no prior definition returned nil error")
	}
}

func TestFromSourceProseValIsUnsupported(t *testing.T) {
	_, err := ruleset.FromSource([]byte(`a = <anything>`+"\r\n"), nil)
	if err == nil {
		t.Fatal("FromSource with prose-val returned nil error")
	}
	var unsupported *ruleset.UnsupportedConstructError
	if _, ok := err.(*ruleset.UnsupportedConstructError); !ok {
		t.Fatalf("error type = %T, want %T", err, unsupported)
	}
}

func TestFromSourceSyntaxError(t *testing.T) {
	_, err := ruleset.FromSource([]byte("this is not abnf at all"), nil)
	if err == nil {
		t.Fatal("FromSource with invalid syntax returned nil error")
	}
}

func TestFromSourceManyLiteralAlternativesGetsPrefilter(t *testing.T) {
	var src string
	for i := 0; i < 40; i++ {
		if i > 0 {
			src += " / "
		}
		src += `%s"` + string(rune('A'+i/26)) + string(rune('a'+i%26)) + `"`
	}
	rs, err := ruleset.FromSource([]byte("kw = "+src+"\r\n"), nil)
	if err != nil {
		t.Fatalf("FromSource: %v", err)
	}
	n, _ := rs.Lookup("kw")
	if _, ok := n.(*node.Alternation); !ok {
		t.Fatalf("kw type = %T, want *node.Alternation", n)
	}
}
