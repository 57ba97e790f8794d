package corerules

import (
	"testing"

	"github.com/coregx/abnf/node"
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

func TestCoreRuleNames(t *testing.T) {
	names := []string{
		"ALPHA", "BIT", "CHAR", "CR", "LF", "CRLF", "CTL", "DIGIT",
		"DQUOTE", "HEXDIG", "HTAB", "SP", "WSP", "LWSP", "OCTET", "VCHAR",
	}
	for _, name := range names {
		if !Core().Has(name) {
			t.Errorf("Core().Has(%q) = false, want true", name)
		}
	}
}

func TestALPHA(t *testing.T) {
	alpha, err := Core().Lookup("ALPHA")
	if err != nil {
		t.Fatalf("Lookup(ALPHA): %v", err)
	}
	mustMatch(t, alpha, "a")
	mustMatch(t, alpha, "Z")
	mustNotMatch(t, alpha, "0")
}

func TestDIGIT(t *testing.T) {
	digit, err := Core().Lookup("DIGIT")
	if err != nil {
		t.Fatalf("Lookup(DIGIT): %v", err)
	}
	mustMatch(t, digit, "5")
	mustNotMatch(t, digit, "a")
}

func TestCRLF(t *testing.T) {
	crlf, err := Core().Lookup("CRLF")
	if err != nil {
		t.Fatalf("Lookup(CRLF): %v", err)
	}
	mustMatch(t, crlf, "\r\n")
	mustNotMatch(t, crlf, "\n\r")
	mustNotMatch(t, crlf, "\r")
}

func TestWSP(t *testing.T) {
	wsp, err := Core().Lookup("WSP")
	if err != nil {
		t.Fatalf("Lookup(WSP): %v", err)
	}
	mustMatch(t, wsp, " ")
	mustMatch(t, wsp, "\t")
	mustNotMatch(t, wsp, "x")
}

func TestLWSP(t *testing.T) {
	lwsp, err := Core().Lookup("LWSP")
	if err != nil {
		t.Fatalf("Lookup(LWSP): %v", err)
	}
	mustMatch(t, lwsp, "")
	mustMatch(t, lwsp, "   ")
	mustMatch(t, lwsp, " \r\n\t")
}

func TestHEXDIG(t *testing.T) {
	hex, err := Core().Lookup("HEXDIG")
	if err != nil {
		t.Fatalf("Lookup(HEXDIG): %v", err)
	}
	mustMatch(t, hex, "9")
	mustMatch(t, hex, "F")
	mustNotMatch(t, hex, "g")
}

func TestCoreUnknownRule(t *testing.T) {
	if _, err := Core().Lookup("not-a-core-rule"); err == nil {
		t.Fatal("Lookup(not-a-core-rule) returned nil error")
	}
}
