package ruleset

import "fmt"

// RuleNotFoundError reports a reference (direct Lookup call, or an
// "elements" rulename inside a grammar being compiled) to a rule name
// that neither the Ruleset nor its core fallback defines.
type RuleNotFoundError struct {
	RuleName string
}

func (e *RuleNotFoundError) Error() string {
	return fmt.Sprintf("ruleset: rule %q not found", e.RuleName)
}

// MalformedGrammarError reports ABNF source that the bootstrapped
// meta-grammar matched structurally but that the compiler could not
// translate into an evaluation node — an out-of-range numeric value, an
// empty alternation, or a repeat count with max < min.
type MalformedGrammarError struct {
	RuleName string
	Reason   string
}

func (e *MalformedGrammarError) Error() string {
	return fmt.Sprintf("ruleset: malformed grammar for rule %q: %s", e.RuleName, e.Reason)
}

// UnsupportedConstructError reports a grammar element the compiler does
// not translate: every prose-val ("<...>") element, and any other
// match-tree shape compileElement does not recognise.
type UnsupportedConstructError struct {
	Construct string
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("ruleset: unsupported grammar construct %q", e.Construct)
}

// GrammarSyntaxError reports that the raw ABNF source text itself did not
// match the bootstrapped rulelist grammar, i.e. failed before the
// compiler ever saw a match tree.
type GrammarSyntaxError struct {
	Offset int
	Err    error
}

func (e *GrammarSyntaxError) Error() string {
	return fmt.Sprintf("ruleset: grammar syntax error near offset %d: %v", e.Offset, e.Err)
}

func (e *GrammarSyntaxError) Unwrap() error { return e.Err }
