// Package abnf implements an RFC 5234 ABNF grammar engine: parse a grammar
// definition, then match input against any rule it defines.
//
// Matching is lazy and backtracking rather than automaton-based — a Grammar
// never compiles to an NFA or DFA. Each rule's evaluation node exposes a
// pull-based Generator of candidate matches, so alternatives and repetition
// counts are explored on demand and only as far as the caller needs. This
// mirrors RFC 5234's own "ordered choice, first full match wins" semantics
// more directly than a longest-match automaton would.
//
// Basic usage:
//
//	// Compile a grammar
//	g, err := abnf.Compile([]byte(`greeting = "hello" SP "world"` + "\r\n"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Match a rule against input
//	m, err := g.Match("greeting", []byte("hello world"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.String()) // "hello world"
//
// Every grammar is compiled against the RFC 5234 Appendix B.1 core rules
// (ALPHA, DIGIT, CRLF, …) as a fallback, so a grammar that only defines its
// own productions can still reference them unqualified. The rfc subpackage
// ships several prepackaged grammars (RFC 3986 URIs, RFC 5322 messages, RFC
// 9110/9112 HTTP) built the same way.
package abnf

import (
	"github.com/coregx/abnf/corerules"
	"github.com/coregx/abnf/match"
	"github.com/coregx/abnf/node"
	"github.com/coregx/abnf/ruleset"
)

// Grammar is a compiled ABNF grammar: a ruleset of evaluation nodes keyed by
// rule name, ready to match input against any rule it defines.
//
// A Grammar is safe to use concurrently from multiple goroutines; matching
// never mutates the underlying nodes.
type Grammar struct {
	rules *ruleset.Ruleset
}

// Compile parses source as ABNF grammar text (RFC 5234 §4) and compiles
// every rule it defines into an evaluation-node graph, falling back to the
// core rules (ALPHA, DIGIT, CRLF, …) for any name source itself leaves
// undefined.
//
// Example:
//
//	g, err := abnf.Compile([]byte(`num = 1*DIGIT` + "\r\n"))
func Compile(source []byte) (*Grammar, error) {
	rules, err := ruleset.FromSource(source, corerules.Core())
	if err != nil {
		return nil, err
	}
	return &Grammar{rules: rules}, nil
}

// MustCompile compiles source and panics if it fails.
//
// This is useful for grammars known to be valid at compile time, such as
// ones embedded as string literals.
func MustCompile(source []byte) *Grammar {
	g, err := Compile(source)
	if err != nil {
		panic("abnf: Compile: " + err.Error())
	}
	return g
}

// Match evaluates rule against input starting at offset 0, returning the
// first full match — one that consumes input exactly to its end — that the
// rule's alternatives produce in grammar order.
//
// Example:
//
//	g := abnf.MustCompile([]byte(`word = 1*ALPHA` + "\r\n"))
//	m, err := g.Match("word", []byte("hello"))
func (g *Grammar) Match(rule string, input []byte, opts ...node.EvalOption) (*match.Node, error) {
	n, err := g.rules.Lookup(rule)
	if err != nil {
		return nil, err
	}
	return node.Evaluate(n, input, opts...)
}

// Ruleset exposes the underlying rule→node mapping for callers that need to
// Insert additional rules, Lookup a node directly, or UpdateFromSource to
// layer more grammar text on top of what Compile already parsed.
func (g *Grammar) Ruleset() *ruleset.Ruleset {
	return g.rules
}
