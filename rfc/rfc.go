// Package rfc provides prepackaged Ruleset values for a handful of
// widely-reused IETF grammars, each compiled from its own ABNF source
// text via package ruleset — the same path any caller's grammar takes —
// and, where the RFC itself builds on another one, seeded by directly
// reusing that other ruleset's already-compiled rules, exactly as the
// original Python implementation's rfc5321/rfc7239/rfc9110/rfc9112
// rulesets subscript specific rules out of RFC3986/RFC5322/RFC9110
// rather than redefining them.
//
// Each grammar is built lazily behind a sync.Once on first access rather
// than in a package init(), since Go does not order init() funcs across
// a package's files by dependency the way it does package-level variable
// initializers, and these rulesets have a real dependency chain (RFC9112
// needs RFC9110 and RFC3986; RFC5321 needs RFC3986 and RFC5322; …).
package rfc

import (
	"fmt"

	"github.com/coregx/abnf/ruleset"
)

func must(rs *ruleset.Ruleset, err error, name string) *ruleset.Ruleset {
	if err != nil {
		panic(fmt.Sprintf("rfc: failed to compile %s: %v", name, err))
	}
	return rs
}

func seed(rs *ruleset.Ruleset, localName string, from *ruleset.Ruleset, remoteName string) {
	n, err := from.Lookup(remoteName)
	if err != nil {
		panic(fmt.Sprintf("rfc: seed %q from %q: %v", localName, remoteName, err))
	}
	rs.Insert(localName, n)
}
