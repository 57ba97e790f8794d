// Package ruleset implements the named rule→evaluation-node mapping used
// both to assemble grammars programmatically and as the target of the
// ABNF grammar compiler (compile.go in this package).
package ruleset

import "github.com/coregx/abnf/node"

// Ruleset is a name→node.Node mapping with a reference to a shared core
// ruleset consulted on missing keys (see package corerules). It does not
// record insertion order: Names lists rule names in no particular order.
// A Ruleset is not safe for concurrent insertion, but concurrent
// evaluation of an already-published ruleset's nodes is safe (the nodes
// themselves are not mutated by matching).
type Ruleset struct {
	rules map[string]node.Node
	core  *Ruleset
}

// New constructs an empty Ruleset with no core fallback.
func New() *Ruleset {
	return &Ruleset{rules: make(map[string]node.Node)}
}

// NewWithCore constructs an empty Ruleset that falls back to core on a
// missed Lookup, exactly as the ABNF core ruleset (ALPHA, DIGIT, CRLF, …)
// backs every grammar compiled through this package.
func NewWithCore(core *Ruleset) *Ruleset {
	return &Ruleset{rules: make(map[string]node.Node), core: core}
}

// Insert stores n under name, assigning its display name in the process.
//
// Per spec §3/§4.3: if n already carries a non-default name different
// from name, a shallow copy of n (not its children) is renamed and
// stored instead, so that the original — and every other rule already
// referencing it — keeps its old name and structure. If n is anonymous,
// it is renamed in place and stored directly.
func (r *Ruleset) Insert(name string, n node.Node) {
	r.rules[name] = node.CloneNamed(n, name)
}

// Lookup searches the local map first, then the core ruleset. It reports
// RuleNotFoundError if neither has name.
func (r *Ruleset) Lookup(name string) (node.Node, error) {
	if n, ok := r.rules[name]; ok {
		return n, nil
	}
	if r.core != nil {
		if n, ok := r.core.rules[name]; ok {
			return n, nil
		}
	}
	return nil, &RuleNotFoundError{RuleName: name}
}

// Has reports whether name resolves locally or via the core fallback.
func (r *Ruleset) Has(name string) bool {
	_, err := r.Lookup(name)
	return err == nil
}

// Names returns the locally-defined rule names (not including any names
// only resolvable through the core fallback), in no particular order.
func (r *Ruleset) Names() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	return names
}
