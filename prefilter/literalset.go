package prefilter

import "github.com/coregx/ahocorasick"

// MinLiterals is the smallest alternative count for which building a
// LiteralSet is worth the automaton construction cost, mirroring the
// teacher's own ">32 patterns" cutover for UseAhoCorasick in
// coregex/meta's strategy selection.
const MinLiterals = 32

// LiteralSet is an anchored fast-reject filter: it asks whether any of a
// set of literal byte strings could start at an exact offset, without
// itself identifying which one. It backs node.Alternation.AttachPrefilter
// for alternations whose every alternative is a single case-sensitive
// Literal — the ABNF-grammar analogue of the teacher's "large literal
// alternation" strategy, adapted from leftmost-anywhere search (what the
// teacher's regex engine needs) to exact-offset search (all an ABNF
// alternation ever needs).
type LiteralSet struct {
	automaton *ahocorasick.Automaton
}

// Build constructs a LiteralSet over literals. It returns (nil, false) if
// literals is empty or the automaton fails to build; callers should treat
// that as "no prefilter available" rather than a hard error, since it
// only ever guards an optimization.
func Build(literals [][]byte) (*LiteralSet, bool) {
	if len(literals) == 0 {
		return nil, false
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &LiteralSet{automaton: auto}, true
}

// CouldMatchAt reports whether some literal in the set begins exactly at
// offset in source. A false result is certain: no alternative of the
// guarded Alternation can match there.
func (s *LiteralSet) CouldMatchAt(source []byte, offset int) bool {
	if offset >= len(source) {
		return false
	}
	m := s.automaton.Find(source, offset)
	return m != nil && m.Start == offset
}
