package node

import "github.com/coregx/abnf/match"

// Alternation tries each alternative in declaration order, yielding every
// match any of them produce.
//
// An unnamed Alternation (produced by the grammar compiler for a group or
// option with more than one alternative, or used directly as a programmatic
// building block) yields its chosen alternative's match node unchanged. A named
// Alternation wraps the match as a child of a new node bearing its name,
// hoisting an anonymous Concatenation/Repetition/Option's children up
// to be its own rather than nesting them one level deeper.
type Alternation struct {
	name         string
	Alternatives []Node

	prefilter literalPrefilter
}

// literalPrefilter is satisfied by package prefilter's LiteralSet; kept as
// an interface here so that package node does not import package
// prefilter or its ahocorasick dependency. Package ruleset's compiler
// builds the LiteralSet and installs it with AttachPrefilter.
type literalPrefilter interface {
	CouldMatchAt(source []byte, offset int) bool
}

// NewAlternation builds an Alternation over alternatives, tried in order.
func NewAlternation(alternatives ...Node) *Alternation {
	return &Alternation{name: NameAlternation, Alternatives: alternatives}
}

func (a *Alternation) Name() string     { return a.name }
func (a *Alternation) SetName(n string) { a.name = n }
func (a *Alternation) IsAnonymous() bool { return a.name == NameAlternation }

func (a *Alternation) Clone() Node {
	clone := *a
	clone.Alternatives = append([]Node(nil), a.Alternatives...)
	return &clone
}

// AttachPrefilter installs a fast-reject literal prefilter (see package
// prefilter) consulted before trying alternatives in order. It never
// changes which matches are produced — only whether the full scan over
// Alternatives is attempted at all for a given offset.
func (a *Alternation) AttachPrefilter(pf literalPrefilter) {
	a.prefilter = pf
}

func (a *Alternation) Generate(ctx *EvalContext, source []byte, offset int) Generator {
	if a.prefilter != nil && !a.prefilter.CouldMatchAt(source, offset) {
		return emptyGenerator{}
	}
	return &alternationGen{node: a, ctx: ctx, source: source, offset: offset}
}

type emptyGenerator struct{}

func (emptyGenerator) Next() (*match.Node, error) { return nil, nil }

type alternationGen struct {
	node   *Alternation
	ctx    *EvalContext
	source []byte
	offset int

	idx int
	cur Generator
}

func (g *alternationGen) Next() (*match.Node, error) {
	for {
		if g.cur == nil {
			if g.idx >= len(g.node.Alternatives) {
				return nil, nil
			}
			g.cur = g.node.Alternatives[g.idx].Generate(g.ctx, g.source, g.offset)
			g.idx++
		}

		m, err := g.cur.Next()
		if err != nil {
			return nil, err
		}
		if m == nil {
			g.cur = nil
			continue
		}

		if g.node.IsAnonymous() {
			return m, nil
		}
		return wrapAlternationMatch(g.node.name, m, g.source), nil
	}
}

func wrapAlternationMatch(name string, m *match.Node, source []byte) *match.Node {
	var children []*match.Node
	switch m.Name {
	case NameConcatenation, NameRepetition, NameOption:
		children = m.Children
	default:
		children = []*match.Node{m}
	}
	return match.New(name, m.StartOffset, m.EndOffset, source, children)
}
