package node

import (
	"github.com/coregx/abnf/internal/bytesutil"
	"github.com/coregx/abnf/match"
)

// Literal matches an exact byte sequence, optionally case-insensitively
// (ASCII letters only — per spec, case folding never applies outside
// A-Z/a-z).
type Literal struct {
	name          string
	Value         []byte
	CaseSensitive bool
}

// NewLiteral constructs a Literal matching value.
func NewLiteral(value []byte, caseSensitive bool) *Literal {
	return &Literal{name: NameLiteral, Value: value, CaseSensitive: caseSensitive}
}

func (l *Literal) Name() string     { return l.name }
func (l *Literal) SetName(n string) { l.name = n }
func (l *Literal) IsAnonymous() bool { return l.name == NameLiteral }

func (l *Literal) Clone() Node {
	clone := *l
	return &clone
}

func (l *Literal) Generate(ctx *EvalContext, source []byte, offset int) Generator {
	return &literalGen{node: l, source: source, offset: offset}
}

type literalGen struct {
	node   *Literal
	source []byte
	offset int
	done   bool
}

func (g *literalGen) Next() (*match.Node, error) {
	if g.done {
		return nil, nil
	}
	g.done = true

	end := g.offset + len(g.node.Value)
	if end > len(g.source) {
		return nil, nil
	}

	candidate := g.source[g.offset:end]
	if !bytesutil.EqualFold(candidate, g.node.Value, g.node.CaseSensitive) {
		return nil, nil
	}

	return match.New(g.node.name, g.offset, end, g.source, nil), nil
}
