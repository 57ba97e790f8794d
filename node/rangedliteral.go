package node

import "github.com/coregx/abnf/match"

// RangedLiteral matches a single byte within a closed [Min, Max] interval.
type RangedLiteral struct {
	name     string
	Min, Max byte
}

// NewRangedLiteral constructs a RangedLiteral over the closed interval
// [min, max].
func NewRangedLiteral(min, max byte) *RangedLiteral {
	return &RangedLiteral{name: NameRangedLiteral, Min: min, Max: max}
}

func (r *RangedLiteral) Name() string     { return r.name }
func (r *RangedLiteral) SetName(n string) { r.name = n }
func (r *RangedLiteral) IsAnonymous() bool { return r.name == NameRangedLiteral }

func (r *RangedLiteral) Clone() Node {
	clone := *r
	return &clone
}

func (r *RangedLiteral) Generate(ctx *EvalContext, source []byte, offset int) Generator {
	return &rangedLiteralGen{node: r, source: source, offset: offset}
}

type rangedLiteralGen struct {
	node   *RangedLiteral
	source []byte
	offset int
	done   bool
}

func (g *rangedLiteralGen) Next() (*match.Node, error) {
	if g.done {
		return nil, nil
	}
	g.done = true

	if g.offset >= len(g.source) {
		return nil, nil
	}

	b := g.source[g.offset]
	if b < g.node.Min || b > g.node.Max {
		return nil, nil
	}

	return match.New(g.node.name, g.offset, g.offset+1, g.source, nil), nil
}
