package node

import "github.com/coregx/abnf/match"

// Concatenation matches Left immediately followed by Right. N-ary
// concatenation is built by left-folding a sequence of nodes (see
// ConcatenationFromNodes); the flattening rules in buildConcatenation make
// the result observationally N-ary in the produced match tree.
type Concatenation struct {
	name        string
	Left, Right Node
}

// NewConcatenation builds a binary Concatenation of left and right. Per
// spec, a nil side is a construction-time error — the source's
// Python left the case as an open TODO; this rewrite rejects it eagerly
// instead of panicking deep inside a generator.
func NewConcatenation(left, right Node) *Concatenation {
	if left == nil || right == nil {
		panic("node: Concatenation requires non-nil left and right nodes")
	}
	return &Concatenation{name: NameConcatenation, Left: left, Right: right}
}

// ConcatenationFromNodes left-folds nodes into a chain of binary
// Concatenations. It panics if fewer than two nodes are given; callers
// translating a single-element sequence should use that element directly.
func ConcatenationFromNodes(nodes ...Node) Node {
	if len(nodes) < 2 {
		panic("node: ConcatenationFromNodes requires at least two nodes")
	}
	acc := nodes[0]
	for _, n := range nodes[1:] {
		acc = NewConcatenation(acc, n)
	}
	return acc
}

func (c *Concatenation) Name() string     { return c.name }
func (c *Concatenation) SetName(n string) { c.name = n }
func (c *Concatenation) IsAnonymous() bool { return c.name == NameConcatenation }

func (c *Concatenation) Clone() Node {
	clone := *c
	return &clone
}

func (c *Concatenation) Generate(ctx *EvalContext, source []byte, offset int) Generator {
	return &concatenationGen{
		node:    c,
		ctx:     ctx,
		source:  source,
		leftGen: c.Left.Generate(ctx, source, offset),
	}
}

type concatenationGen struct {
	node     *Concatenation
	ctx      *EvalContext
	source   []byte
	leftGen  Generator
	curLeft  *match.Node
	rightGen Generator
}

func (g *concatenationGen) Next() (*match.Node, error) {
	for {
		if g.curLeft == nil {
			left, err := g.leftGen.Next()
			if err != nil {
				return nil, err
			}
			if left == nil {
				return nil, nil
			}
			g.curLeft = left
			g.rightGen = g.node.Right.Generate(g.ctx, g.source, left.EndOffset)
		}

		right, err := g.rightGen.Next()
		if err != nil {
			return nil, err
		}
		if right == nil {
			g.curLeft = nil
			continue
		}

		return buildConcatenation(g.node.name, g.curLeft, right, g.source), nil
	}
}

// buildConcatenation assembles the match produced by one (left, right)
// pairing, applying the flattening rules: splice an anonymous
// Concatenation's children instead of nesting it, splice an anonymous
// Repetition/Option's children likewise, then discard any resulting
// zero-length child.
func buildConcatenation(name string, left, right *match.Node, source []byte) *match.Node {
	var children []*match.Node
	children = append(children, flattenConcatenationChild(left)...)
	children = append(children, flattenConcatenationChild(right)...)

	filtered := children[:0]
	for _, child := range children {
		if child.Len() != 0 {
			filtered = append(filtered, child)
		}
	}

	return match.New(name, left.StartOffset, right.EndOffset, source, filtered)
}

func flattenConcatenationChild(n *match.Node) []*match.Node {
	switch n.Name {
	case NameConcatenation, NameRepetition, NameOption:
		return n.Children
	default:
		return []*match.Node{n}
	}
}
