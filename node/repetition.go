package node

import "github.com/coregx/abnf/match"

// Unbounded marks a Repetition's Max as having no upper bound.
const Unbounded = -1

// Repetition matches Inner repeated between Min and Max times inclusive
// (Max == Unbounded for no upper bound), yielding every legal accumulated
// count greedily, longest first, and backtracking to shorter
// accumulations as the caller keeps pulling.
type Repetition struct {
	name  string
	Inner Node
	Min   int
	Max   int // Unbounded for no upper bound
}

// NewRepetition builds a Repetition of inner, matching between min and max
// times inclusive. Pass Unbounded for max to allow any number of
// repetitions at or above min.
func NewRepetition(inner Node, min, max int) *Repetition {
	return &Repetition{name: NameRepetition, Inner: inner, Min: min, Max: max}
}

// NewOption builds Repetition{Min: 0, Max: 1} under the Option display
// name, per spec §4.1 ("Option is exactly Repetition{min: 0, max: 1}").
func NewOption(inner Node) *Repetition {
	return &Repetition{name: NameOption, Inner: inner, Min: 0, Max: 1}
}

func (r *Repetition) Name() string     { return r.name }
func (r *Repetition) SetName(n string) { r.name = n }
func (r *Repetition) IsAnonymous() bool { return r.name == NameRepetition }

func (r *Repetition) Clone() Node {
	clone := *r
	return &clone
}

func (r *Repetition) Generate(ctx *EvalContext, source []byte, offset int) Generator {
	// Max == 0 ("0*0x" or the literal-zero shorthand "0x") never tries
	// Inner at all; the general loop below only checks Max after growing
	// the stack by one, which would be one repetition too many.
	if r.Max == 0 {
		return &repetitionGen{node: r, ctx: ctx, source: source, offset: offset, exhausted: true}
	}
	inner := r.Inner.Generate(ctx, source, offset)
	return &repetitionGen{
		node:   r,
		ctx:    ctx,
		source: source,
		offset: offset,
		stack:  []Generator{inner},
	}
}

type repetitionGen struct {
	node   *Repetition
	ctx    *EvalContext
	source []byte
	offset int

	stack      []Generator
	matchStack []*match.Node

	exhausted    bool
	emittedEmpty bool

	// pendingBacktrack defers the backtrack-count bookkeeping to the next
	// Next() call, mirroring the fact that the source's Python generator
	// suspends exactly at a `yield` — the count/pop/continue following it
	// only run once the caller asks for the next value.
	pendingBacktrack    bool
	pendingBacktrackEnd int

	// backtrackCount is local to this Repetition invocation, matching the
	// source's local (not shared) backtracking_count: only ctx.limit is
	// shared ambient state.
	backtrackCount int
}

// Next implements the longest-first, backtracking repetition algorithm
// from spec §4.1: a stack of inner matches is grown greedily until the
// inner generator stalls, Max is reached, or the input is fully consumed,
// emitting a repetition match at each such point, then backtracks by
// popping the stack and resuming the next-shallower inner generator.
func (g *repetitionGen) Next() (*match.Node, error) {
	if g.exhausted {
		return g.maybeEmitEmpty()
	}

	if g.pendingBacktrack {
		g.pendingBacktrack = false
		if err := g.backtrackOnce(); err != nil {
			return nil, err
		}
	}

	for len(g.stack) > 0 {
		cur := g.stack[len(g.stack)-1]
		g.stack = g.stack[:len(g.stack)-1]

		m, err := cur.Next()
		if err != nil {
			return nil, err
		}

		if m == nil {
			if len(g.matchStack) == 0 {
				continue
			}

			g.pendingBacktrackEnd = g.matchStack[len(g.matchStack)-1].EndOffset

			if len(g.matchStack) >= g.node.Min {
				out := g.buildMatch(g.matchStack[len(g.matchStack)-1].EndOffset)
				g.pendingBacktrack = true
				return out, nil
			}

			if err := g.backtrackOnce(); err != nil {
				return nil, err
			}
			continue
		}

		// cur may still have more alternatives; keep it on the stack.
		g.stack = append(g.stack, cur)
		g.matchStack = append(g.matchStack, m)

		if len(g.matchStack) == g.node.Max || m.EndOffset == len(g.source) {
			out := g.buildMatch(m.EndOffset)
			g.matchStack = g.matchStack[:len(g.matchStack)-1]
			return out, nil
		}

		g.stack = append(g.stack, g.node.Inner.Generate(g.ctx, g.source, m.EndOffset))
	}

	g.exhausted = true
	return g.maybeEmitEmpty()
}

// backtrackOnce performs the bookkeeping that follows a (possibly
// suspended) repetition-match yield: bump this invocation's own backtrack
// counter, fail if the budget is exceeded, and pop the shallowest
// accumulated match so the caller's loop resumes one level up.
func (g *repetitionGen) backtrackOnce() error {
	g.backtrackCount++
	if g.ctx.limit >= 0 && g.backtrackCount >= g.ctx.limit {
		return &BacktrackingLimitError{
			RuleName: g.ctx.ruleName,
			Offset:   g.pendingBacktrackEnd,
			Count:    g.backtrackCount,
			Limit:    g.ctx.limit,
		}
	}
	if len(g.matchStack) > 0 {
		g.matchStack = g.matchStack[:len(g.matchStack)-1]
	}
	return nil
}

func (g *repetitionGen) maybeEmitEmpty() (*match.Node, error) {
	if g.node.Min == 0 && !g.emittedEmpty {
		g.emittedEmpty = true
		return match.New(g.node.name, g.offset, g.offset, g.source, nil), nil
	}
	return nil, nil
}

func (g *repetitionGen) buildMatch(end int) *match.Node {
	return match.New(g.node.name, g.offset, end, g.source, append([]*match.Node(nil), g.matchStack...))
}
