// Package node implements the evaluation-node model: the tagged tree of
// grammar operators (literal, ranged literal, concatenation, alternation,
// repetition) whose lazy, backtracking generators define ABNF's matching
// language, plus the top-level driver that runs one to completion.
//
// Matching is exponential-in-the-worst-case backtracking, not regular
// expression compilation: every node exposes a pull-based Generator that
// yields candidate matches left to right, and callers explore alternatives
// by pulling more values, exactly as a hand-written recursive-descent
// backtracker would.
package node

import "github.com/coregx/abnf/match"

// Default anonymous names, one per variant. A node "carries a non-default
// name" (spec terminology) when its Name differs from its own variant's
// entry here; Ruleset.Insert and the flattening rules in Concatenation and
// Alternation both key off this distinction.
const (
	NameLiteral       = "Literal"
	NameRangedLiteral = "RangedLiteral"
	NameConcatenation = "Concatenation"
	NameAlternation   = "Alternation"
	NameRepetition    = "Repetition"
	NameOption        = "Option"
	NameRuleRef       = "RuleRef"
)

// Node is an evaluation node: a member of the rule graph that knows how to
// enumerate candidate matches against (source, offset).
//
// Implementations form a directed graph that may be cyclic (direct or
// transitive self-reference); ownership is shared, so the same *Literal or
// *Alternation may appear under many rule names and in many positions.
type Node interface {
	// Name returns the node's display name: a rule name if the node has
	// been installed into a Ruleset under one, otherwise its variant's
	// default/anonymous name.
	Name() string

	// SetName assigns a display name in place.
	SetName(name string)

	// IsAnonymous reports whether Name() is still the variant's default
	// name (no rule name has been assigned to this node).
	IsAnonymous() bool

	// Clone returns a shallow copy of the node (same children, new
	// identity) so that renaming one reference to a shared node never
	// affects the others.
	Clone() Node

	// Generate returns a lazy generator of every match starting at offset
	// in source. The sequence is left-to-right and lazy: the caller
	// exhausts it to explore alternatives.
	Generate(ctx *EvalContext, source []byte, offset int) Generator
}

// Generator is a lazy, pull-based sequence of candidate matches. Next
// returns (nil, nil) once exhausted and propagates errors (a
// backtracking-limit overrun, or a RuleRef whose target cannot be looked
// up) from nested generators without swallowing
// them — only Evaluate converts an exhausted generator into a no-match
// result.
type Generator interface {
	Next() (*match.Node, error)
}

// EvalContext carries the ambient state a single top-level Evaluate call
// threads down into every nested Generate call: only the backtracking
// budget itself (a limit, not a count). Spec's source implementation
// (_examples/original_source/abnf_parse/structures/evaluation_node.py)
// declares backtracking_count fresh as a local inside each
// RepetitionNode._evaluate() call — only the limit is shared/global, never
// the count — so EvalContext mirrors that: the count lives on
// repetitionGen (one per Repetition.Generate invocation), not here. A
// shared count would let independent sibling or nested repetitions sum
// their backtracks against one budget, rejecting grammars the original
// engine accepts.
type EvalContext struct {
	limit    int // -1 means unlimited
	ruleName string // best-effort rule name for error reporting
}

func newEvalContext(limit int) *EvalContext {
	return &EvalContext{limit: limit}
}

// withRule returns a shallow copy of ctx carrying a more specific rule name
// for error attribution.
func (c *EvalContext) withRule(name string) *EvalContext {
	cp := *c
	cp.ruleName = name
	return &cp
}

// CloneNamed returns n unchanged if it is already named targetName;
// renames it in place if it is anonymous; and otherwise returns a
// shallow copy renamed to targetName, leaving the original (and everyone
// else referencing it) untouched. This is the core of Ruleset.Insert's
// "copy the outer node, not its children, only when necessary" rule
// (spec §3), exposed here since package ruleset has no other way to
// reach into a Node's identity.
func CloneNamed(n Node, targetName string) Node {
	if n.Name() == targetName {
		return n
	}
	if n.IsAnonymous() {
		n.SetName(targetName)
		return n
	}
	clone := n.Clone()
	clone.SetName(targetName)
	return clone
}
