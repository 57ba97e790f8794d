package node

import "github.com/coregx/abnf/match"

// RuleLookup is the subset of Ruleset's API a RuleRef needs. It is
// declared here, rather than importing package ruleset directly, to avoid
// an import cycle (ruleset already imports node for the Node interface).
type RuleLookup interface {
	Lookup(name string) (Node, error)
}

// RuleRef is a lazily-resolved reference to another rule by name. The
// grammar compiler emits one for every rulename element instead of
// eagerly looking up the target, which lets rules reference each other
// regardless of declaration order — including direct and mutual
// self-reference — without any placeholder-and-patch bookkeeping: by the
// time Generate actually runs, the whole ruleset has been populated.
type RuleRef struct {
	name   string
	rules  RuleLookup
	target string
}

// NewRuleRef builds a reference to target, resolved against rules at
// Generate time.
func NewRuleRef(rules RuleLookup, target string) *RuleRef {
	return &RuleRef{name: NameRuleRef, rules: rules, target: target}
}

func (r *RuleRef) Name() string      { return r.name }
func (r *RuleRef) SetName(n string)  { r.name = n }
func (r *RuleRef) IsAnonymous() bool { return r.name == NameRuleRef }

// Target returns the rule name this reference resolves against at
// Generate time, so a caller (package ruleset's post-compile validation
// pass) can check it resolves without having to Generate anything.
func (r *RuleRef) Target() string { return r.target }

func (r *RuleRef) Clone() Node {
	clone := *r
	return &clone
}

func (r *RuleRef) Generate(ctx *EvalContext, source []byte, offset int) Generator {
	target, err := r.rules.Lookup(r.target)
	if err != nil {
		return errGenerator{err: err}
	}
	return target.Generate(ctx.withRule(r.target), source, offset)
}

type errGenerator struct{ err error }

func (g errGenerator) Next() (*match.Node, error) { return nil, g.err }
