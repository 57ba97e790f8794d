package ruleset

import (
	"strconv"
	"strings"

	"github.com/coregx/abnf/abnfgrammar"
	"github.com/coregx/abnf/match"
	"github.com/coregx/abnf/node"
	"github.com/coregx/abnf/prefilter"
)

// FromSource parses and compiles ABNF grammar source text into a new
// Ruleset falling back to core for any rule the source does not define.
// core is typically corerules.Core(); it is passed in here rather than
// imported directly so that package ruleset does not depend on package
// corerules (which itself depends on ruleset).
func FromSource(source []byte, core *Ruleset) (*Ruleset, error) {
	rs := NewWithCore(core)
	if err := UpdateFromSource(rs, source); err != nil {
		return nil, err
	}
	return rs, nil
}

// UpdateFromSource parses source and merges its rule definitions into rs:
// a bare "=" installs or replaces a rule; "=/" appends alternatives to a
// rule rs already defines (RFC 5234 §3.3), and is an error if rs has no
// prior definition for that name.
func UpdateFromSource(rs *Ruleset, source []byte) error {
	root, err := node.Evaluate(abnfgrammar.Rulelist, source)
	if err != nil {
		return &GrammarSyntaxError{Offset: 0, Err: err}
	}

	var names []string
	for _, child := range root.Children {
		if child.Name != "rule" {
			continue // blank or comment-only line
		}
		if err := compileRule(rs, child); err != nil {
			return err
		}
		names = append(names, child.GetOne("rulename").String())
	}
	return validateRuleRefs(rs, names)
}

// validateRuleRefs walks the rules named in names (the rules compiled from
// one source text, in source order) and reports a RuleNotFoundError for the
// first RuleRef whose target resolves to neither rs nor its core fallback.
// Rules seeded into rs from another Ruleset are not walked: their RuleRefs
// resolve against the Ruleset they were compiled in. Per spec §7 item 3, a dangling rule
// reference is a compile-time error, not one deferred until a matching
// attempt happens to reach that RuleRef's Generate call — without this
// pass, FromSource/UpdateFromSource would otherwise compile a grammar
// referencing an undefined name successfully, and the error would only
// ever surface (if at all) much later, from inside a Generate call far
// from the grammar text that caused it.
func validateRuleRefs(rs *Ruleset, names []string) error {
	visited := make(map[node.Node]bool)
	for _, name := range names {
		n, err := rs.Lookup(name)
		if err != nil {
			return err // unreachable: name was just compiled into rs
		}
		if err := walkRuleRefs(rs, n, visited); err != nil {
			return err
		}
	}
	return nil
}

// walkRuleRefs recurses through n's operand nodes looking for RuleRefs,
// stopping at any node already visited so a self- or mutually-recursive
// rule graph terminates.
func walkRuleRefs(rs *Ruleset, n node.Node, visited map[node.Node]bool) error {
	if visited[n] {
		return nil
	}
	visited[n] = true

	switch v := n.(type) {
	case *node.RuleRef:
		if !rs.Has(v.Target()) {
			return &RuleNotFoundError{RuleName: v.Target()}
		}
	case *node.Concatenation:
		if err := walkRuleRefs(rs, v.Left, visited); err != nil {
			return err
		}
		return walkRuleRefs(rs, v.Right, visited)
	case *node.Alternation:
		for _, alt := range v.Alternatives {
			if err := walkRuleRefs(rs, alt, visited); err != nil {
				return err
			}
		}
	case *node.Repetition:
		return walkRuleRefs(rs, v.Inner, visited)
	}
	return nil
}

func compileRule(rs *Ruleset, ruleMatch *match.Node) error {
	nameMatch := ruleMatch.GetOne("rulename")
	definedAsMatch := ruleMatch.GetOne("defined-as")
	elementsMatch := ruleMatch.GetOne("elements")
	if nameMatch == nil || definedAsMatch == nil || elementsMatch == nil {
		return &MalformedGrammarError{Reason: "rule is missing rulename/defined-as/elements"}
	}
	name := nameMatch.String()

	alt := elementsMatch.GetOne("alternation")
	if alt == nil {
		return &MalformedGrammarError{RuleName: name, Reason: "elements has no alternation"}
	}
	compiled, err := compileAlternation(rs, alt)
	if err != nil {
		return err
	}

	if strings.Contains(definedAsMatch.String(), "=/") {
		existing, err := rs.Lookup(name)
		if err != nil {
			return &MalformedGrammarError{RuleName: name, Reason: `"=/" used before any prior definition`}
		}
		// Extend a copy, never the stored node itself, which may be shared
		// with the core ruleset or with another Ruleset.
		alt, ok := existing.(*node.Alternation)
		if ok {
			alt = alt.Clone().(*node.Alternation)
		} else {
			alt = node.NewAlternation(existing)
		}
		extendAlternation(alt, compiled)
		rs.Insert(name, alt)
		return nil
	}

	rs.Insert(name, compiled)
	return nil
}

// extendAlternation appends added (or, if added is itself an Alternation,
// its own alternatives) to alt's Alternatives in place, then rebuilds alt's
// literal prefilter so that it covers the combined alternatives.
func extendAlternation(alt *node.Alternation, added node.Node) {
	if addedAlt, ok := added.(*node.Alternation); ok {
		alt.Alternatives = append(alt.Alternatives, addedAlt.Alternatives...)
	} else {
		alt.Alternatives = append(alt.Alternatives, added)
	}
	alt.AttachPrefilter(nil)
	attachLiteralPrefilter(alt)
}

func compileAlternation(rs *Ruleset, m *match.Node) (node.Node, error) {
	terms := flattenTerms(m, "concatenation")
	if len(terms) == 0 {
		return nil, &MalformedGrammarError{Reason: "alternation has no concatenation terms"}
	}
	compiled := make([]node.Node, len(terms))
	for i, t := range terms {
		n, err := compileConcatenation(rs, t)
		if err != nil {
			return nil, err
		}
		compiled[i] = n
	}
	if len(compiled) == 1 {
		return compiled[0], nil
	}
	alt := node.NewAlternation(compiled...)
	attachLiteralPrefilter(alt)
	return alt, nil
}

// attachLiteralPrefilter installs a prefilter.LiteralSet on alt when every
// alternative is a single case-sensitive Literal and there are enough of
// them to be worth it (see prefilter.MinLiterals) — grammars such as a
// keyword-list rule ("GET" / "HEAD" / "POST" / … ) compile to exactly
// this shape.
func attachLiteralPrefilter(alt *node.Alternation) {
	if len(alt.Alternatives) < prefilter.MinLiterals {
		return
	}
	literals := make([][]byte, len(alt.Alternatives))
	for i, a := range alt.Alternatives {
		lit, ok := a.(*node.Literal)
		if !ok || !lit.CaseSensitive {
			return
		}
		literals[i] = lit.Value
	}
	set, ok := prefilter.Build(literals)
	if !ok {
		return
	}
	alt.AttachPrefilter(set)
}

func compileConcatenation(rs *Ruleset, m *match.Node) (node.Node, error) {
	terms := flattenTerms(m, "repetition")
	if len(terms) == 0 {
		return nil, &MalformedGrammarError{Reason: "concatenation has no repetition terms"}
	}
	compiled := make([]node.Node, len(terms))
	for i, t := range terms {
		n, err := compileRepetition(rs, t)
		if err != nil {
			return nil, err
		}
		compiled[i] = n
	}
	if len(compiled) == 1 {
		return compiled[0], nil
	}
	return node.ConcatenationFromNodes(compiled...), nil
}

func compileRepetition(rs *Ruleset, m *match.Node) (node.Node, error) {
	elementMatch := m.GetOne("element")
	if elementMatch == nil {
		return nil, &MalformedGrammarError{Reason: "repetition has no element"}
	}
	inner, err := compileElement(rs, elementMatch)
	if err != nil {
		return nil, err
	}

	min, max := 1, 1
	if repeatMatch := m.GetOne("repeat"); repeatMatch != nil {
		min, max, err = parseRepeat(repeatMatch.String())
		if err != nil {
			return nil, &MalformedGrammarError{Reason: err.Error()}
		}
		if max != node.Unbounded && max < min {
			return nil, &MalformedGrammarError{Reason: "repeat " + repeatMatch.String() + " has max < min"}
		}
	}
	if min == 1 && max == 1 {
		return inner, nil
	}
	return node.NewRepetition(inner, min, max), nil
}

func parseRepeat(text string) (min, max int, err error) {
	if idx := strings.IndexByte(text, '*'); idx >= 0 {
		minPart, maxPart := text[:idx], text[idx+1:]
		min = 0
		if minPart != "" {
			if min, err = strconv.Atoi(minPart); err != nil {
				return 0, 0, err
			}
		}
		max = node.Unbounded
		if maxPart != "" {
			if max, err = strconv.Atoi(maxPart); err != nil {
				return 0, 0, err
			}
		}
		return min, max, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, 0, err
	}
	return n, n, nil
}

func compileElement(rs *Ruleset, m *match.Node) (node.Node, error) {
	if len(m.Children) == 0 {
		return nil, &MalformedGrammarError{Reason: "element has no matched form"}
	}
	inner := m.Children[0]

	switch inner.Name {
	case "rulename":
		return node.NewRuleRef(rs, inner.String()), nil
	case "group":
		alt := inner.GetOne("alternation")
		if alt == nil {
			return nil, &MalformedGrammarError{Reason: "group has no alternation"}
		}
		return compileAlternation(rs, alt)
	case "option":
		alt := inner.GetOne("alternation")
		if alt == nil {
			return nil, &MalformedGrammarError{Reason: "option has no alternation"}
		}
		n, err := compileAlternation(rs, alt)
		if err != nil {
			return nil, err
		}
		return node.NewOption(n), nil
	case "char-val":
		return compileCharVal(inner)
	case "num-val":
		return compileNumVal(inner)
	case "prose-val":
		return nil, &UnsupportedConstructError{Construct: "prose-val"}
	default:
		return nil, &UnsupportedConstructError{Construct: inner.Name}
	}
}

func compileCharVal(m *match.Node) (node.Node, error) {
	if len(m.Children) == 0 {
		return nil, &MalformedGrammarError{Reason: "char-val has no matched form"}
	}
	chosen := m.Children[0]

	qs := chosen.GetOne("quoted-string")
	if qs == nil {
		return nil, &MalformedGrammarError{Reason: "char-val has no quoted-string"}
	}
	value := unquote(qs.Value())

	switch chosen.Name {
	case "case-sensitive-string":
		return node.NewLiteral(value, true), nil
	default: // case-insensitive-string, the char-val default per RFC 5234 §2.3
		return node.NewLiteral(value, false), nil
	}
}

func unquote(raw []byte) []byte {
	if len(raw) < 2 {
		return nil
	}
	return raw[1 : len(raw)-1]
}

func compileNumVal(m *match.Node) (node.Node, error) {
	text := m.String() // e.g. "%d13.10", "%x30-39", "%b01000001"
	if len(text) < 2 {
		return nil, &MalformedGrammarError{Reason: "malformed num-val"}
	}

	var base int
	switch text[1] {
	case 'b', 'B':
		base = 2
	case 'd', 'D':
		base = 10
	case 'x', 'X':
		base = 16
	default:
		return nil, &MalformedGrammarError{Reason: "num-val has unknown radix " + string(text[1])}
	}
	body := text[2:]

	parse := func(s string) (byte, error) {
		v, err := strconv.ParseUint(s, base, 8)
		return byte(v), err
	}

	switch {
	case strings.Contains(body, "."):
		parts := strings.Split(body, ".")
		bytes := make([]byte, len(parts))
		for i, p := range parts {
			b, err := parse(p)
			if err != nil {
				return nil, &MalformedGrammarError{Reason: "num-val dotted sequence: " + err.Error()}
			}
			bytes[i] = b
		}
		return node.NewLiteral(bytes, true), nil

	case strings.Contains(body, "-"):
		parts := strings.SplitN(body, "-", 2)
		lo, err := parse(parts[0])
		if err != nil {
			return nil, &MalformedGrammarError{Reason: "num-val range: " + err.Error()}
		}
		hi, err := parse(parts[1])
		if err != nil {
			return nil, &MalformedGrammarError{Reason: "num-val range: " + err.Error()}
		}
		return node.NewRangedLiteral(lo, hi), nil

	default:
		b, err := parse(body)
		if err != nil {
			return nil, &MalformedGrammarError{Reason: "num-val: " + err.Error()}
		}
		return node.NewLiteral([]byte{b}, true), nil
	}
}

// flattenTerms collects m's named descendants equal to want, transparently
// descending through anonymous Concatenation/Repetition/Option wrapper
// nodes — the structural byproduct of the bootstrapped grammar's own
// "first *( separator term )" shape — without crossing into a
// differently-named boundary node (so a "concatenation" nested inside a
// sibling "group"'s "alternation" is never mistaken for one of m's own
// direct terms).
func flattenTerms(m *match.Node, want string) []*match.Node {
	var out []*match.Node
	for _, c := range m.Children {
		switch {
		case c.Name == want:
			out = append(out, c)
		case c.Name == node.NameConcatenation || c.Name == node.NameRepetition || c.Name == node.NameOption:
			out = append(out, flattenTerms(c, want)...)
		}
	}
	return out
}
