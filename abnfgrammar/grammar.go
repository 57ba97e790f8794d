// Package abnfgrammar hand-wires the self-referential ABNF meta-grammar
// (RFC 5234 §4) as an evaluation-node graph: the grammar used to parse
// every *other* grammar, including itself. It cannot be built by
// compiling ABNF source text through package ruleset's compiler, since
// that compiler needs exactly this graph to run — it is wired directly
// with node constructors instead, patched in place where the grammar's
// alternation/concatenation/repetition/element/group/option mutual
// recursion requires a forward reference.
package abnfgrammar

import "github.com/coregx/abnf/node"

func lit(s string) *node.Literal { return node.NewLiteral([]byte(s), false) }
func cs(s string) *node.Literal  { return node.NewLiteral([]byte(s), true) }
func rng(lo, hi byte) *node.RangedLiteral {
	return node.NewRangedLiteral(lo, hi)
}
func opt(n node.Node) *node.Repetition       { return node.NewOption(n) }
func star(n node.Node) *node.Repetition      { return node.NewRepetition(n, 0, node.Unbounded) }
func plus(n node.Node) *node.Repetition      { return node.NewRepetition(n, 1, node.Unbounded) }
func cat(nodes ...node.Node) node.Node       { return node.ConcatenationFromNodes(nodes...) }
func named(name string, n node.Node) node.Node {
	n.SetName(name)
	return n
}

// Rulelist is the root rule: 1*( rule / (*c-wsp c-nl) ), the entry point
// used by package ruleset to parse a whole grammar source file.
var Rulelist node.Node

// Rule is the per-definition rule: rulename defined-as elements c-nl.
// package ruleset's compiler walks a rulelist match tree by searching
// each "rule" child for its "rulename", "defined-as" and "elements"
// grandchildren.
var Rule node.Node

func init() {
	alpha := rng(0x41, 0x5A)
	alphaLower := rng(0x61, 0x7A)
	alphaAny := node.NewAlternation(alpha, alphaLower)
	digit := rng(0x30, 0x39)
	bit := node.NewAlternation(lit("0"), lit("1"))
	hexdig := node.NewAlternation(rng(0x30, 0x39), rng(0x41, 0x46), rng(0x61, 0x66))
	dquote := cs("\"")
	crlf := node.NewConcatenation(cs("\r"), cs("\n"))
	wsp := node.NewAlternation(cs(" "), cs("\t"))
	vchar := rng(0x21, 0x7E)

	comment := named("comment", cat(
		cs(";"),
		star(node.NewAlternation(wsp.Clone(), vchar.Clone())),
		crlf.Clone(),
	))
	cNl := named("c-nl", node.NewAlternation(comment, crlf.Clone()))
	cWsp := named("c-wsp", node.NewAlternation(
		wsp.Clone(),
		node.NewConcatenation(cNl.Clone(), wsp.Clone()),
	))

	rulename := named("rulename", node.NewConcatenation(
		alphaAny.Clone(),
		star(node.NewAlternation(alphaAny.Clone(), digit.Clone(), cs("-"))),
	))

	definedAs := named("defined-as", cat(
		star(cWsp.Clone()),
		node.NewAlternation(cs("=/"), cs("=")),
		star(cWsp.Clone()),
	))

	quotedString := named("quoted-string", cat(
		dquote.Clone(),
		star(node.NewAlternation(rng(0x20, 0x21), rng(0x23, 0x7E))),
		dquote.Clone(),
	))
	caseInsensitive := named("case-insensitive-string", node.NewConcatenation(
		opt(lit("%i")),
		quotedString.Clone(),
	))
	caseSensitive := named("case-sensitive-string", node.NewConcatenation(
		lit("%s"),
		quotedString.Clone(),
	))
	charVal := named("char-val", node.NewAlternation(caseInsensitive, caseSensitive))

	digits := plus(digit.Clone())
	decVal := named("dec-val", cat(
		lit("d"),
		digits,
		opt(node.NewAlternation(
			plus(node.NewConcatenation(cs("."), plus(digit.Clone()))),
			node.NewConcatenation(cs("-"), plus(digit.Clone())),
		)),
	))
	bits := plus(bit.Clone())
	binVal := named("bin-val", cat(
		lit("b"),
		bits,
		opt(node.NewAlternation(
			plus(node.NewConcatenation(cs("."), plus(bit.Clone()))),
			node.NewConcatenation(cs("-"), plus(bit.Clone())),
		)),
	))
	hexdigs := plus(hexdig.Clone())
	hexVal := named("hex-val", cat(
		lit("x"),
		hexdigs,
		opt(node.NewAlternation(
			plus(node.NewConcatenation(cs("."), plus(hexdig.Clone()))),
			node.NewConcatenation(cs("-"), plus(hexdig.Clone())),
		)),
	))
	numVal := named("num-val", node.NewConcatenation(
		cs("%"),
		node.NewAlternation(binVal, decVal, hexVal),
	))

	proseVal := named("prose-val", cat(
		cs("<"),
		star(node.NewAlternation(rng(0x20, 0x3D), rng(0x3F, 0x7E))),
		cs(">"),
	))

	// element is the one back-edge in the element -> group/option ->
	// alternation -> concatenation -> repetition -> element cycle: it is
	// the only one of these six rules that is actually alternation-shaped
	// (an ordered choice of syntactic forms), so it alone needs to exist
	// as a mutable placeholder before its own dependencies are built.
	// alternation/concatenation are concatenation-shaped (a first item
	// followed by a repetition of more), so once "element" exists as a
	// pointer, the rest of the cycle builds in a single straight pass
	// with no further patching.
	elementPlaceholder := node.NewAlternation()
	named("element", elementPlaceholder)

	repeatCount := named("repeat", node.NewAlternation(
		plus(digit.Clone()),
		cat(star(digit.Clone()), cs("*"), star(digit.Clone())),
	))
	repetition := named("repetition", node.NewConcatenation(opt(repeatCount), elementPlaceholder))

	concatenation := named("concatenation", node.NewConcatenation(
		repetition,
		star(node.NewConcatenation(plus(cWsp.Clone()), repetition.Clone())),
	))

	alternation := named("alternation", node.NewConcatenation(
		concatenation,
		star(cat(star(cWsp.Clone()), cs("/"), star(cWsp.Clone()), concatenation.Clone())),
	))

	group := named("group", cat(
		cs("("), star(cWsp.Clone()), alternation, star(cWsp.Clone()), cs(")"),
	))
	option := named("option", cat(
		cs("["), star(cWsp.Clone()), alternation.Clone(), star(cWsp.Clone()), cs("]"),
	))

	elementPlaceholder.Alternatives = []node.Node{rulename.Clone(), group, option, charVal, numVal, proseVal}

	elements := named("elements", node.NewConcatenation(alternation.Clone(), star(cWsp.Clone())))

	Rule = named("rule", cat(rulename, definedAs, elements, cNl.Clone()))

	Rulelist = named("rulelist", plus(node.NewAlternation(
		Rule,
		node.NewConcatenation(star(cWsp.Clone()), cNl.Clone()),
	)))
}
