// Package corerules hand-wires the ABNF core ruleset from RFC 5234
// Appendix B.1 (ALPHA, DIGIT, CRLF, WSP, …), consulted as the fallback
// ruleset for every grammar compiled by package ruleset.
package corerules

import (
	"github.com/coregx/abnf/node"
	"github.com/coregx/abnf/ruleset"
)

var core *ruleset.Ruleset

// Core returns the shared RFC 5234 Appendix B.1 core ruleset. The
// returned Ruleset must not be mutated; it is shared across every
// grammar compiled via FromSource/UpdateFromSource.
func Core() *ruleset.Ruleset {
	return core
}

func rng(lo, hi byte) *node.RangedLiteral { return node.NewRangedLiteral(lo, hi) }

func lit(s string) *node.Literal { return node.NewLiteral([]byte(s), false) }

func init() {
	core = ruleset.New()

	core.Insert("ALPHA", node.NewAlternation(rng(0x41, 0x5A), rng(0x61, 0x7A)))
	core.Insert("BIT", node.NewAlternation(lit("0"), lit("1")))
	core.Insert("CHAR", rng(0x01, 0x7F))
	core.Insert("CR", node.NewLiteral([]byte{0x0D}, true))
	core.Insert("LF", node.NewLiteral([]byte{0x0A}, true))
	cr, _ := core.Lookup("CR")
	lf, _ := core.Lookup("LF")
	core.Insert("CRLF", node.NewConcatenation(cr.Clone(), lf.Clone()))
	core.Insert("CTL", node.NewAlternation(rng(0x00, 0x1F), node.NewLiteral([]byte{0x7F}, true)))
	core.Insert("DIGIT", rng(0x30, 0x39))
	core.Insert("DQUOTE", node.NewLiteral([]byte{0x22}, true))
	core.Insert("HEXDIG", node.NewAlternation(rng(0x30, 0x39), rng(0x41, 0x46), rng(0x61, 0x66)))
	core.Insert("HTAB", node.NewLiteral([]byte{0x09}, true))
	core.Insert("SP", node.NewLiteral([]byte{0x20}, true))
	htab, _ := core.Lookup("HTAB")
	sp, _ := core.Lookup("SP")
	core.Insert("WSP", node.NewAlternation(sp.Clone(), htab.Clone()))
	wsp, _ := core.Lookup("WSP")
	crlf, _ := core.Lookup("CRLF")
	lwspInner := node.NewAlternation(wsp.Clone(), node.NewConcatenation(crlf.Clone(), wsp.Clone()))
	core.Insert("LWSP", node.NewRepetition(lwspInner, 0, node.Unbounded))
	core.Insert("OCTET", rng(0x00, 0xFF))
	core.Insert("VCHAR", rng(0x21, 0x7E))
}
