package rfc

import (
	"sync"

	"github.com/coregx/abnf/corerules"
	"github.com/coregx/abnf/ruleset"
)

var (
	rfc7239     *ruleset.Ruleset
	rfc7239Once sync.Once
)

// RFC7239 returns RFC 7239's Forwarded HTTP header grammar, seeded with
// RFC9110's token/quoted-string/OWS and RFC3986's IPv4address/IPv6address,
// grounded directly on the original Python implementation's rfc7239.py.
//
// Per a note in that original: the RFC defines Forwarded with a "#rule"
// list construct that RFC 7230/9110 never formally specifies, so
// Forwarded here is expressed with an explicit comma-separated
// concatenation instead.
func RFC7239() *ruleset.Ruleset {
	rfc7239Once.Do(func() {
		rs := ruleset.NewWithCore(corerules.Core())
		seed(rs, "token", RFC9110(), "token")
		seed(rs, "quoted-string", RFC9110(), "quoted-string")
		seed(rs, "OWS", RFC9110(), "OWS")
		seed(rs, "IPv4address", RFC3986(), "IPv4address")
		seed(rs, "IPv6address", RFC3986(), "IPv6address")

		if err := ruleset.UpdateFromSource(rs, []byte(
			`value = token / quoted-string`+"\r\n"+
				`forwarded-pair = token "=" value`+"\r\n"+
				`forwarded-element = [ forwarded-pair ] *( ";" [ forwarded-pair ] )`+"\r\n"+
				`Forwarded = forwarded-element *( OWS "," OWS forwarded-element )`+"\r\n"+

				`obfport = "_" 1*(ALPHA / DIGIT / "." / "_" / "-")`+"\r\n"+
				`port = 1*5DIGIT`+"\r\n"+
				`node-port = port / obfport`+"\r\n"+
				`obfnode = "_" 1*( ALPHA / DIGIT / "." / "_" / "-")`+"\r\n"+
				`nodename = IPv4address / "[" IPv6address "]" / "unknown" / obfnode`+"\r\n"+
				`node = nodename [ ":" node-port ]`+"\r\n",
		)); err != nil {
			panic(err)
		}

		rfc7239 = rs
	})
	return rfc7239
}
