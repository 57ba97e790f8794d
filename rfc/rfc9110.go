package rfc

import (
	"sync"

	"github.com/coregx/abnf/corerules"
	"github.com/coregx/abnf/ruleset"
)

var (
	rfc9110     *ruleset.Ruleset
	rfc9110Once sync.Once
)

// RFC9110 returns RFC 9110's HTTP Semantics grammar (subset), seeded
// with RFC3986's segment/host/port rules, grounded directly on the
// original Python implementation's rfc9110.py.
func RFC9110() *ruleset.Ruleset {
	rfc9110Once.Do(func() {
		rs := ruleset.NewWithCore(corerules.Core())
		seed(rs, "segment", RFC3986(), "segment")
		seed(rs, "uri-host", RFC3986(), "host")
		seed(rs, "port", RFC3986(), "port")

		if err := ruleset.UpdateFromSource(rs, []byte(
			`OWS = *( SP / HTAB )`+"\r\n"+
				`RWS = 1*( SP / HTAB )`+"\r\n"+
				`BWS = OWS`+"\r\n"+
				`obs-text = %x80-FF`+"\r\n"+
				`quoted-pair = "\" ( HTAB / SP / VCHAR / obs-text )`+"\r\n"+
				`qdtext = HTAB / SP / %x21 / %x23-5B / %x5D-7E / obs-text`+"\r\n"+
				`quoted-string = DQUOTE *( qdtext / quoted-pair ) DQUOTE`+"\r\n"+
				`field-vchar = VCHAR / obs-text`+"\r\n"+
				`field-content = field-vchar [ 1*( SP / HTAB / field-vchar ) field-vchar ]`+"\r\n"+
				`field-value = *field-content`+"\r\n"+
				`tchar = "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "." / "^" / "_" / "` + "`" + `" / "|" / "~" / DIGIT / ALPHA` + "\r\n" +
				`token = 1*tchar` + "\r\n" +
				`field-name = token` + "\r\n" +
				`absolute-path = 1*( "/" segment )` + "\r\n" +
				`parameter-value = ( token / quoted-string )` + "\r\n" +
				`parameter-name = token` + "\r\n" +
				`parameter = parameter-name "=" parameter-value` + "\r\n" +
				`parameters = *( OWS ";" OWS [ parameter ] )` + "\r\n" +
				`Host = uri-host [ ":" port ]` + "\r\n" +
				`subtype = token` + "\r\n" +
				`type = token` + "\r\n" +
				`media-type = type "/" subtype parameters` + "\r\n" +
				`Content-Type = media-type` + "\r\n" +
				`connection-option = token` + "\r\n" +
				`Connection = connection-option *( OWS "," OWS connection-option )` + "\r\n",
		)); err != nil {
			panic(err)
		}

		rfc9110 = rs
	})
	return rfc9110
}
