package rfc

import (
	"sync"

	"github.com/coregx/abnf/corerules"
	"github.com/coregx/abnf/ruleset"
)

var (
	rfc9112     *ruleset.Ruleset
	rfc9112Once sync.Once
)

// RFC9112 returns RFC 9112's HTTP/1.1 message grammar (subset), seeded
// with rules from RFC9110 and RFC3986, grounded directly on the original
// Python implementation's rfc9112.py.
func RFC9112() *ruleset.Ruleset {
	rfc9112Once.Do(func() {
		rs := ruleset.NewWithCore(corerules.Core())
		seed(rs, "BWS", RFC9110(), "BWS")
		seed(rs, "OWS", RFC9110(), "OWS")
		seed(rs, "RWS", RFC9110(), "RWS")
		seed(rs, "absolute-path", RFC9110(), "absolute-path")
		seed(rs, "field-name", RFC9110(), "field-name")
		seed(rs, "field-value", RFC9110(), "field-value")
		seed(rs, "obs-text", RFC9110(), "obs-text")
		seed(rs, "quoted-string", RFC9110(), "quoted-string")
		seed(rs, "token", RFC9110(), "token")
		seed(rs, "absolute-URI", RFC3986(), "absolute-URI")
		seed(rs, "authority", RFC3986(), "authority")
		seed(rs, "uri-host", RFC3986(), "host")
		seed(rs, "port", RFC3986(), "port")
		seed(rs, "query", RFC3986(), "query")

		if err := ruleset.UpdateFromSource(rs, []byte(
			`message-body = *OCTET`+"\r\n"+
				`field-line = field-name ":" OWS field-value OWS`+"\r\n"+
				`reason-phrase = 1*( HTAB / SP / VCHAR / obs-text)`+"\r\n"+
				`status-code = 3DIGIT`+"\r\n"+
				`HTTP-name = %s"HTTP"`+"\r\n"+
				`HTTP-version = HTTP-name "/" DIGIT "." DIGIT`+"\r\n"+
				`status-line = HTTP-version SP status-code SP [ reason-phrase ]`+"\r\n"+
				`asterisk-form = "*"`+"\r\n"+
				`authority-form = uri-host ":" port`+"\r\n"+
				`absolute-form = absolute-URI`+"\r\n"+
				`origin-form = absolute-path [ "?" query ]`+"\r\n"+
				`request-target = origin-form / absolute-form / authority-form / asterisk-form`+"\r\n"+
				`method = token`+"\r\n"+
				`request-line = method SP request-target SP HTTP-version`+"\r\n"+
				`start-line = request-line / status-line`+"\r\n"+
				`HTTP-message = start-line CRLF *( field-line CRLF ) CRLF [ message-body ]`+"\r\n",
		)); err != nil {
			panic(err)
		}

		rfc9112 = rs
	})
	return rfc9112
}
