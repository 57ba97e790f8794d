package rfc

import (
	"sync"

	"github.com/coregx/abnf/corerules"
	"github.com/coregx/abnf/ruleset"
)

var (
	rfc3986     *ruleset.Ruleset
	rfc3986Once sync.Once
)

// RFC3986 returns RFC 3986's URI grammar (not present in the original
// pack's retrieved source but required as a foundation by RFC 5321,
// RFC 7239 and RFC 9110/9112; reproduced here from the RFC 3986
// Appendix A ABNF text directly), building it on first call.
func RFC3986() *ruleset.Ruleset {
	rfc3986Once.Do(func() {
		rs, err := ruleset.FromSource([]byte(
		`pct-encoded = "%" HEXDIG HEXDIG`+"\r\n"+
			`unreserved = ALPHA / DIGIT / "-" / "." / "_" / "~"`+"\r\n"+
			`gen-delims = ":" / "/" / "?" / "#" / "[" / "]" / "@"`+"\r\n"+
			`sub-delims = "!" / "$" / "&" / "'" / "(" / ")" / "*" / "+" / "," / ";" / "="`+"\r\n"+
			`reserved = gen-delims / sub-delims`+"\r\n"+
			`pchar = unreserved / pct-encoded / sub-delims / ":" / "@"`+"\r\n"+

			`dec-octet = DIGIT / (%x31-39 DIGIT) / ("1" 2DIGIT) / ("2" %x30-34 DIGIT) / ("25" %x30-35)`+"\r\n"+
			`IPv4address = dec-octet "." dec-octet "." dec-octet "." dec-octet`+"\r\n"+

			`h16 = 1*4HEXDIG`+"\r\n"+
			`ls32 = (h16 ":" h16) / IPv4address`+"\r\n"+
			`IPv6address = (6(h16 ":") ls32) / ("::" 5(h16 ":") ls32) / ([h16] "::" 4(h16 ":") ls32) / ([*1(h16 ":") h16] "::" 3(h16 ":") ls32) / ([*2(h16 ":") h16] "::" 2(h16 ":") ls32) / ([*3(h16 ":") h16] "::" h16 ":" ls32) / ([*4(h16 ":") h16] "::" ls32) / ([*5(h16 ":") h16] "::" h16) / ([*6(h16 ":") h16] "::")`+"\r\n"+

			`IPvFuture = "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )`+"\r\n"+
			`IP-literal = "[" ( IPv6address / IPvFuture ) "]"`+"\r\n"+
			`reg-name = *( unreserved / pct-encoded / sub-delims )`+"\r\n"+
			`userinfo = *( unreserved / pct-encoded / sub-delims / ":" )`+"\r\n"+
			`host = IP-literal / IPv4address / reg-name`+"\r\n"+
			`port = *DIGIT`+"\r\n"+
			`authority = [ userinfo "@" ] host [ ":" port ]`+"\r\n"+

			`segment = *pchar`+"\r\n"+
			`segment-nz = 1*pchar`+"\r\n"+
			`segment-nz-nc = 1*( unreserved / pct-encoded / sub-delims / "@" )`+"\r\n"+
			`path-abempty = *( "/" segment )`+"\r\n"+
			`path-absolute = "/" [ segment-nz *( "/" segment ) ]`+"\r\n"+
			`path-rootless = segment-nz *( "/" segment )`+"\r\n"+
			`path-noscheme = segment-nz-nc *( "/" segment )`+"\r\n"+
			`path-empty = 0pchar`+"\r\n"+
			`path = path-abempty / path-absolute / path-noscheme / path-rootless / path-empty`+"\r\n"+

			`query = *( pchar / "/" / "?" )`+"\r\n"+
			`fragment = *( pchar / "/" / "?" )`+"\r\n"+
			`scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )`+"\r\n"+
			`hier-part = ("//" authority path-abempty) / path-absolute / path-rootless / path-empty`+"\r\n"+
			`relative-part = ("//" authority path-abempty) / path-absolute / path-noscheme / path-empty`+"\r\n"+
			`relative-ref = relative-part [ "?" query ] [ "#" fragment ]`+"\r\n"+
			`URI = scheme ":" hier-part [ "?" query ] [ "#" fragment ]`+"\r\n"+
			`absolute-URI = scheme ":" hier-part [ "?" query ]`+"\r\n"+
			`URI-reference = URI / relative-ref`+"\r\n",
		), corerules.Core())
		rfc3986 = must(rs, err, "RFC3986")
	})
	return rfc3986
}
