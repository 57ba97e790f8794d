package rfc

import (
	"sync"

	"github.com/coregx/abnf/corerules"
	"github.com/coregx/abnf/ruleset"
)

var (
	rfc5322     *ruleset.Ruleset
	rfc5322Once sync.Once
)

// RFC5322 returns RFC 5322's Internet Message Format grammar (subset:
// folding whitespace, comments, atoms, quoted strings, addr-spec and
// msg-id, plus the date-time production), grounded directly on the
// original Python implementation's rfc5322.py, which states only a
// subset has been implemented.
func RFC5322() *ruleset.Ruleset {
	rfc5322Once.Do(func() {
		rs, err := ruleset.FromSource([]byte(
		`obs-FWS = 1*WSP *(CRLF 1*WSP)`+"\r\n"+
			`obs-NO-WS-CTL = %d1-8 / %d11 / %d12 / %d14-31 / %d127`+"\r\n"+
			`obs-ctext = obs-NO-WS-CTL`+"\r\n"+
			`obs-qtext = obs-NO-WS-CTL`+"\r\n"+
			`obs-qp = "\" (%d0 / obs-NO-WS-CTL / LF / CR)`+"\r\n"+

			`quoted-pair = ("\" (VCHAR / WSP)) / obs-qp`+"\r\n"+
			`obs-dtext = obs-NO-WS-CTL / quoted-pair`+"\r\n"+

			`FWS = ([*WSP CRLF] 1*WSP) / obs-FWS`+"\r\n"+
			`ctext = %d33-39 / %d42-91 / %d93-126 / obs-ctext`+"\r\n"+
			`ccontent = ctext / quoted-pair / comment`+"\r\n"+
			`comment = "(" *([FWS] ccontent) [FWS] ")"`+"\r\n"+
			`CFWS = (1*([FWS] comment) [FWS]) / FWS`+"\r\n"+

			`atext = ALPHA / DIGIT / "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "/" / "=" / "?" / "^" / "_" / "` + "`" + `" / "{" / "|" / "}" / "~"` + "\r\n" +
			`atom = [CFWS] 1*atext [CFWS]` + "\r\n" +
			`dot-atom-text = 1*atext *("." 1*atext)` + "\r\n" +
			`dot-atom = [CFWS] dot-atom-text [CFWS]` + "\r\n" +

			`qtext = %d33 / %d35-91 / %d93-126 / obs-qtext`+"\r\n"+
			`qcontent = qtext / quoted-pair`+"\r\n"+
			`quoted-string = [CFWS] DQUOTE *([FWS] qcontent) [FWS] DQUOTE [CFWS]`+"\r\n"+

			`word = atom / quoted-string`+"\r\n"+
			`obs-local-part = word *("." word)`+"\r\n"+
			`obs-domain = atom *("." atom)`+"\r\n"+

			`dtext = %d33-90 / %d94-126 / obs-dtext`+"\r\n"+
			`domain-literal = [CFWS] "[" *([FWS] dtext) [FWS] "]" [CFWS]`+"\r\n"+
			`domain = dot-atom / domain-literal / obs-domain`+"\r\n"+
			`local-part = dot-atom / quoted-string / obs-local-part`+"\r\n"+
			`addr-spec = local-part "@" domain`+"\r\n"+

			`obs-id-right = domain`+"\r\n"+
			`obs-id-left = local-part`+"\r\n"+
			`no-fold-literal = "[" *dtext "]"`+"\r\n"+
			`id-right = dot-atom-text / no-fold-literal / obs-id-right`+"\r\n"+
			`id-left = dot-atom-text / obs-id-left`+"\r\n"+
			`msg-id = [CFWS] "<" id-left "@" id-right ">" [CFWS]`+"\r\n"+

			`obs-day-of-week = [CFWS] day-name [CFWS]`+"\r\n"+
			`obs-day = [CFWS] 1*2DIGIT [CFWS]`+"\r\n"+
			`obs-year = [CFWS] 2*DIGIT [CFWS]`+"\r\n"+
			`obs-hour = [CFWS] 2DIGIT [CFWS]`+"\r\n"+
			`obs-minute = [CFWS] 2DIGIT [CFWS]`+"\r\n"+
			`obs-second = [CFWS] 2DIGIT [CFWS]`+"\r\n"+
			`obs-zone = "UT" / "GMT" / "EST" / "EDT" / "CST" / "CDT" / "MST" / "MDT" / "PST" / "PDT" / %d65-73 / %d75-90 / %d97-105 / %d107-122`+"\r\n"+

			`zone = (FWS ( "+" / "-" ) 4DIGIT) / obs-zone`+"\r\n"+
			`second = 2DIGIT / obs-second`+"\r\n"+
			`minute = 2DIGIT / obs-minute`+"\r\n"+
			`hour = 2DIGIT / obs-hour`+"\r\n"+
			`time-of-day = hour ":" minute [ ":" second ]`+"\r\n"+
			`time = time-of-day zone`+"\r\n"+
			`year = (FWS 4*DIGIT FWS) / obs-year`+"\r\n"+
			`month = "Jan" / "Feb" / "Mar" / "Apr" / "May" / "Jun" / "Jul" / "Aug" / "Sep" / "Oct" / "Nov" / "Dec"`+"\r\n"+
			`day = ([FWS] 1*2DIGIT FWS) / obs-day`+"\r\n"+
			`date = day month year`+"\r\n"+
			`day-name = "Mon" / "Tue" / "Wed" / "Thu" / "Fri" / "Sat" / "Sun"`+"\r\n"+
			`day-of-week = ([FWS] day-name) / obs-day-of-week`+"\r\n"+
			`date-time = [ day-of-week "," ] date time [CFWS]`+"\r\n",
		), corerules.Core())
		rfc5322 = must(rs, err, "RFC5322")
	})
	return rfc5322
}
