package rfc

import (
	"sync"

	"github.com/coregx/abnf/corerules"
	"github.com/coregx/abnf/ruleset"
)

var (
	rfc5321     *ruleset.Ruleset
	rfc5321Once sync.Once
)

// RFC5321 returns RFC 5321's SMTP grammar, seeded with specific rules
// borrowed directly from RFC3986 and RFC5322 (not redefined) and then
// layered with its own ABNF source text — the same two-step
// "Ruleset({...seed...}).update_from_source(...)" construction the
// original Python rfc5321.py uses.
func RFC5321() *ruleset.Ruleset {
	rfc5321Once.Do(func() {
		rs := ruleset.NewWithCore(corerules.Core())
		seed(rs, "IPv4-address-literal", RFC3986(), "IPv4address")
		seed(rs, "IPv6-addr", RFC3986(), "IPv6address")
		seed(rs, "atext", RFC5322(), "atext")
		seed(rs, "msg-id", RFC5322(), "msg-id")
		seed(rs, "FWS", RFC5322(), "FWS")
		seed(rs, "CFWS", RFC5322(), "CFWS")

		if err := ruleset.UpdateFromSource(rs, []byte(
		`zone = (FWS ( "+" / "-" ) 4DIGIT)`+"\r\n"+
			`second = 2DIGIT`+"\r\n"+
			`minute = 2DIGIT`+"\r\n"+
			`hour = 2DIGIT`+"\r\n"+
			`time-of-day = hour ":" minute [ ":" second ]`+"\r\n"+
			`time = time-of-day zone`+"\r\n"+
			`year = (FWS 4*DIGIT FWS)`+"\r\n"+
			`month = "Jan" / "Feb" / "Mar" / "Apr" / "May" / "Jun" / "Jul" / "Aug" / "Sep" / "Oct" / "Nov" / "Dec"`+"\r\n"+
			`day = ([FWS] 1*2DIGIT FWS)`+"\r\n"+
			`date = day month year`+"\r\n"+
			`day-name = "Mon" / "Tue" / "Wed" / "Thu" / "Fri" / "Sat" / "Sun"`+"\r\n"+
			`day-of-week = ([FWS] day-name)`+"\r\n"+
			`date-time = [ day-of-week "," ] date time [CFWS]`+"\r\n"+

			`Let-dig = ALPHA / DIGIT`+"\r\n"+
			`Ldh-str = *( ALPHA / DIGIT / "-" ) Let-dig`+"\r\n"+
			`dcontent = %d33-90 / %d94-126`+"\r\n"+
			`Standardized-tag = Ldh-str`+"\r\n"+
			`General-address-literal = Standardized-tag ":" 1*dcontent`+"\r\n"+
			`IPv6-address-literal = "IPv6" IPv6-addr`+"\r\n"+

			`Atom = 1*atext`+"\r\n"+
			`qtextSMTP = %d32-33 / %d35-91 / %d93-126`+"\r\n"+
			`quoted-pairSMTP = %d92 %d32-126`+"\r\n"+
			`QcontentSMTP = qtextSMTP / quoted-pairSMTP`+"\r\n"+
			`Quoted-string = DQUOTE *QcontentSMTP DQUOTE`+"\r\n"+
			`String = Atom / Quoted-string`+"\r\n"+
			`Dot-string = Atom *("." Atom)`+"\r\n"+
			`Local-part = Dot-string / Quoted-string`+"\r\n"+
			`address-literal = "[" ( IPv4-address-literal / IPv6-address-literal / General-address-literal ) "]"`+"\r\n"+
			`Mailbox = Local-part "@" ( Domain / address-literal )`+"\r\n"+
			`sub-domain = Let-dig [Ldh-str]`+"\r\n"+
			`Domain = sub-domain *("." sub-domain)`+"\r\n"+
			`Argument = Atom`+"\r\n"+
			`Keyword = Ldh-str`+"\r\n"+
			`esmtp-value = 1*(%d33-60 / %d62-126)`+"\r\n"+
			`esmtp-keyword = (ALPHA / DIGIT) *(ALPHA / DIGIT / "-")`+"\r\n"+
			`esmtp-param = esmtp-keyword ["=" esmtp-value]`+"\r\n"+
			`Rcpt-parameters = esmtp-param *(SP esmtp-param)`+"\r\n"+
			`Mail-parameters = esmtp-param *(SP esmtp-param)`+"\r\n"+
			`At-domain = "@" Domain`+"\r\n"+
			`A-d-l = At-domain *( "," At-domain )`+"\r\n"+
			`Path = "<" [ A-d-l ":" ] Mailbox ">"`+"\r\n"+
			`Forward-path = Path`+"\r\n"+
			`Reverse-path = Path / "<>"`+"\r\n"+

			`Attdl-Protocol = Atom`+"\r\n"+
			`Protocol = "ESMTP" / "SMTP" / Attdl-Protocol`+"\r\n"+
			`Addtl-Link = Atom`+"\r\n"+
			`Link = "TCP" / Addtl-Link`+"\r\n"+
			`Additional-Registered-Clauses = CFWS Atom FWS String`+"\r\n"+
			`For = CFWS "FOR" FWS ( Path / Mailbox )`+"\r\n"+
			`ID = CFWS "ID" FWS ( Atom / msg-id )`+"\r\n"+
			`With = CFWS "WITH" FWS Protocol`+"\r\n"+
			`Via = CFWS "VIA" FWS Link`+"\r\n"+
			`Opt-info = [Via] [With] [ID] [For] [Additional-Registered-Clauses]`+"\r\n"+
			`TCP-info = address-literal / ( Domain FWS address-literal )`+"\r\n"+
			`Extended-Domain = ( Domain FWS "(" TCP-info ")" ) / ( address-literal FWS "(" TCP-info ")" ) / Domain`+"\r\n"+
			`By-domain = CFWS "BY" FWS Extended-Domain`+"\r\n"+
			`From-domain = "FROM" FWS Extended-Domain`+"\r\n"+
			`Stamp = From-domain By-domain Opt-info [CFWS] ";" FWS date-time`+"\r\n"+
			`Time-stamp-line = "Received:" FWS Stamp`+"\r\n",
		)); err != nil {
			panic(err)
		}

		rfc5321 = rs
	})
	return rfc5321
}
