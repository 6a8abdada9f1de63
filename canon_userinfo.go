package urlcore

import "github.com/go-urlcore/urlcore/internal/grammar"

// canonicalizeUserinfo percent-escapes username and password outside
// the unreserved/sub-delim class. The ':' separator and trailing '@'
// are only emitted if the authority had a userinfo section at all
// (username present, even if empty) — a username-only authority
// ("user@host") and one with an explicitly empty password
// ("user:@host") render differently at the byte level even though both
// are "present" per the component model.
func canonicalizeUserinfo(spec string, username, password Component, out *CanonOutput) (usernameOut, passwordOut Component, valid bool) {
	if !username.IsValid() {
		return InvalidComponent, InvalidComponent, true
	}

	valid = true

	uBegin := out.Len()
	if username.IsNonEmpty() {
		if !escapeBytes([]byte(spec[username.Begin:username.End()]), grammar.IsUserinfoSafeChar, out) {
			valid = false
		}
	}
	usernameOut = MakeRange(uBegin, out.Len())

	passwordOut = InvalidComponent
	if password.IsValid() {
		out.WriteByte(':')
		pBegin := out.Len()
		if password.IsNonEmpty() {
			if !escapeBytes([]byte(spec[password.Begin:password.End()]), grammar.IsUserinfoSafeChar, out) {
				valid = false
			}
		}
		passwordOut = MakeRange(pBegin, out.Len())
	}

	out.WriteByte('@')
	return usernameOut, passwordOut, valid
}
