package urlcore

import "github.com/go-urlcore/urlcore/internal/grammar"

// canonicalizeHost first attempts an IPv4 literal, then an IPv6 literal
// if bracketed, and otherwise treats host as a registered name:
// lowercased ASCII with control characters, spaces, and authority
// punctuation rejected, and non-ASCII transcoded to UTF-8 then
// percent-escaped.
func canonicalizeHost(spec string, comp Component, out *CanonOutput) (Component, bool) {
	begin := out.Len()
	if !comp.IsValid() {
		return Component{Begin: begin, Len: 0}, true
	}
	if comp.Len == 0 {
		return Component{Begin: begin, Len: 0}, true
	}

	host := spec[comp.Begin:comp.End()]

	if len(host) > 0 && host[0] != '[' {
		tmp := NewCanonOutput()
		if canonicalizeIPv4(host, tmp) {
			out.WriteString(tmp.String())
			tmp.Free()
			return MakeRange(begin, out.Len()), true
		}
		tmp.Free()
	}

	if len(host) > 0 && host[0] == '[' {
		valid := canonicalizeIPv6(host, out)
		return MakeRange(begin, out.Len()), valid
	}

	return canonicalizeRegisteredName(host, begin, out)
}

func canonicalizeRegisteredName(host string, begin int, out *CanonOutput) (Component, bool) {
	valid := true
	for i := 0; i < len(host); i++ {
		c := host[i]
		switch {
		case grammar.IsHostForbiddenChar(c):
			valid = false
			writeEscaped(out, c)
		case c >= 'A' && c <= 'Z':
			out.WriteByte(c - 'A' + 'a')
		case c < 0x80:
			out.WriteByte(c)
		default:
			// Non-ASCII byte of a UTF-8 sequence decoded at ingress;
			// percent-escape it byte-by-byte.
			writeEscaped(out, c)
		}
	}
	return MakeRange(begin, out.Len()), valid
}
