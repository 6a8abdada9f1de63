package urlcore

import "github.com/go-urlcore/urlcore/internal/grammar"

// writeEscaped appends "%HH" for b to out.
func writeEscaped(out *CanonOutput, b byte) {
	var buf []byte
	grammar.AppendEscapedChar(b, &buf)
	out.Write(buf)
}

// escapeBytes appends s to out, passing bytes classified safe through
// unescaped and percent-escaping everything else. A well-formed
// existing "%HH" escape in s is always re-emitted as a percent escape
// (hex uppercased), regardless of whether the decoded byte would
// itself be safe — once a byte is escaped in the source it must stay
// escaped, or its meaning as a literal delimiter could change. A
// malformed "%" (not followed by two hex digits) is emitted as "%25"
// and escaping continues; the return value reports false in that case.
func escapeBytes(s []byte, safe func(byte) bool, out *CanonOutput) bool {
	valid := true
	for i := 0; i < len(s); {
		c := s[i]
		if c == '%' {
			if dec, next, ok := grammar.DecodeEscaped(s, i); ok {
				writeEscaped(out, dec)
				i = next
				continue
			}
			writeEscaped(out, '%')
			valid = false
			i++
			continue
		}
		if safe(c) {
			out.WriteByte(c)
		} else {
			writeEscaped(out, c)
		}
		i++
	}
	return valid
}
