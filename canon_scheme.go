package urlcore

import "github.com/go-urlcore/urlcore/internal/grammar"

// canonicalizeScheme lowercases spec[comp] and validates it consists
// only of ASCII letters, digits, '+', '-', and '.'. The trailing ':'
// separator is appended but not included in the returned component.
//
// If any byte fails that grammar, the scheme is already unparseable —
// rather than keep writing the offending bytes straight through (which
// could put a control character into the canonical output), the whole
// range is rendered through the same best-effort fallback used for any
// other range the parser could not fully validate.
func canonicalizeScheme(spec string, comp Component, out *CanonOutput) (Component, bool) {
	begin := out.Len()
	if !comp.IsValid() {
		return MakeRange(begin, begin), false
	}

	lowered := make([]byte, comp.Len)
	valid := true
	for i := comp.Begin; i < comp.End(); i++ {
		c := spec[i]
		switch {
		case c >= 'A' && c <= 'Z':
			c = c - 'A' + 'a'
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '+', c == '-', c == '.':
		default:
			valid = false
		}
		lowered[i-comp.Begin] = c
	}

	if valid {
		out.Write(lowered)
	} else {
		var fallback []byte
		grammar.AppendInvalidNarrowString(lowered, &fallback)
		out.Write(fallback)
	}

	schemeComp := MakeRange(begin, out.Len())
	out.WriteByte(':')
	return schemeComp, valid
}
