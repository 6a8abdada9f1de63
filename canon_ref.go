package urlcore

import "github.com/go-urlcore/urlcore/internal/grammar"

// canonicalizeRef escapes the fragment's control bytes, space, DEL,
// non-ASCII bytes, and a handful of reserved bytes (`"`, `#`, `<`, `>`,
// `%`) — the same set canonicalizeQuery excludes — and passes every
// other ASCII byte through unescaped, including `/` and `?`; malformed UTF-8 (already replaced
// with U+FFFD at ingress) is reported as invalid but the output is
// still complete.
func canonicalizeRef(spec string, comp Component, out *CanonOutput) (Component, bool) {
	if !comp.IsValid() {
		return InvalidComponent, true
	}

	out.WriteByte('#')
	begin := out.Len()
	valid := escapeBytes([]byte(spec[comp.Begin:comp.End()]), grammar.IsRefSafeChar, out)
	return MakeRange(begin, out.Len()), valid
}
