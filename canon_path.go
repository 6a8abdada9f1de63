package urlcore

import "github.com/go-urlcore/urlcore/internal/grammar"

// canonicalizePath resolves '.' and '..' segments with standard web
// semantics, normalizes '\' to '/', and percent-escapes each segment's
// bytes outside the path-safe class. A path of exactly "*" (as in
// "OPTIONS * HTTP/1.1") is emitted unescaped with no segment
// processing at all.
func canonicalizePath(spec string, comp Component, out *CanonOutput) (Component, bool) {
	begin := out.Len()
	if !comp.IsValid() {
		return InvalidComponent, true
	}

	raw := spec[comp.Begin:comp.End()]
	if raw == "*" {
		out.WriteByte('*')
		return MakeRange(begin, out.Len()), true
	}

	leadingSlash := len(raw) > 0 && (raw[0] == '/' || raw[0] == '\\')

	start := 0
	if leadingSlash {
		start = 1
	}
	var tokens []string
	for i := start; i <= len(raw); i++ {
		if i == len(raw) || raw[i] == '/' || raw[i] == '\\' {
			tokens = append(tokens, raw[start:i])
			start = i + 1
		}
	}

	var stack []string
	trailingSlash := false
	for _, t := range tokens {
		switch t {
		case ".":
			trailingSlash = true
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			trailingSlash = true
		default:
			stack = append(stack, t)
			trailingSlash = false
		}
	}

	if leadingSlash {
		out.WriteByte('/')
	}

	valid := true
	for i, seg := range stack {
		if i > 0 {
			out.WriteByte('/')
		}
		if !escapeBytes([]byte(seg), grammar.IsPathSafeChar, out) {
			valid = false
		}
	}
	if trailingSlash && len(stack) > 0 {
		out.WriteByte('/')
	}

	return MakeRange(begin, out.Len()), valid
}

// canonicalizeOpaqueBody escapes an opaque scheme's body (javascript:,
// data:, about:, ...) with no dot-segment resolution and no backslash
// normalization — the body is arbitrary scheme-defined text, not a
// hierarchical path.
func canonicalizeOpaqueBody(spec string, comp Component, out *CanonOutput) (Component, bool) {
	begin := out.Len()
	if !comp.IsValid() {
		return InvalidComponent, true
	}
	valid := escapeBytes([]byte(spec[comp.Begin:comp.End()]), grammar.IsPathSafeChar, out)
	return MakeRange(begin, out.Len()), valid
}
