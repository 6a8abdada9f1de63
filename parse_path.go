package urlcore

import "github.com/go-urlcore/urlcore/internal/constraints"

// ParsePathURL parses an opaque spec ("scheme:opaque-body") such as
// javascript:, data:, or about:. Neither '?' nor '#' has any special
// meaning inside the opaque body: the entire remainder after the
// scheme colon is the path, and Query and Ref are always absent.
// Scheme extraction does not stop at whitespace or slashes the way it
// does for the hierarchical modes: an opaque scheme like
// "javascript :" keeps the trailing space as part of the scheme name.
func ParsePathURL[T constraints.Codeunit](spec T) Parsed {
	p := newParsed()

	begin, end := trimSpec(spec)
	pos := begin
	if scheme, ok := extractOpaqueScheme(spec, begin, end); ok {
		p.Scheme = scheme
		pos = scheme.End() + 1
	} else {
		p.Scheme = InvalidComponent
	}

	p.Query = InvalidComponent
	p.Ref = InvalidComponent

	if pos < end {
		p.Path = MakeRange(pos, end)
	} else {
		p.Path = InvalidComponent
	}

	return p
}
