package urlcore

import "github.com/go-urlcore/urlcore/internal/constraints"

// ParseStandardURL parses an authority-based URL spec ("scheme://...")
// into its seven components. Any number of slashes after the scheme
// colon — including zero — is treated as introducing the authority,
// matching long-standing browser compatibility behavior.
func ParseStandardURL[T constraints.Codeunit](spec T) Parsed {
	p := newParsed()

	begin, end := trimSpec(spec)
	pos := begin
	if scheme, ok := ExtractScheme(spec, begin, end); ok {
		p.Scheme = scheme
		pos = scheme.End() + 1
	} else {
		p.Scheme = InvalidComponent
	}

	pos = skipSlashes(spec, pos, end)
	authEnd := scanAuthorityEnd(spec, pos, end)
	parseAuthority(spec, pos, authEnd, &p)
	scanPathQueryRef(spec, authEnd, end, true, &p)

	return p
}
