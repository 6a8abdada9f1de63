package urlcore

import (
	"github.com/go-urlcore/urlcore/internal/constraints"
	"github.com/go-urlcore/urlcore/internal/grammar"
)

// doesBeginDriveSpec reports whether spec[pos:end) begins with a
// Windows drive letter specifier: an ASCII letter followed by ':' or
// '|'.
func doesBeginDriveSpec[T constraints.Codeunit](spec T, pos, end int) bool {
	if end-pos < 2 {
		return false
	}
	c0 := grammar.UnitAt(spec, pos)
	if !((c0 >= 'a' && c0 <= 'z') || (c0 >= 'A' && c0 <= 'Z')) {
		return false
	}
	c1 := grammar.UnitAt(spec, pos+1)
	return c1 == ':' || c1 == '|'
}

// ParseFileURL parses a "file:" spec, applying the Windows drive-letter
// quirks: a spec that begins (after any leading slashes) with a drive
// specifier, or that carries four or more leading slashes, is a local
// path with no host; everything else is parsed as an authority (a UNC
// host for the common two- or three-slash case).
func ParseFileURL[T constraints.Codeunit](spec T) Parsed {
	p := newParsed()

	begin, end := trimSpec(spec)
	pos := begin
	if scheme, ok := ExtractScheme(spec, begin, end); ok {
		p.Scheme = scheme
		pos = scheme.End() + 1
	} else {
		p.Scheme = InvalidComponent
	}

	slashBegin := pos
	pos = skipSlashes(spec, pos, end)
	slashCount := pos - slashBegin

	if slashCount >= 4 || doesBeginDriveSpec(spec, pos, end) {
		p.Username = InvalidComponent
		p.Password = InvalidComponent
		p.Host = Component{Begin: pos, Len: 0}
		p.Port = InvalidComponent

		pathBegin := pos
		if slashCount >= 1 {
			pathBegin = pos - 1
		}
		scanPathQueryRef(spec, pathBegin, end, false, &p)
		return p
	}

	authEnd := scanAuthorityEnd(spec, pos, end)
	parseAuthority(spec, pos, authEnd, &p)
	scanPathQueryRef(spec, authEnd, end, true, &p)

	return p
}
