package urlcore

import (
	"github.com/go-urlcore/urlcore/internal/constraints"
	"github.com/go-urlcore/urlcore/internal/grammar"
)

func isSpaceUnit(c uint32) bool { return c <= 0x20 }

func isSlashUnit(c uint32) bool { return c == '/' || c == '\\' }

// trimSpec returns the [begin, end) range of spec with leading and
// trailing ASCII whitespace (<= 0x20, including tab/CR/LF) removed.
// Components reported by the parser remain relative to the untrimmed
// spec passed in by the caller.
func trimSpec[T constraints.Codeunit](spec T) (begin, end int) {
	n := grammar.Len(spec)
	begin, end = 0, n
	for begin < end && isSpaceUnit(grammar.UnitAt(spec, begin)) {
		begin++
	}
	for end > begin && isSpaceUnit(grammar.UnitAt(spec, end-1)) {
		end--
	}
	return begin, end
}

// ExtractScheme finds the first ':' in spec[begin:end] that appears
// before any '/', '\', '?', '#', or whitespace. It returns the
// component spanning the scheme name (excluding the colon) and true on
// success, or the invalid component and false if no such colon exists.
func ExtractScheme[T constraints.Codeunit](spec T, begin, end int) (Component, bool) {
	for i := begin; i < end; i++ {
		c := grammar.UnitAt(spec, i)
		switch {
		case c == ':':
			return MakeRange(begin, i), true
		case isSpaceUnit(c), c == '/', c == '\\', c == '?', c == '#':
			return InvalidComponent, false
		}
	}
	return InvalidComponent, false
}

// extractOpaqueScheme is the scheme scan used by ParsePathURL: it looks
// only for the first ':' and does not treat whitespace or slashes as
// terminators, so an opaque scheme like "javascript :" (the trailing
// space belongs to the scheme, not a separator) round-trips correctly.
func extractOpaqueScheme[T constraints.Codeunit](spec T, begin, end int) (Component, bool) {
	for i := begin; i < end; i++ {
		if grammar.UnitAt(spec, i) == ':' {
			return MakeRange(begin, i), true
		}
	}
	return InvalidComponent, false
}

// parseAuthority splits spec[begin:end) — the authority section of a
// hierarchical URL, not including any leading slashes — into userinfo,
// host, and port components on p.
func parseAuthority[T constraints.Codeunit](spec T, begin, end int, p *Parsed) {
	if begin == end {
		p.Username = InvalidComponent
		p.Password = InvalidComponent
		p.Host = Component{Begin: begin, Len: 0}
		p.Port = InvalidComponent
		return
	}

	at := -1
	for i := begin; i < end; i++ {
		if grammar.UnitAt(spec, i) == '@' {
			at = i
		}
	}

	hostBegin := begin
	if at >= 0 {
		parseUserinfo(spec, begin, at, p)
		hostBegin = at + 1
	} else {
		p.Username = InvalidComponent
		p.Password = InvalidComponent
	}
	parseHostPort(spec, hostBegin, end, p)
}

// parseUserinfo splits spec[begin:end) on its first ':' into username
// and password.
func parseUserinfo[T constraints.Codeunit](spec T, begin, end int, p *Parsed) {
	colon := -1
	for i := begin; i < end; i++ {
		if grammar.UnitAt(spec, i) == ':' {
			colon = i
			break
		}
	}
	if colon < 0 {
		p.Username = MakeRange(begin, end)
		p.Password = InvalidComponent
		return
	}
	p.Username = MakeRange(begin, colon)
	p.Password = MakeRange(colon+1, end)
}

// parseHostPort splits spec[begin:end) into host and port. A host
// beginning with '[' extends through its matching ']' (an IPv6
// literal, which may itself contain colons); otherwise the first ':'
// ends the host and begins the port.
func parseHostPort[T constraints.Codeunit](spec T, begin, end int, p *Parsed) {
	if begin == end {
		p.Host = Component{Begin: begin, Len: 0}
		p.Port = InvalidComponent
		return
	}

	if grammar.UnitAt(spec, begin) == '[' {
		j := begin + 1
		for j < end && grammar.UnitAt(spec, j) != ']' {
			j++
		}
		hostEnd := end
		if j < end {
			hostEnd = j + 1
		}
		if hostEnd < end && grammar.UnitAt(spec, hostEnd) == ':' {
			p.Host = MakeRange(begin, hostEnd)
			p.Port = MakeRange(hostEnd+1, end)
		} else {
			p.Host = MakeRange(begin, end)
			p.Port = InvalidComponent
		}
		return
	}

	colon := -1
	for i := begin; i < end; i++ {
		if grammar.UnitAt(spec, i) == ':' {
			colon = i
			break
		}
	}
	if colon < 0 {
		p.Host = MakeRange(begin, end)
		p.Port = InvalidComponent
		return
	}
	p.Host = MakeRange(begin, colon)
	p.Port = MakeRange(colon+1, end)
}

// scanPathQueryRef scans spec[pos:end) into path, query, and ref on p.
// The path component includes its leading '/' or '\' when present. If
// requireSlash is true, a path is only recognized when pos itself is a
// slash (the standard/file-authority case); otherwise any remaining
// content up to the first '?' or '#' becomes the path (the file local
// path case, where the content may begin directly with a drive letter).
func scanPathQueryRef[T constraints.Codeunit](spec T, pos, end int, requireSlash bool, p *Parsed) {
	hasPath := pos < end
	if hasPath && requireSlash {
		hasPath = isSlashUnit(grammar.UnitAt(spec, pos))
	}

	if hasPath {
		i := pos
		for i < end {
			c := grammar.UnitAt(spec, i)
			if c == '?' || c == '#' {
				break
			}
			i++
		}
		p.Path = MakeRange(pos, i)
		pos = i
	} else {
		p.Path = InvalidComponent
	}

	if pos < end && grammar.UnitAt(spec, pos) == '?' {
		i := pos + 1
		for i < end && grammar.UnitAt(spec, i) != '#' {
			i++
		}
		p.Query = MakeRange(pos+1, i)
		pos = i
	} else {
		p.Query = InvalidComponent
	}

	if pos < end && grammar.UnitAt(spec, pos) == '#' {
		p.Ref = MakeRange(pos+1, end)
	} else {
		p.Ref = InvalidComponent
	}
}

// skipSlashes advances past a run of consecutive '/' or '\' starting at
// pos and returns the new position.
func skipSlashes[T constraints.Codeunit](spec T, pos, end int) int {
	for pos < end && isSlashUnit(grammar.UnitAt(spec, pos)) {
		pos++
	}
	return pos
}

// scanAuthorityEnd returns the index of the first '/', '\', '?', or '#'
// at or after pos, or end if none appears — the boundary of an
// authority section.
func scanAuthorityEnd[T constraints.Codeunit](spec T, pos, end int) int {
	for pos < end {
		c := grammar.UnitAt(spec, pos)
		if c == '/' || c == '\\' || c == '?' || c == '#' {
			break
		}
		pos++
	}
	return pos
}
