package urlcore

import (
	"github.com/go-urlcore/urlcore/internal/constraints"
	"github.com/go-urlcore/urlcore/internal/grammar"
	"github.com/go-urlcore/urlcore/internal/log"
)

// NormalizeFlags is an optional bitmask of canonicalization extensions
// beyond the base algorithm. The zero value reproduces the base
// canonical form exactly; these flags are strictly additive.
type NormalizeFlags uint8

const (
	// SortQueryParams reorders "key=value" query pairs lexicographically
	// by key, breaking ties by original position (a stable sort).
	SortQueryParams NormalizeFlags = 1 << iota
	// CollapseDuplicateSlashes collapses runs of consecutive '/' in the
	// canonical path into a single '/', beyond the base algorithm's
	// '.'/'..' resolution.
	CollapseDuplicateSlashes
)

type schemeClass int

const (
	classPath schemeClass = iota
	classStandard
	classFile
)

func classifyScheme(scheme string) schemeClass {
	switch {
	case scheme == "file":
		return classFile
	case IsStandardScheme(scheme):
		return classStandard
	default:
		return classPath
	}
}

// schemeText extracts the lowercase ASCII scheme name from spec, using
// ASCIIBytes since the scheme grammar is ASCII-only by construction —
// any non-ASCII byte here will simply fail the scheme canonicalizer's
// own validation later.
func schemeText[T constraints.Codeunit](spec T, comp Component) string {
	if !comp.IsValid() {
		return ""
	}
	sub := grammar.Sub(spec, comp.Begin, comp.End())
	b := grammar.ASCIIBytes(sub)
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c = c - 'A' + 'a'
		}
		out[i] = c
	}
	return string(out)
}

// Canonicalize parses and canonicalizes spec in one step, dispatching
// to the file, standard, or path strategy based on the extracted
// scheme. converter and flags may be nil/zero.
func Canonicalize[T constraints.Codeunit](spec T, converter QueryCharsetConverter, flags NormalizeFlags) (output string, parsed Parsed, valid bool, err error) {
	begin, end := trimSpec(spec)
	schemeComp, _ := ExtractScheme(spec, begin, end)
	scheme := schemeText(spec, schemeComp)
	class := classifyScheme(scheme)

	log.Def.Debug("canonicalize: dispatch", "scheme", scheme, "class", class)

	out := NewCanonOutput()
	defer out.Free()

	switch class {
	case classFile:
		p := ParseFileURL(spec)
		np := componentsToUTF8(spec, p)
		parsed, valid = canonicalizeHierarchical(np.narrowSpec, np.parsed, true, converter, out)
	case classStandard:
		p := ParseStandardURL(spec)
		np := componentsToUTF8(spec, p)
		parsed, valid = canonicalizeHierarchical(np.narrowSpec, np.parsed, false, converter, out)
	default:
		p := ParsePathURL(spec)
		np := componentsToUTF8(spec, p)
		parsed, valid = canonicalizeOpaque(np.narrowSpec, np.parsed, out)
	}

	if !valid {
		log.Def.Warn("canonicalize: best-effort output", "scheme", scheme)
	}

	output = out.String()
	if flags != 0 {
		output, parsed = applyNormalizeFlags(output, parsed, flags)
	}
	if !valid {
		setErr(&err, wrapErrf(classifyCanonError(parsed), "scheme %q", scheme))
	}
	return output, parsed, valid, err
}

// narrowParsed holds a Parsed value together with the already-UTF-8
// narrow string its components index into, produced by transcoding a
// wide or narrow input spec once at ingress so every downstream
// canonicalizer only ever has to handle narrow (string) data.
type narrowParsed struct {
	narrowSpec string
	parsed     Parsed
}

// componentsToUTF8 copies every present component of p out of spec (of
// any width) into one narrow UTF-8 buffer, adjusting ranges to index
// into that buffer instead of the original spec.
func componentsToUTF8[T constraints.Codeunit](spec T, p Parsed) narrowParsed {
	var buf []byte
	fields := []*Component{&p.Scheme, &p.Username, &p.Password, &p.Host, &p.Port, &p.Path, &p.Query, &p.Ref}
	for _, f := range fields {
		if !f.IsValid() {
			continue
		}
		s, _ := componentUTF8(spec, *f)
		newBegin := len(buf)
		buf = append(buf, s...)
		*f = Component{Begin: newBegin, Len: len(s)}
	}
	return narrowParsed{narrowSpec: string(buf), parsed: p}
}

func classifyCanonError(p Parsed) error {
	switch {
	case !p.Scheme.IsValid():
		return ErrMalformedScheme
	default:
		return ErrBadHost
	}
}

// canonicalizeHierarchical writes a standard or file canonical URL
// (scheme + authority + path + query + ref) to out. File URLs carry no
// userinfo or port, matching the contract that file authorities are
// host-only.
func canonicalizeHierarchical(spec string, p Parsed, isFile bool, converter QueryCharsetConverter, out *CanonOutput) (Parsed, bool) {
	var np Parsed
	valid := true

	schemeOut, ok := canonicalizeScheme(spec, p.Scheme, out)
	np.Scheme = schemeOut
	valid = valid && ok

	out.WriteString("//")

	if !isFile {
		uOut, pOut, ok := canonicalizeUserinfo(spec, p.Username, p.Password, out)
		np.Username, np.Password = uOut, pOut
		valid = valid && ok
	} else {
		np.Username, np.Password = InvalidComponent, InvalidComponent
	}

	hostOut, ok := canonicalizeHost(spec, p.Host, out)
	np.Host = hostOut
	valid = valid && ok

	if !isFile {
		lowerScheme := out.String()[np.Scheme.Begin:np.Scheme.End()]
		portOut, ok := canonicalizePort(spec, p.Port, lowerScheme, out)
		np.Port = portOut
		valid = valid && ok
	} else {
		np.Port = InvalidComponent
	}

	if p.Path.IsValid() {
		pathOut, ok := canonicalizePath(spec, p.Path, out)
		np.Path = pathOut
		valid = valid && ok
	} else {
		begin := out.Len()
		out.WriteByte('/')
		np.Path = MakeRange(begin, out.Len())
	}

	queryOut, ok := canonicalizeQuery(spec, p.Query, converter, out)
	np.Query = queryOut
	valid = valid && ok

	refOut, ok := canonicalizeRef(spec, p.Ref, out)
	np.Ref = refOut
	valid = valid && ok

	return np, valid
}

// canonicalizeOpaque writes a path (opaque) canonical URL — scheme,
// opaque body, and ref, with no authority and no path-segment
// processing.
func canonicalizeOpaque(spec string, p Parsed, out *CanonOutput) (Parsed, bool) {
	var np Parsed
	valid := true

	schemeOut, ok := canonicalizeScheme(spec, p.Scheme, out)
	np.Scheme = schemeOut
	valid = valid && ok

	np.Username, np.Password = InvalidComponent, InvalidComponent
	np.Host = InvalidComponent
	np.Port = InvalidComponent
	np.Query = InvalidComponent

	pathOut, ok := canonicalizeOpaqueBody(spec, p.Path, out)
	np.Path = pathOut
	valid = valid && ok

	refOut, ok := canonicalizeRef(spec, p.Ref, out)
	np.Ref = refOut
	valid = valid && ok

	return np, valid
}
