package urlcore

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/go-urlcore/urlcore/internal/constraints"
	"github.com/go-urlcore/urlcore/internal/grammar"
	"github.com/go-urlcore/urlcore/internal/log"
)

// IsRelativeURL decides whether ref should be resolved against
// baseScheme/isBaseHierarchical (true) or treated as its own absolute
// URL (false). relComp is, when relative, the sub-range of ref (after
// trimming and after any same-scheme prefix) that ResolveRelativeURL
// should actually merge; it is meaningless when isRelative is false.
func IsRelativeURL[T constraints.Codeunit](baseScheme string, isBaseHierarchical bool, ref T) (isRelative bool, relComp Component, err error) {
	begin, end := trimSpec(ref)
	if begin == end {
		return true, Component{Begin: begin, Len: 0}, nil
	}

	if isSlashUnit(grammar.UnitAt(ref, begin)) {
		return true, MakeRange(begin, end), nil
	}

	schemeComp, hasScheme := ExtractScheme(ref, begin, end)
	if !hasScheme {
		if isBaseHierarchical {
			return true, MakeRange(begin, end), nil
		}
		return false, InvalidComponent, wrapErrf(ErrUnresolvableRelative, "base scheme %q is opaque and the reference carries no scheme of its own", baseScheme)
	}

	refScheme := schemeText(ref, schemeComp)
	if !strings.EqualFold(refScheme, baseScheme) {
		return false, InvalidComponent, nil
	}
	if !isBaseHierarchical {
		return false, InvalidComponent, nil
	}

	pos := schemeComp.End() + 1
	slashBegin := pos
	pos = skipSlashes(ref, pos, end)
	if pos-slashBegin >= 2 {
		return false, InvalidComponent, nil
	}
	return true, MakeRange(slashBegin, end), nil
}

// ResolveRelativeURL merges ref[relComp] against base/baseParsed,
// which must describe a hierarchical URL (the only kind IsRelativeURL
// ever reports relative reference against). baseIsFile enables the
// drive-letter preservation quirk.
func ResolveRelativeURL[T constraints.Codeunit](base string, baseParsed Parsed, baseIsFile bool, ref T, relComp Component) (output string, parsed Parsed, valid bool, err error) {
	if !baseParsed.HasAuthority() {
		return "", Parsed{}, false, errtrace.Wrap(NewInvalidArgumentError("ResolveRelativeURL requires a hierarchical base URL, but baseParsed carries no authority"))
	}

	out := NewCanonOutput()
	defer out.Free()

	authorityEnd := baseParsed.Host.End()
	if baseParsed.Port.IsValid() {
		authorityEnd = baseParsed.Port.End()
	}
	out.WriteString(base[:authorityEnd])

	var rp Parsed
	scanPathQueryRef(ref, relComp.Begin, relComp.End(), false, &rp)

	refPathStr, pathOK := componentUTF8(ref, rp.Path)
	refQueryStr, queryOK := componentUTF8(ref, rp.Query)
	refRefStr, refOK := componentUTF8(ref, rp.Ref)

	log.Def.Debug("resolve: merging reference", "hasPath", rp.Path.IsValid(), "hasQuery", rp.Query.IsValid(), "hasRef", rp.Ref.IsValid())

	valid = true
	var np Parsed
	// base[:authorityEnd] was just copied into out byte-for-byte, so
	// every base component within that prefix keeps its original offsets.
	np.Scheme = baseParsed.Scheme
	np.Username, np.Password = baseParsed.Username, baseParsed.Password
	np.Host = baseParsed.Host
	np.Port = baseParsed.Port

	switch {
	case rp.Path.IsValid():
		if !pathOK {
			valid = false
		}
		mergedPath := mergePath(base, baseParsed, baseIsFile, refPathStr)
		pathComp := MakeRange(0, len(mergedPath))
		pathOut, ok := canonicalizePath(mergedPath, pathComp, out)
		np.Path = pathOut
		valid = valid && ok

		if rp.Query.IsValid() {
			if !queryOK {
				valid = false
			}
			qComp := MakeRange(0, len(refQueryStr))
			qOut, ok := canonicalizeQuery(refQueryStr, qComp, nil, out)
			np.Query = qOut
			valid = valid && ok
		} else {
			np.Query = InvalidComponent
		}
		np.Ref = resolveRefComponent(rp, refRefStr, refOK, out, &valid)

	case rp.Query.IsValid():
		if !queryOK {
			valid = false
		}
		writeBasePathVerbatim(base, baseParsed, out, &np)
		qComp := MakeRange(0, len(refQueryStr))
		qOut, ok := canonicalizeQuery(refQueryStr, qComp, nil, out)
		np.Query = qOut
		valid = valid && ok
		np.Ref = resolveRefComponent(rp, refRefStr, refOK, out, &valid)

	case rp.Ref.IsValid():
		writeBasePathVerbatim(base, baseParsed, out, &np)
		if baseParsed.Query.IsValid() {
			out.WriteByte('?')
		}
		np.Query = copyBaseComponent(base, baseParsed.Query, out)
		np.Ref = resolveRefComponent(rp, refRefStr, refOK, out, &valid)

	default:
		writeBasePathVerbatim(base, baseParsed, out, &np)
		if baseParsed.Query.IsValid() {
			out.WriteByte('?')
		}
		np.Query = copyBaseComponent(base, baseParsed.Query, out)
		if baseParsed.Ref.IsValid() {
			out.WriteByte('#')
		}
		np.Ref = copyBaseComponent(base, baseParsed.Ref, out)
	}

	output = out.String()
	if !valid {
		setErr(&err, wrapErr(classifyCanonError(np)))
	}
	return output, np, valid, err
}

func resolveRefComponent(rp Parsed, refRefStr string, refOK bool, out *CanonOutput, valid *bool) Component {
	if !rp.Ref.IsValid() {
		return InvalidComponent
	}
	if !refOK {
		*valid = false
	}
	comp := MakeRange(0, len(refRefStr))
	out2, ok := canonicalizeRef(refRefStr, comp, out)
	*valid = *valid && ok
	return out2
}

// mergePath implements the path-merge rule: an absolute reference
// path (leading slash) replaces the base path outright; otherwise the
// base path up to and including its last '/' is kept and the
// reference path appended, so the combined text's '.'/'..' segments
// resolve across the seam. The file-base drive quirk preserves a
// leading "/C:" from the base path when the reference path is not
// itself a drive specifier.
func mergePath(base string, baseParsed Parsed, baseIsFile bool, refPath string) string {
	if len(refPath) > 0 && (refPath[0] == '/' || refPath[0] == '\\') {
		if baseIsFile && !doesBeginDriveSpec(refPath, 1, len(refPath)) {
			if drive := basePathDriveSpec(base, baseParsed); drive != "" {
				return drive + refPath
			}
		}
		return refPath
	}

	basePath := ""
	if baseParsed.Path.IsValid() {
		basePath = base[baseParsed.Path.Begin:baseParsed.Path.End()]
	}
	lastSlash := strings.LastIndexAny(basePath, "/\\")
	if lastSlash < 0 {
		return "/" + refPath
	}
	return basePath[:lastSlash+1] + refPath
}

// basePathDriveSpec returns the leading "/C:" (or "/C|") text of
// base's path, or "" if its path does not begin with one.
func basePathDriveSpec(base string, baseParsed Parsed) string {
	if !baseParsed.Path.IsValid() {
		return ""
	}
	p := base[baseParsed.Path.Begin:baseParsed.Path.End()]
	if len(p) < 3 || p[0] != '/' {
		return ""
	}
	if !doesBeginDriveSpec(p, 1, len(p)) {
		return ""
	}
	return p[:3]
}

func writeBasePathVerbatim(base string, baseParsed Parsed, out *CanonOutput, np *Parsed) {
	np.Path = copyBaseComponent(base, baseParsed.Path, out)
}

func copyBaseComponent(base string, c Component, out *CanonOutput) Component {
	if !c.IsValid() {
		return InvalidComponent
	}
	begin := out.Len()
	out.WriteString(base[c.Begin:c.End()])
	return MakeRange(begin, out.Len())
}
