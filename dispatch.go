package urlcore

import "github.com/go-urlcore/urlcore/internal/constraints"

// CanonicalizeStandardURL parses and canonicalizes spec under the
// standard (authority-based) grammar, regardless of its scheme. Use
// this when the caller already knows spec's scheme is standard (e.g.
// it came from AddStandardScheme) and wants to skip scheme sniffing.
func CanonicalizeStandardURL[T constraints.Codeunit](spec T, converter QueryCharsetConverter) (output string, parsed Parsed, valid bool, err error) {
	p := ParseStandardURL(spec)
	np := componentsToUTF8(spec, p)

	out := NewCanonOutput()
	defer out.Free()

	parsed, valid = canonicalizeHierarchical(np.narrowSpec, np.parsed, false, converter, out)
	output = out.String()
	if !valid {
		setErr(&err, wrapErr(classifyCanonError(parsed)))
	}
	return output, parsed, valid, err
}

// CanonicalizeFileURL parses and canonicalizes spec under the file
// grammar (host-only authority, Windows drive-letter quirks).
func CanonicalizeFileURL[T constraints.Codeunit](spec T) (output string, parsed Parsed, valid bool, err error) {
	p := ParseFileURL(spec)
	np := componentsToUTF8(spec, p)

	out := NewCanonOutput()
	defer out.Free()

	parsed, valid = canonicalizeHierarchical(np.narrowSpec, np.parsed, true, nil, out)
	output = out.String()
	if !valid {
		setErr(&err, wrapErr(classifyCanonError(parsed)))
	}
	return output, parsed, valid, err
}

// CanonicalizePathURL parses and canonicalizes spec under the opaque
// (path) grammar used by schemes like javascript: and data:.
func CanonicalizePathURL[T constraints.Codeunit](spec T) (output string, parsed Parsed, valid bool, err error) {
	p := ParsePathURL(spec)
	np := componentsToUTF8(spec, p)

	out := NewCanonOutput()
	defer out.Free()

	parsed, valid = canonicalizeOpaque(np.narrowSpec, np.parsed, out)
	output = out.String()
	if !valid {
		setErr(&err, wrapErr(classifyCanonError(parsed)))
	}
	return output, parsed, valid, err
}
