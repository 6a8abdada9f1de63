package urlcore

import "github.com/go-urlcore/urlcore/internal/grammar"

// ReplaceComponents rebuilds spec with r's overlaid components under
// the file grammar when isFile is true and the standard grammar
// otherwise. It does not look at the base or replacement scheme to pick
// the grammar, and it never produces an opaque (path) URL; that is
// ReplacePathURL's job. base must be a Parsed produced by parsing spec itself (the
// same pairing CanonicalizeStandardURL/File/Path would have produced),
// since replacement sources default to slices of spec wherever r
// leaves a component unset.
func ReplaceComponents(spec string, base Parsed, r Replacements, isFile bool, converter QueryCharsetConverter) (output string, parsed Parsed, valid bool, err error) {
	out := NewCanonOutput()
	defer out.Free()

	if isFile {
		parsed, valid = replaceHierarchical(spec, base, r, true, converter, out)
	} else {
		parsed, valid = replaceHierarchical(spec, base, r, false, converter, out)
	}
	output = out.String()
	if !valid {
		setErr(&err, wrapErr(classifyCanonError(parsed)))
	}
	return output, parsed, valid, err
}

// ReplaceStandardURL applies r over spec under the standard grammar.
func ReplaceStandardURL(spec string, base Parsed, r Replacements, converter QueryCharsetConverter) (string, Parsed, bool, error) {
	return ReplaceComponents(spec, base, r, false, converter)
}

// ReplaceFileURL applies r over spec under the file grammar.
func ReplaceFileURL(spec string, base Parsed, r Replacements) (string, Parsed, bool, error) {
	return ReplaceComponents(spec, base, r, true, nil)
}

// ReplacePathURL applies r over spec under the opaque grammar. Only
// the scheme, path (opaque body), and ref slots have any effect, and
// ref is never inherited from base the way the hierarchical replacer
// inherits unset slots — an opaque base's ref belongs to a grammar
// this call is leaving behind, so it is dropped unless r sets it
// explicitly. username/password/host/port/query overlays are ignored
// since opaque URLs carry no authority or query.
func ReplacePathURL(spec string, base Parsed, r Replacements) (output string, parsed Parsed, valid bool, err error) {
	out := NewCanonOutput()
	defer out.Free()

	var np Parsed
	valid = true

	schemeSrc, schemeComp, _ := resolved(r.scheme, spec, base.Scheme)
	schemeOut, ok := canonicalizeScheme(schemeSrc, schemeComp, out)
	np.Scheme = schemeOut
	valid = valid && ok

	np.Username, np.Password = InvalidComponent, InvalidComponent
	np.Host = InvalidComponent
	np.Port = InvalidComponent
	np.Query = InvalidComponent

	pathSrc, pathComp, pathPresent := resolved(r.path, spec, base.Path)
	if pathPresent {
		pathOut, ok := canonicalizeOpaqueBody(pathSrc, pathComp, out)
		np.Path = pathOut
		valid = valid && ok
	} else {
		np.Path = InvalidComponent
	}

	if r.ref.set && r.ref.comp.Len >= 0 {
		refOut, ok := canonicalizeRef(r.ref.source, r.ref.comp, out)
		np.Ref = refOut
		valid = valid && ok
	} else {
		np.Ref = InvalidComponent
	}

	output = out.String()
	if !valid {
		setErr(&err, wrapErr(classifyCanonError(np)))
	}
	return output, np, valid, err
}

// replaceHierarchical is canonicalizeHierarchical's Replacements-aware
// counterpart: every field is first resolved against r (falling back
// to base/spec), then run through the same per-field canonicalizer.
func replaceHierarchical(spec string, base Parsed, r Replacements, isFile bool, converter QueryCharsetConverter, out *CanonOutput) (Parsed, bool) {
	var np Parsed
	valid := true

	schemeSrc, schemeComp, _ := resolved(r.scheme, spec, base.Scheme)
	schemeOut, ok := canonicalizeScheme(schemeSrc, schemeComp, out)
	np.Scheme = schemeOut
	valid = valid && ok

	out.WriteString("//")

	if !isFile {
		userSrc, userComp, userPresent := resolved(r.username, spec, base.Username)
		passSrc, passComp, passPresent := resolved(r.password, spec, base.Password)
		if !userPresent {
			userComp = InvalidComponent
		}
		if !passPresent {
			passComp = InvalidComponent
		}
		uOut, pOut, ok := canonicalizeUserinfoReplaced(userSrc, userComp, passSrc, passComp, out)
		np.Username, np.Password = uOut, pOut
		valid = valid && ok
	} else {
		np.Username, np.Password = InvalidComponent, InvalidComponent
	}

	hostSrc, hostComp, hostPresent := resolved(r.host, spec, base.Host)
	if !hostPresent {
		hostComp = Component{Begin: 0, Len: 0}
		hostSrc = ""
	}
	hostOut, ok := canonicalizeHost(hostSrc, hostComp, out)
	np.Host = hostOut
	valid = valid && ok

	if !isFile {
		portSrc, portComp, portPresent := resolved(r.port, spec, base.Port)
		if !portPresent {
			portComp = InvalidComponent
		}
		lowerScheme := out.String()[np.Scheme.Begin:np.Scheme.End()]
		portOut, ok := canonicalizePort(portSrc, portComp, lowerScheme, out)
		np.Port = portOut
		valid = valid && ok
	} else {
		np.Port = InvalidComponent
	}

	pathSrc, pathComp, pathPresent := resolved(r.path, spec, base.Path)
	if pathPresent {
		pathOut, ok := canonicalizePath(pathSrc, pathComp, out)
		np.Path = pathOut
		valid = valid && ok
	} else {
		np.Path = InvalidComponent
	}

	querySrc, queryComp, queryPresent := resolved(r.query, spec, base.Query)
	if queryPresent {
		queryOut, ok := canonicalizeQuery(querySrc, queryComp, converter, out)
		np.Query = queryOut
		valid = valid && ok
	} else {
		np.Query = InvalidComponent
	}

	refSrc, refComp, refPresent := resolved(r.ref, spec, base.Ref)
	if refPresent {
		refOut, ok := canonicalizeRef(refSrc, refComp, out)
		np.Ref = refOut
		valid = valid && ok
	} else {
		np.Ref = InvalidComponent
	}

	return np, valid
}

// canonicalizeUserinfoReplaced is canonicalizeUserinfo generalized to
// independently-sourced username and password slots, since a
// Replacements overlay may replace one without the other. It mirrors
// canonicalizeUserinfo's rule that the trailing '@' is only emitted
// when a userinfo section is present at all, i.e. username is valid.
func canonicalizeUserinfoReplaced(userSrc string, userComp Component, passSrc string, passComp Component, out *CanonOutput) (Component, Component, bool) {
	if !userComp.IsValid() {
		return InvalidComponent, InvalidComponent, true
	}

	valid := true
	uBegin := out.Len()
	if userComp.IsNonEmpty() {
		if !escapeBytes([]byte(userSrc[userComp.Begin:userComp.End()]), grammar.IsUserinfoSafeChar, out) {
			valid = false
		}
	}
	uOut := MakeRange(uBegin, out.Len())

	pOut := InvalidComponent
	if passComp.IsValid() {
		out.WriteByte(':')
		pBegin := out.Len()
		if passComp.IsNonEmpty() {
			if !escapeBytes([]byte(passSrc[passComp.Begin:passComp.End()]), grammar.IsUserinfoSafeChar, out) {
				valid = false
			}
		}
		pOut = MakeRange(pBegin, out.Len())
	}

	out.WriteByte('@')
	return uOut, pOut, valid
}
