package urlcore

// QueryCharsetConverter lets an embedder transcode query bytes through a
// legacy encoding before they are percent-escaped, instead of UTF-8. It
// is the one exported collaborator interface this module defines,
// intentionally kept to a single method so an embedder's adapter stays
// trivial to write.
type QueryCharsetConverter interface {
	ConvertFromUTF8(codepoints string, out *CanonOutput) error
}

// slot is one overlay field of a Replacements value: either unchanged
// (the zero value), or an explicit override carrying its own source
// text and Component range. A record of typed optional slots, not
// function-pointer dispatch, per the polymorphic-components design
// note: every Set* method below reduces to updating one slot.
type slot struct {
	set    bool
	source string
	comp   Component
}

// Replacements is a sparse overlay over a Parsed value: for each of the
// seven components, either "unchanged" or "replace with this
// (source, component) pair". Setting a component with an empty source
// and len == -1 clears the override back to unchanged; setting it with a
// non-empty source and len == -1 (or calling ClearPassword) deletes that
// component from the output. A zero-length (but present) component
// replaces it with a present-but-empty one, e.g. a bare "?" for the
// query.
type Replacements struct {
	scheme, username, password slot
	host, port                 slot
	path, query, ref           slot
}

func setSlot(s *slot, source string, comp Component) {
	if source == "" && comp.Len < 0 {
		*s = slot{}
		return
	}
	*s = slot{set: true, source: source, comp: comp}
}

func (r *Replacements) SetScheme(source string, comp Component)   { setSlot(&r.scheme, source, comp) }
func (r *Replacements) SetUsername(source string, comp Component) { setSlot(&r.username, source, comp) }
func (r *Replacements) SetPassword(source string, comp Component) { setSlot(&r.password, source, comp) }
func (r *Replacements) SetHost(source string, comp Component)     { setSlot(&r.host, source, comp) }
func (r *Replacements) SetPort(source string, comp Component)     { setSlot(&r.port, source, comp) }
func (r *Replacements) SetPath(source string, comp Component)     { setSlot(&r.path, source, comp) }
func (r *Replacements) SetQuery(source string, comp Component)    { setSlot(&r.query, source, comp) }
func (r *Replacements) SetRef(source string, comp Component)      { setSlot(&r.ref, source, comp) }

// ClearPassword is a convenience for the common "strip credentials" use
// case: it marks the password deleted from the output (as opposed to
// merely unset, which would fall back to the base's password).
func (r *Replacements) ClearPassword() { r.password = slot{set: true, comp: Component{Len: -1}} }

// resolved returns either the overlay's (source, comp) pair if set, or
// the base's (baseSpec, baseComp) pair otherwise.
func resolved(s slot, baseSpec string, baseComp Component) (string, Component, bool) {
	if s.set {
		if s.comp.Len < 0 {
			return "", InvalidComponent, false
		}
		return s.source, s.comp, true
	}
	if !baseComp.IsValid() {
		return "", InvalidComponent, false
	}
	return baseSpec, baseComp, true
}
