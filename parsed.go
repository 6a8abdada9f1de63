package urlcore

// Parsed is the ordered tuple of the seven components a parse produces.
// It refers back into the spec it was parsed from; the parser never
// copies the input, so the caller retains ownership of the backing
// storage for as long as the Parsed value is in use.
type Parsed struct {
	Scheme   Component
	Username Component
	Password Component
	Host     Component
	Port     Component
	Path     Component
	Query    Component
	Ref      Component
}

// HasAuthority reports whether this parse carries an authority section
// at all — i.e. Host is present, even if empty (offset 0, len 0).
func (p Parsed) HasAuthority() bool { return p.Host.Len >= 0 }

// newParsed returns a Parsed with every component absent, including
// Host — callers that do parse a hierarchical authority (even an
// empty one) overwrite Host explicitly with the present-but-empty
// {begin, 0} form; ParsePathURL, which never has an authority at all,
// leaves it absent so HasAuthority reports false.
func newParsed() Parsed {
	return Parsed{
		Scheme:   InvalidComponent,
		Username: InvalidComponent,
		Password: InvalidComponent,
		Host:     InvalidComponent,
		Port:     InvalidComponent,
		Path:     InvalidComponent,
		Query:    InvalidComponent,
		Ref:      InvalidComponent,
	}
}
