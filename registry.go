package urlcore

import (
	"sync"

	"github.com/go-urlcore/urlcore/internal/stringutils"
)

// defaultStandardSchemes seeds the registry the first time it is needed.
var defaultStandardSchemes = []string{"http", "https", "file", "ftp", "gopher"}

var initStandardSchemes = sync.OnceValue(func() []string {
	out := make([]string, len(defaultStandardSchemes))
	copy(out, defaultStandardSchemes)
	return out
})

var (
	schemeMu sync.Mutex
	schemes  []string
)

func standardSchemes() []string {
	schemeMu.Lock()
	defer schemeMu.Unlock()
	if schemes == nil {
		schemes = initStandardSchemes()
	}
	return schemes
}

// AddStandardScheme registers name as a standard (authority-based,
// path-canonicalizing) scheme. Adds are append-only; removal is
// unsupported and entries are never released. AddStandardScheme must
// happen-before any concurrent use of IsStandardScheme, Canonicalize,
// or ResolveRelativeURL; the mutex only protects the registry's own
// slice, not that ordering.
func AddStandardScheme(name string) {
	lname := stringutils.LCase(name)
	schemeMu.Lock()
	defer schemeMu.Unlock()
	if schemes == nil {
		schemes = initStandardSchemes()
	}
	for _, s := range schemes {
		if s == lname {
			return
		}
	}
	schemes = append(schemes, lname)
}

// IsStandardScheme reports whether name (any case) is a registered
// standard scheme.
func IsStandardScheme(name string) bool {
	lname := stringutils.LCase(name)
	for _, s := range standardSchemes() {
		if s == lname {
			return true
		}
	}
	return false
}
