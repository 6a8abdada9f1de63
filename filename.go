package urlcore

import (
	"github.com/go-urlcore/urlcore/internal/constraints"
	"github.com/go-urlcore/urlcore/internal/grammar"
)

// ExtractFileName returns the substring of path (addressed by comp
// within spec) after the last '/' and before the first ';' (path
// params), ignoring any '?' or '#' — neither can appear in an
// already-canonical path, so this is only meaningful on canonical
// input.
func ExtractFileName[T constraints.Codeunit](spec T, comp Component) Component {
	begin, end := comp.Begin, comp.End()

	nameBegin := begin
	for i := begin; i < end; i++ {
		if grammar.UnitAt(spec, i) == '/' {
			nameBegin = i + 1
		}
	}

	nameEnd := end
	for i := nameBegin; i < end; i++ {
		if grammar.UnitAt(spec, i) == ';' {
			nameEnd = i
			break
		}
	}

	return MakeRange(nameBegin, nameEnd)
}
