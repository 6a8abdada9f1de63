package urlcore

import (
	"github.com/go-urlcore/urlcore/internal/constraints"
	"github.com/go-urlcore/urlcore/internal/grammar"
)

// componentUTF8 decodes spec[comp] (of any code-unit width) into a
// UTF-8 string, substituting U+FFFD for any malformed code point. ok
// is false if any code point was malformed, matching the malformed-UTF
// error class: the operation still produces complete output.
func componentUTF8[T constraints.Codeunit](spec T, comp Component) (s string, ok bool) {
	if !comp.IsValid() {
		return "", true
	}
	sub := grammar.Sub(spec, comp.Begin, comp.End())
	var buf []byte
	ok = grammar.DecodeComponent(sub, func(r rune) {
		grammar.AppendUTF8Value(r, &buf)
	})
	return string(buf), ok
}
