package urlcore

import (
	"github.com/go-urlcore/urlcore/internal/errorutil"
	"github.com/go-urlcore/urlcore/internal/grammar"
	"github.com/go-urlcore/urlcore/internal/log"
)

// canonicalizeQuery escapes query bytes outside the QUERY class. When
// converter is non-nil, the already-UTF-8 query text is run through it
// first so an embedder can target a legacy form-submission charset
// instead of UTF-8; the converter's output is then escaped the same
// way as any other query bytes (it must not itself already contain
// percent escapes the converter wants preserved literally).
func canonicalizeQuery(spec string, comp Component, converter QueryCharsetConverter, out *CanonOutput) (Component, bool) {
	if !comp.IsValid() {
		return InvalidComponent, true
	}

	out.WriteByte('?')
	qBegin := out.Len()

	raw := spec[comp.Begin:comp.End()]
	valid := true
	if converter != nil {
		converted := NewCanonOutput()
		if err := converter.ConvertFromUTF8(raw, converted); err != nil {
			valid = false
			log.Def.Warn("canonicalizeQuery: charset conversion failed", "err", errorutil.Errorf("charset conversion failed: %v", err))
		}
		if !escapeBytes([]byte(converted.String()), grammar.IsQueryChar, out) {
			valid = false
		}
		converted.Free()
	} else {
		if !escapeBytes([]byte(raw), grammar.IsQueryChar, out) {
			valid = false
		}
	}

	return MakeRange(qBegin, out.Len()), valid
}
