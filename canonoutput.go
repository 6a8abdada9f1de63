package urlcore

import (
	"strings"

	"github.com/go-urlcore/urlcore/internal/stringutils"
)

// CanonOutput is a growable byte buffer the canonicalizers append to.
// It is grounded on the pooled strings.Builder pattern used elsewhere in
// this module: NewCanonOutput borrows a builder from a sync.Pool (newly
// allocated ones are pre-grown; a reused one starts empty, since Free
// resets it and so drops its buffer), and Free returns it after the
// caller has extracted the final string with String.
type CanonOutput struct {
	sb *strings.Builder
}

// NewCanonOutput returns a CanonOutput backed by a pooled builder.
func NewCanonOutput() *CanonOutput {
	return &CanonOutput{sb: stringutils.NewStrBldr()}
}

// Free returns the underlying builder to the pool. The CanonOutput must
// not be used afterward.
func (o *CanonOutput) Free() {
	stringutils.FreeStrBldr(o.sb)
	o.sb = nil
}

func (o *CanonOutput) Write(p []byte) (int, error) { return o.sb.Write(p) }

func (o *CanonOutput) WriteByte(b byte) error { return o.sb.WriteByte(b) }

func (o *CanonOutput) WriteString(s string) (int, error) { return o.sb.WriteString(s) }

// Len returns the number of bytes written so far.
func (o *CanonOutput) Len() int { return o.sb.Len() }

// String returns the accumulated output. Valid until Free is called.
func (o *CanonOutput) String() string { return o.sb.String() }
