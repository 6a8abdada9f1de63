package urlcore_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-urlcore/urlcore"
)

var _ = Describe("scheme canonicalization", func() {
	It("lowercases a well-formed scheme", func() {
		out, p, valid, err := urlcore.CanonicalizeStandardURL("HTTP://example.com/", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(valid).To(BeTrue())
		Expect(out[p.Scheme.Begin:p.Scheme.End()]).To(Equal("http"))
	})

	It("falls back to escaping a control byte in an otherwise-unparseable scheme", func() {
		out, p, valid, err := urlcore.CanonicalizePathURL("ja\x01va:alert(1)")
		Expect(err).To(HaveOccurred())
		Expect(valid).To(BeFalse())
		Expect(out[p.Scheme.Begin:p.Scheme.End()]).To(Equal("ja%01va"))
		Expect(out).To(Equal("ja%01va:alert(1)"))
	})
})
