package urlcore_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-urlcore/urlcore"
)

var _ = Describe("path canonicalization", func() {
	It("leaves ':' and '@' unescaped in a path segment", func() {
		out, _, valid, err := urlcore.CanonicalizeStandardURL("http://example.com/a:b@c/d", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(valid).To(BeTrue())
		Expect(out).To(Equal("http://example.com/a:b@c/d"))
	})

	It("collapses '.' and '..' segments and normalizes backslashes", func() {
		out, _, valid, err := urlcore.CanonicalizeStandardURL(`http://example.com/a\b\..\c\.\d`, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(valid).To(BeTrue())
		Expect(out).To(Equal("http://example.com/a/c/d"))
	})

	It("treats a replaced '*' path as the OPTIONS wildcard and leaves it unescaped", func() {
		_, base, _, _ := urlcore.CanonicalizeStandardURL("http://example.com/", nil)

		var r urlcore.Replacements
		r.SetPath("*", urlcore.MakeRange(0, 1))

		out, _, valid, err := urlcore.ReplaceStandardURL("http://example.com/", base, r, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(valid).To(BeTrue())
		Expect(out).To(Equal("http://example.com*"))
	})
})
