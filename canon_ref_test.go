package urlcore_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-urlcore/urlcore"
)

var _ = Describe("ref canonicalization", func() {
	DescribeTable("fragment text passes through unescaped except the query's own reserved set",
		func(spec, want string) {
			out, _, valid, err := urlcore.CanonicalizeStandardURL(spec, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(valid).To(BeTrue())
			Expect(out).To(Equal(want))
		},
		Entry("hash-routing style fragment keeps its '/' and '?' unescaped",
			"http://example.com/#/page?x=1", "http://example.com/#/page?x=1"),
		Entry("a second '#' past the leading delimiter is still percent-escaped",
			"http://example.com/#a#b", "http://example.com/#a%23b"),
	)

	It("percent-escapes control bytes inside the fragment", func() {
		out, _, valid, err := urlcore.CanonicalizeStandardURL("http://example.com/#a\tb", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(valid).To(BeTrue())
		Expect(out).To(Equal("http://example.com/#a%09b"))
	})
})
