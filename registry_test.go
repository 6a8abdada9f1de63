package urlcore_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-urlcore/urlcore"
)

var _ = Describe("standard scheme registry", func() {
	It("recognizes the built-in schemes case-insensitively", func() {
		Expect(urlcore.IsStandardScheme("http")).To(BeTrue())
		Expect(urlcore.IsStandardScheme("HTTP")).To(BeTrue())
		Expect(urlcore.IsStandardScheme("FtP")).To(BeTrue())
	})

	It("does not recognize an unregistered scheme", func() {
		Expect(urlcore.IsStandardScheme("sftp-not-registered")).To(BeFalse())
	})

	It("adds a new scheme and then recognizes it case-insensitively", func() {
		urlcore.AddStandardScheme("Sftp-Custom")
		Expect(urlcore.IsStandardScheme("sftp-custom")).To(BeTrue())
		Expect(urlcore.IsStandardScheme("SFTP-CUSTOM")).To(BeTrue())
	})

	It("is idempotent when the same scheme is added twice", func() {
		urlcore.AddStandardScheme("dup-scheme")
		urlcore.AddStandardScheme("DUP-SCHEME")
		Expect(urlcore.IsStandardScheme("dup-scheme")).To(BeTrue())
	})

	It("dispatches Canonicalize through a newly registered standard scheme", func() {
		urlcore.AddStandardScheme("widget")
		out, _, valid, err := urlcore.Canonicalize("WIDGET://Example.COM:8080/Path", nil, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(valid).To(BeTrue())
		Expect(out).To(Equal("widget://example.com:8080/Path"))
	})
})
