package urlcore_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-urlcore/urlcore"
)

var _ = Describe("ExtractFileName", func() {
	DescribeTable("path-params boundary",
		func(spec string, comp urlcore.Component, want string) {
			got := urlcore.ExtractFileName(spec, comp)
			Expect(slice(spec, got)).To(Equal(want))
		},
		Entry("plain file at the end of the path",
			"/a/b/bar.txt", urlcore.MakeRange(0, 12), "bar.txt"),
		Entry("stops before path params",
			"/a/bar.txt;type=i", urlcore.MakeRange(0, 17), "bar.txt"),
		Entry("a trailing slash yields an empty name",
			"/a/b/", urlcore.MakeRange(0, 5), ""),
		Entry("no slash at all is the whole component",
			"bar.txt", urlcore.MakeRange(0, 7), "bar.txt"),
	)

	It("extracts the file name from a canonicalized file URL's path", func() {
		out, p, valid, err := urlcore.CanonicalizeFileURL("file:///C:/foo/bar.txt")
		Expect(err).NotTo(HaveOccurred())
		Expect(valid).To(BeTrue())
		name := urlcore.ExtractFileName(out, p.Path)
		Expect(slice(out, name)).To(Equal("bar.txt"))
	})
})
