package urlcore_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-urlcore/urlcore"
)

var _ = Describe("IPv6 canonicalization", func() {
	DescribeTable("bracketed literal shape",
		func(spec string, wantValid bool, wantOut string) {
			out, _, valid, err := urlcore.CanonicalizeStandardURL(spec, nil)
			if wantValid {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(HaveOccurred())
			}
			Expect(valid).To(Equal(wantValid))
			Expect(out).To(Equal(wantOut))
		},
		Entry("full eight-group literal is copied through verbatim",
			"http://[2001:db8:0:0:0:0:0:1]/", true, "http://[2001:db8:0:0:0:0:0:1]/"),
		Entry("embedded IPv4 tail (three dots) is accepted",
			"http://[::ffff:192.168.1.1]/", true, "http://[::ffff:192.168.1.1]/"),
		Entry("a hex run longer than four digits is rejected",
			"http://[20011:db8::1]/", false, "http://[20011:db8::1]/"),
		Entry("more than seven colons is rejected",
			"http://[1:2:3:4:5:6:7:8:9]/", false, "http://[1:2:3:4:5:6:7:8:9]/"),
		Entry("a dot count other than zero or three is rejected",
			"http://[::192.168.1]/", false, "http://[::192.168.1]/"),
	)
})
