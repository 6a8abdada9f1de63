package urlcore_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-urlcore/urlcore"
)

var _ = Describe("IPv4 canonicalization", func() {
	octets := []int{0, 1, 9, 10, 99, 100, 127, 128, 200, 254, 255}

	It("round-trips every sampled dotted-decimal quartet", func() {
		for _, a := range octets {
			for _, d := range octets {
				host := fmt.Sprintf("%d.%d.%d.%d", a, a, d, d)
				spec := "http://" + host + "/"
				out, p, valid, err := urlcore.CanonicalizeStandardURL(spec, nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(valid).To(BeTrue())
				Expect(out[p.Host.Begin:p.Host.End()]).To(Equal(host))
			}
		}
	})

	It("reads a leading-zero octet as octal", func() {
		out, _, valid, err := urlcore.CanonicalizeStandardURL("http://010.0.0.1/", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(valid).To(BeTrue())
		Expect(out).To(Equal("http://8.0.0.1/"))
	})
})
