package urlcore_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/go-urlcore/urlcore"
	"github.com/go-urlcore/urlcore/internal/testutil/convmock"
)

var _ = Describe("query canonicalization with a charset converter", func() {
	var ctrl *gomock.Controller

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("routes query bytes through the converter before escaping", func() {
		converter := convmock.NewMockQueryCharsetConverter(ctrl)
		converter.EXPECT().
			ConvertFromUTF8("hello world", gomock.Any()).
			DoAndReturn(func(codepoints string, out *urlcore.CanonOutput) error {
				out.WriteString("legacy bytes")
				return nil
			})

		out, _, valid, err := urlcore.CanonicalizeStandardURL("http://example.com/?hello world", converter)
		Expect(err).NotTo(HaveOccurred())
		Expect(valid).To(BeTrue())
		Expect(out).To(Equal("http://example.com/?legacy%20bytes"))
	})

	It("marks the result invalid when the converter errors", func() {
		converter := convmock.NewMockQueryCharsetConverter(ctrl)
		converter.EXPECT().
			ConvertFromUTF8("q", gomock.Any()).
			Return(urlcore.ErrBadHost)

		_, _, valid, err := urlcore.CanonicalizeStandardURL("http://example.com/?q", converter)
		Expect(err).To(HaveOccurred())
		Expect(valid).To(BeFalse())
	})
})
