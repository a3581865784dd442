package keyview_test

import (
	"strings"

	"github.com/mplewis/keyview"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Filter", func() {
	Context("with a field-free template", func() {
		It("treats the template as a literal root directory", func() {
			f, err := keyview.NewFilter("/root/of")
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Prefix()).To(Equal("/root/of/"))

			Expect(f.IsValidKey("/root/of/foo")).To(BeTrue())
			Expect(f.IsValidKey("/root/of/a/b/c.ext")).To(BeTrue())
			Expect(f.IsValidKey("/other/")).To(BeFalse())
			Expect(f.IsValidKey("/root/ofx")).To(BeFalse())
		})

		It("normalizes to exactly one trailing separator", func() {
			f, err := keyview.NewFilter("/root/of//")
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Prefix()).To(Equal("/root/of/"))
		})
	})

	Context("with a template containing fields", func() {
		It("derives the prefix from the field-free head", func() {
			f, err := keyview.NewFilter("/root/of/{name}.ext")
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Prefix()).To(Equal("/root/of/"))

			Expect(f.IsValidKey("/root/of/foo.ext")).To(BeTrue())
			Expect(f.IsValidKey("/root/of/foo.txt")).To(BeFalse())
			Expect(f.IsValidKey("/root/of/a/b.ext")).To(BeFalse())
		})

		It("derives an empty prefix when the template starts with a field", func() {
			f, err := keyview.NewFilter("{rootdir}/{relative_path}.ext")
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Prefix()).To(Equal(""))

			Expect(f.IsValidKey("a/b/c.ext")).To(BeTrue())
			Expect(f.IsValidKey("a/b/c.txt")).To(BeFalse())
			Expect(f.IsValidKey("a/b/c.ext.extra")).To(BeFalse())
		})

		It("only accepts keys under the derived prefix", func() {
			f, err := keyview.NewFilter("data/{group}/{name}.json")
			Expect(err).NotTo(HaveOccurred())
			for _, k := range []string{"data/blue/a.json", "data/red/b.json", "other/c.json", "data/a.json"} {
				if f.IsValidKey(k) {
					Expect(strings.HasPrefix(k, f.Prefix())).To(BeTrue())
				}
			}
		})

		It("extracts field values from matching keys", func() {
			f, err := keyview.NewFilter("{rootdir}/{name}.ext")
			Expect(err).NotTo(HaveOccurred())

			fields, ok := f.Fields("a/b/c.ext")
			Expect(ok).To(BeTrue())
			Expect(fields).To(Equal(map[string]string{"rootdir": "a/b", "name": "c"}))

			_, ok = f.Fields("a/b/c.txt")
			Expect(ok).To(BeFalse())
		})
	})

	It("propagates template syntax errors", func() {
		_, err := keyview.NewFilter("/root/{bad-name}")
		Expect(err).To(HaveOccurred())
	})

	It("supports alternate separators", func() {
		f, err := keyview.NewFilterSep(`C:\root\of\{name}.ext`, `\`)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Prefix()).To(Equal(`C:\root\of\`))
		Expect(f.IsValidKey(`C:\root\of\foo.ext`)).To(BeTrue())
		Expect(f.IsValidKey(`C:\root\of\a\b.ext`)).To(BeFalse())
	})
})
