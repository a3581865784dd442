package keyview_test

import (
	"github.com/mplewis/keyview"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Relativizer", func() {
	r := keyview.NewRelativizer("/root/of/")

	It("strips and prepends the prefix", func() {
		rel, err := r.Relativize("/root/of/the/file/we.want")
		Expect(err).NotTo(HaveOccurred())
		Expect(rel).To(Equal("the/file/we.want"))

		Expect(r.Derelativize("the/file/we.want")).To(Equal("/root/of/the/file/we.want"))
	})

	It("round-trips in both directions", func() {
		for _, abs := range []string{"/root/of/foo", "/root/of/", "/root/of/a/b/c.ext"} {
			rel, err := r.Relativize(abs)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Derelativize(rel)).To(Equal(abs))
		}
		for _, rel := range []string{"", "foo", "a/b/c.ext"} {
			got, err := r.Relativize(r.Derelativize(rel))
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(rel))
		}
	})

	It("rejects keys outside the prefix", func() {
		_, err := r.Relativize("/elsewhere/foo")
		Expect(err).To(HaveOccurred())
		Expect(err).To(BeAssignableToTypeOf(keyview.PrefixMismatchError{}))
		Expect(err.Error()).To(ContainSubstring("/elsewhere/foo"))
	})

	It("treats an empty prefix as the identity", func() {
		id := keyview.NewRelativizer("")
		rel, err := id.Relativize("/root/of/foo")
		Expect(err).NotTo(HaveOccurred())
		Expect(rel).To(Equal("/root/of/foo"))
	})
})

var _ = Describe("CommonPrefix", func() {
	It("finds the longest common leading substring", func() {
		keys := []string{"/root/of/foo", "/root/of/bar", "/root/for/alice"}
		Expect(keyview.CommonPrefix(keys)).To(Equal("/root/"))
	})

	It("returns the whole key for a single-key slice", func() {
		Expect(keyview.CommonPrefix([]string{"/root/of/foo"})).To(Equal("/root/of/foo"))
	})

	It("returns empty for an empty slice", func() {
		Expect(keyview.CommonPrefix(nil)).To(Equal(""))
	})

	It("returns empty when keys share nothing", func() {
		Expect(keyview.CommonPrefix([]string{"abc", "xyz"})).To(Equal(""))
	})
})
