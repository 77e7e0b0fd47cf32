package semver_test

import (
	"github.com/bakito/releaser/pkg/semver"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Semver", func() {
	Context("Parse", func() {
		It("should parse a plain version", func() {
			v, err := semver.Parse("1.2.3")
			Ω(err).ShouldNot(HaveOccurred())
			Ω(v).Should(Equal(semver.Version{Major: 1, Minor: 2, Patch: 3}))
		})
		It("should accept a leading tag prefix", func() {
			v, err := semver.Parse("v1.0.4")
			Ω(err).ShouldNot(HaveOccurred())
			Ω(v).Should(Equal(semver.Version{Major: 1, Minor: 0, Patch: 4}))
		})
		It("should accept surrounding whitespace", func() {
			v, err := semver.Parse(" 0.1.0\n")
			Ω(err).ShouldNot(HaveOccurred())
			Ω(v).Should(Equal(semver.Version{Minor: 1}))
		})
		It("should reject an empty string", func() {
			_, err := semver.Parse("")
			Ω(err).Should(MatchError(semver.ErrMalformedVersion))
		})
		It("should reject missing components", func() {
			_, err := semver.Parse("1.2")
			Ω(err).Should(MatchError(semver.ErrMalformedVersion))
		})
		It("should reject extra components", func() {
			_, err := semver.Parse("1.2.3.4")
			Ω(err).Should(MatchError(semver.ErrMalformedVersion))
		})
		It("should reject negative components", func() {
			_, err := semver.Parse("1.-2.3")
			Ω(err).Should(MatchError(semver.ErrMalformedVersion))
		})
		It("should reject pre-release suffixes", func() {
			_, err := semver.Parse("1.2.3-rc1")
			Ω(err).Should(MatchError(semver.ErrMalformedVersion))
		})
		It("should be a left inverse of String", func() {
			for _, v := range []semver.Version{
				{},
				{Major: 1},
				{Major: 1, Minor: 0, Patch: 4},
				{Major: 12, Minor: 34, Patch: 56},
			} {
				parsed, err := semver.Parse(v.String())
				Ω(err).ShouldNot(HaveOccurred())
				Ω(parsed).Should(Equal(v))
			}
		})
	})

	Context("Next", func() {
		It("should bump the patch only", func() {
			Ω(semver.Next(semver.Version{Major: 1, Minor: 0, Patch: 4})).
				Should(Equal(semver.Version{Major: 1, Minor: 0, Patch: 5}))
		})
		It("should be strictly greater than its input", func() {
			v := semver.Version{Major: 2, Minor: 3, Patch: 9}
			Ω(semver.Less(v, semver.Next(v))).Should(BeTrue())
		})
		It("should not mutate its input", func() {
			v := semver.Version{Major: 1, Minor: 1, Patch: 1}
			_ = semver.Next(v)
			Ω(v.Patch).Should(Equal(int64(1)))
		})
	})

	Context("Tag", func() {
		It("should prefix the canonical form", func() {
			Ω(semver.Version{Major: 1, Minor: 0, Patch: 5}.Tag()).Should(Equal("v1.0.5"))
		})
	})
})
