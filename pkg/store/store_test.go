package store_test

import (
	"os"
	"path/filepath"

	"github.com/bakito/releaser/pkg/semver"
	"github.com/bakito/releaser/pkg/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Store", func() {
	var (
		path string
		s    *store.Store
	)
	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), store.DefaultFileName)
		s = store.New(path)
	})

	Context("Load", func() {
		It("should report absence when no record exists", func() {
			_, found, err := s.Load()
			Ω(err).ShouldNot(HaveOccurred())
			Ω(found).Should(BeFalse())
		})
		It("should read a persisted version", func() {
			Ω(os.WriteFile(path, []byte("1.0.4\n"), 0o644)).ShouldNot(HaveOccurred())
			v, found, err := s.Load()
			Ω(err).ShouldNot(HaveOccurred())
			Ω(found).Should(BeTrue())
			Ω(v).Should(Equal(semver.Version{Major: 1, Minor: 0, Patch: 4}))
		})
		It("should fail on a corrupt record", func() {
			Ω(os.WriteFile(path, []byte("not-a-version"), 0o644)).ShouldNot(HaveOccurred())
			_, _, err := s.Load()
			Ω(err).Should(MatchError(store.ErrCorruptState))
		})
		It("should fail on a truncated record", func() {
			Ω(os.WriteFile(path, []byte("1.0"), 0o644)).ShouldNot(HaveOccurred())
			_, _, err := s.Load()
			Ω(err).Should(MatchError(store.ErrCorruptState))
		})
	})

	Context("Save", func() {
		It("should round trip through Load", func() {
			v := semver.Version{Major: 2, Minor: 1, Patch: 7}
			Ω(s.Save(v)).ShouldNot(HaveOccurred())
			got, found, err := s.Load()
			Ω(err).ShouldNot(HaveOccurred())
			Ω(found).Should(BeTrue())
			Ω(got).Should(Equal(v))
		})
		It("should overwrite an existing record", func() {
			Ω(s.Save(semver.Version{Major: 1})).ShouldNot(HaveOccurred())
			Ω(s.Save(semver.Version{Major: 1, Patch: 1})).ShouldNot(HaveOccurred())
			got, _, err := s.Load()
			Ω(err).ShouldNot(HaveOccurred())
			Ω(got).Should(Equal(semver.Version{Major: 1, Patch: 1}))
		})
		It("should leave no temp files behind", func() {
			Ω(s.Save(semver.Version{Major: 1})).ShouldNot(HaveOccurred())
			entries, err := os.ReadDir(filepath.Dir(path))
			Ω(err).ShouldNot(HaveOccurred())
			Ω(entries).Should(HaveLen(1))
			Ω(entries[0].Name()).Should(Equal(store.DefaultFileName))
		})
	})
})
