package release_test

import (
	"github.com/bakito/releaser/pkg/release"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("State", func() {
	It("should follow the pipeline order", func() {
		order := []release.State{
			release.StateClean,
			release.StateStaged,
			release.StateCommitted,
			release.StatePushed,
			release.StateVersionComputed,
			release.StateTagged,
			release.StateTagPushed,
			release.StatePersisted,
		}
		for i := 0; i < len(order)-1; i++ {
			Ω(order[i].CanTransition(order[i+1])).Should(BeTrue(), string(order[i]))
		}
	})
	It("should not allow skipping steps", func() {
		Ω(release.StateClean.CanTransition(release.StateCommitted)).Should(BeFalse())
		Ω(release.StatePushed.CanTransition(release.StateTagPushed)).Should(BeFalse())
	})
	It("should not allow moving backwards", func() {
		Ω(release.StateTagged.CanTransition(release.StateStaged)).Should(BeFalse())
	})
	It("should reach Aborted from any non-terminal state", func() {
		for _, s := range []release.State{
			release.StateClean,
			release.StateStaged,
			release.StateCommitted,
			release.StatePushed,
			release.StateVersionComputed,
			release.StateTagged,
			release.StateTagPushed,
		} {
			Ω(s.CanTransition(release.StateAborted)).Should(BeTrue(), string(s))
		}
	})
	It("should treat Persisted and Aborted as terminal", func() {
		Ω(release.StatePersisted.Terminal()).Should(BeTrue())
		Ω(release.StateAborted.Terminal()).Should(BeTrue())
		Ω(release.StatePersisted.CanTransition(release.StateAborted)).Should(BeFalse())
		Ω(release.StateAborted.CanTransition(release.StateClean)).Should(BeFalse())
	})
})
