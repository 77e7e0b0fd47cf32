package git

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Errors", func() {
	Context("classify", func() {
		It("should detect an existing tag", func() {
			Ω(classify("fatal: tag 'v1.0.5' already exists")).Should(Equal(KindTagExists))
		})
		It("should detect a rejected push", func() {
			Ω(classify("! [rejected]        main -> main (fetch first)")).Should(Equal(KindRejected))
		})
		It("should detect a non fast-forward push", func() {
			Ω(classify("hint: Updates were rejected because the tip is behind, non-fast-forward")).Should(Equal(KindRejected))
		})
		It("should detect auth failures", func() {
			Ω(classify("fatal: Authentication failed for 'https://example.com/repo.git'")).Should(Equal(KindAuth))
			Ω(classify("git@example.com: Permission denied (publickey).")).Should(Equal(KindAuth))
		})
		It("should detect network failures", func() {
			Ω(classify("fatal: unable to access 'https://example.com/': Could not resolve host: example.com")).Should(Equal(KindNetwork))
			Ω(classify("ssh: connect to host example.com port 22: Connection timed out")).Should(Equal(KindNetwork))
			Ω(classify("fatal: Could not read from remote repository.")).Should(Equal(KindNetwork))
		})
		It("should fall back to unknown", func() {
			Ω(classify("fatal: something else entirely")).Should(Equal(KindUnknown))
		})
	})

	Context("Error", func() {
		It("should carry the tool diagnostic", func() {
			err := newError("push", []byte("! [rejected] main -> main\n"), errors.New("exit status 1"))
			Ω(err.Kind).Should(Equal(KindRejected))
			Ω(err.Error()).Should(ContainSubstring("[rejected]"))
		})
		It("should match through wrapping", func() {
			err := newError("tag", []byte("fatal: tag 'v1.0.5' already exists"), errors.New("exit status 128"))
			wrapped := fmt.Errorf("create tag: %w", err)
			Ω(IsKind(wrapped, KindTagExists)).Should(BeTrue())
			Ω(IsKind(wrapped, KindRejected)).Should(BeFalse())
		})
		It("should unwrap to the exec error", func() {
			cause := errors.New("exit status 1")
			err := newError("push", nil, cause)
			Ω(errors.Unwrap(err)).Should(Equal(cause))
		})
	})
})
