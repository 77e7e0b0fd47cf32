package assemble

import (
	"archive/zip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bakito/releaser/pkg/types"
)

var _ = Describe("Assembler", func() {
	var (
		config  *types.Config
		workDir string
	)
	BeforeEach(func() {
		workDir = GinkgoT().TempDir()
		config = types.NewConfig()
		config.Name = "voikan"
		config.WorkDir = workDir
		config.Quiet = true
		config.Assemble.Target = filepath.Join(GinkgoT().TempDir(), "build-root")
		config.Assemble.Paths = []string{"main.py", "ui/main_window.py"}
		config.Assemble.Worker = 2

		Ω(os.WriteFile(filepath.Join(workDir, "main.py"), []byte("print('hi')\n"), 0o644)).ShouldNot(HaveOccurred())
		Ω(os.MkdirAll(filepath.Join(workDir, "ui"), 0o755)).ShouldNot(HaveOccurred())
		Ω(os.WriteFile(filepath.Join(workDir, "ui", "main_window.py"), []byte("window\n"), 0o644)).ShouldNot(HaveOccurred())
	})

	Context("New", func() {
		It("should refuse an empty path list", func() {
			config.Assemble.Paths = nil
			_, err := New(config)
			Ω(err).Should(HaveOccurred())
		})
	})

	Context("Assemble", func() {
		It("should copy the pinned paths into a fresh staging tree", func() {
			a, err := New(config)
			Ω(err).ShouldNot(HaveOccurred())

			staging, err := a.Assemble(context.Background())
			Ω(err).ShouldNot(HaveOccurred())

			b, err := os.ReadFile(filepath.Join(staging, "main.py"))
			Ω(err).ShouldNot(HaveOccurred())
			Ω(string(b)).Should(Equal("print('hi')\n"))
			_, err = os.Stat(filepath.Join(staging, "ui", "main_window.py"))
			Ω(err).ShouldNot(HaveOccurred())
		})

		It("should use a new staging dir per run", func() {
			a, err := New(config)
			Ω(err).ShouldNot(HaveOccurred())

			first, err := a.Assemble(context.Background())
			Ω(err).ShouldNot(HaveOccurred())
			second, err := a.Assemble(context.Background())
			Ω(err).ShouldNot(HaveOccurred())
			Ω(first).ShouldNot(Equal(second))
		})

		It("should fail when a pinned path is missing", func() {
			config.Assemble.Paths = append(config.Assemble.Paths, "missing.py")
			a, err := New(config)
			Ω(err).ShouldNot(HaveOccurred())

			_, err = a.Assemble(context.Background())
			Ω(err).Should(HaveOccurred())
			Ω(err.Error()).Should(ContainSubstring("missing.py"))
		})

		It("should download and unpack the runtime archive", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				zw := zip.NewWriter(w)
				f, _ := zw.Create("python.exe")
				_, _ = f.Write([]byte("binary"))
				_ = zw.Close()
			}))
			defer srv.Close()
			config.Assemble.RuntimeURL = srv.URL

			a, err := New(config)
			Ω(err).ShouldNot(HaveOccurred())
			staging, err := a.Assemble(context.Background())
			Ω(err).ShouldNot(HaveOccurred())

			b, err := os.ReadFile(filepath.Join(staging, "python", "python.exe"))
			Ω(err).ShouldNot(HaveOccurred())
			Ω(string(b)).Should(Equal("binary"))
		})

		It("should fail on a missing runtime archive", func() {
			srv := httptest.NewServer(http.NotFoundHandler())
			defer srv.Close()
			config.Assemble.RuntimeURL = srv.URL

			a, err := New(config)
			Ω(err).ShouldNot(HaveOccurred())
			_, err = a.Assemble(context.Background())
			Ω(err).Should(HaveOccurred())
		})
	})

	Context("unzip", func() {
		It("should refuse entries escaping the target", func() {
			dir := GinkgoT().TempDir()
			archive := filepath.Join(dir, "evil.zip")
			f, err := os.Create(archive)
			Ω(err).ShouldNot(HaveOccurred())
			zw := zip.NewWriter(f)
			e, err := zw.Create("../evil.txt")
			Ω(err).ShouldNot(HaveOccurred())
			_, err = e.Write([]byte("nope"))
			Ω(err).ShouldNot(HaveOccurred())
			Ω(zw.Close()).ShouldNot(HaveOccurred())
			Ω(f.Close()).ShouldNot(HaveOccurred())

			err = unzip(archive, filepath.Join(dir, "out"))
			Ω(err).Should(HaveOccurred())
		})
	})
})
