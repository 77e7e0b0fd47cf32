package types_test

import (
	"github.com/ghodss/yaml"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bakito/releaser/pkg/semver"
	"github.com/bakito/releaser/pkg/types"
)

var _ = Describe("Config", func() {
	var config *types.Config
	BeforeEach(func() {
		config = types.NewConfig()
		config.Name = "voikan"
	})

	Context("Validate", func() {
		It("should accept the defaults", func() {
			Ω(config.Validate()).ShouldNot(HaveOccurred())
		})
		It("should reject an empty branch", func() {
			config.Branch = ""
			Ω(config.Validate()).Should(HaveOccurred())
		})
		It("should reject an empty remote", func() {
			config.Remote = ""
			Ω(config.Validate()).Should(HaveOccurred())
		})
		It("should reject an empty version file", func() {
			config.VersionFile = ""
			Ω(config.Validate()).Should(HaveOccurred())
		})
		It("should reject zero workers", func() {
			config.Assemble.Worker = 0
			Ω(config.Validate()).Should(HaveOccurred())
		})
		It("should reject a broken installer name template", func() {
			config.Package.NameTemplate = "{{.Name"
			Ω(config.Validate()).Should(HaveOccurred())
		})
	})

	Context("InstallerName", func() {
		It("should render the default template", func() {
			name, err := config.InstallerName(semver.Version{Major: 1, Minor: 0, Patch: 5})
			Ω(err).ShouldNot(HaveOccurred())
			Ω(name).Should(Equal("voikan-setup-1.0.5.zip"))
		})
		It("should support sprig functions", func() {
			config.Package.NameTemplate = `{{upper .Name}}-{{.Tag}}.zip`
			name, err := config.InstallerName(semver.Version{Major: 2})
			Ω(err).ShouldNot(HaveOccurred())
			Ω(name).Should(Equal("VOIKAN-v2.0.0.zip"))
		})
	})

	Context("yaml", func() {
		It("should unmarshal over the defaults", func() {
			data := []byte(`
name: voikan
branch: develop
assemble:
  worker: 4
  paths:
    - main.py
    - ui/main_window.py
s3:
  endpoint: s3.example.com
  bucket: releases
`)
			Ω(yaml.Unmarshal(data, config)).ShouldNot(HaveOccurred())
			Ω(config.Branch).Should(Equal("develop"))
			Ω(config.Remote).Should(Equal(types.DefaultRemote))
			Ω(config.Assemble.Worker).Should(Equal(4))
			Ω(config.Assemble.Paths).Should(HaveLen(2))
			Ω(config.S3).ShouldNot(BeNil())
			Ω(config.S3.Bucket).Should(Equal("releases"))
		})
	})
})
