package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bakito/releaser/pkg/git"
	"github.com/bakito/releaser/pkg/prompt"
	"github.com/bakito/releaser/pkg/release"
	"github.com/bakito/releaser/pkg/semver"
	"github.com/bakito/releaser/pkg/store"
	"github.com/bakito/releaser/pkg/types"
	"github.com/bakito/releaser/version"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "releaser",
	Version: version.Version,
	Short:   "push, tag and record application releases",
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := readConfig(cmd)
		if err != nil {
			return err
		}
		opts, err := readOptions(cmd, config)
		if err != nil {
			return err
		}

		gw, err := git.New(config.WorkDir, config.Remote)
		if err != nil {
			return err
		}
		o := release.New(gw, store.New(versionPath(config)), prompt.New(), config.Logger())
		_, err = o.Run(cmd.Context(), opts)
		return err
	},
}

func readConfig(cmd *cobra.Command) (*types.Config, error) {
	config := types.NewConfig()

	if cfgFile != "" {
		b, err := os.ReadFile(cfgFile)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, config); err != nil {
			return nil, err
		}
	}

	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "branch":
			config.Branch = f.Value.String()
		case "remote":
			config.Remote = f.Value.String()
		case "work-dir":
			config.WorkDir = f.Value.String()
		case "quiet":
			b, _ := cmd.Flags().GetBool(f.Name)
			config.Quiet = b
		case "simple":
			b, _ := cmd.Flags().GetBool(f.Name)
			config.Simple = b
		}
	})

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func readOptions(cmd *cobra.Command, config *types.Config) (release.Options, error) {
	opts := release.Options{Branch: config.Branch}
	opts.Message, _ = cmd.Flags().GetString("message")

	if cmd.Flags().Changed("release") {
		b, _ := cmd.Flags().GetBool("release")
		opts.Release = &b
	} else if !prompt.Interactive() {
		// without a terminal there is nobody to ask, stop after the push
		decline := false
		opts.Release = &decline
	}

	if v, _ := cmd.Flags().GetString("set-version"); v != "" {
		parsed, err := semver.Parse(v)
		if err != nil {
			return opts, err
		}
		opts.Override = &parsed
	}
	if v, _ := cmd.Flags().GetString("first-version"); v != "" {
		parsed, err := semver.Parse(v)
		if err != nil {
			return opts, err
		}
		opts.First = &parsed
	}
	return opts, nil
}

func versionPath(config *types.Config) string {
	if filepath.IsAbs(config.VersionFile) {
		return config.VersionFile
	}
	return filepath.Join(config.WorkDir, config.VersionFile)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	rootCmd.PersistentFlags().StringP("work-dir", "C", "", "The project root (default current directory)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "If enabled, output is prevented")
	rootCmd.PersistentFlags().Bool("simple", false, "If enabled, simple uncolored output is used")

	rootCmd.Flags().StringP("message", "m", "", "The commit message (default '"+release.DefaultMessage+"')")
	rootCmd.Flags().StringP("branch", "b", "", "The branch to push (default "+types.DefaultBranch+")")
	rootCmd.Flags().String("remote", "", "The remote to push to (default "+types.DefaultRemote+")")
	rootCmd.Flags().Bool("release", false, "Cut a release after the push; omit to be asked")
	rootCmd.Flags().String("set-version", "", "Release exactly this version instead of the computed one")
	rootCmd.Flags().String("first-version", "", "The starting version for the very first release")
}
