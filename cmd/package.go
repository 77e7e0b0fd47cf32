package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bakito/releaser/pkg/pack"
	"github.com/bakito/releaser/pkg/semver"
	"github.com/bakito/releaser/pkg/store"
)

// packageCmd.
var packageCmd = &cobra.Command{
	Use:     "package <staging-dir>",
	Aliases: []string{"pack"},
	Short:   "Package a staging tree into the distributable installer",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := readConfig(cmd)
		if err != nil {
			return err
		}

		var v semver.Version
		if text, _ := cmd.Flags().GetString("set-version"); text != "" {
			if v, err = semver.Parse(text); err != nil {
				return err
			}
		} else {
			var found bool
			if v, found, err = store.New(versionPath(config)).Load(); err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("no version recorded yet, use --set-version")
			}
		}

		p, err := pack.New(config)
		if err != nil {
			return err
		}
		_, err = p.Package(v, args[0])
		return err
	},
}

func init() {
	rootCmd.AddCommand(packageCmd)
	packageCmd.Flags().String("set-version", "", "Package this version instead of the recorded one")
}
