package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bakito/releaser/pkg/assemble"
)

// assembleCmd.
var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble the installer staging tree",
	Long:  "Copies the pinned application files into a fresh staging tree and unpacks the pinned interpreter runtime.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := readConfig(cmd)
		if err != nil {
			return err
		}

		a, err := assemble.New(config)
		if err != nil {
			return err
		}
		staging, err := a.Assemble(cmd.Context())
		if err != nil {
			return err
		}
		config.Logger().Checkf("staging tree %s\n", staging)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(assembleCmd)
}
