package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bakito/releaser/pkg/store"
	"github.com/bakito/releaser/pkg/update"
)

// checkCmd.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the update manifest against the recorded version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := readConfig(cmd)
		if err != nil {
			return err
		}
		l := config.Logger()

		v, found, err := store.New(versionPath(config)).Load()
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("no version recorded yet")
		}

		c, err := update.New(config)
		if err != nil {
			return err
		}
		m, err := c.Check(cmd.Context(), v)
		if err != nil {
			return err
		}
		if m == nil {
			l.Checkf("up to date (%s)\n", v)
			return nil
		}
		l.Printf("new version available: %s\n", m.Version)
		if m.PageURL != "" {
			l.Printf("  %s\n", m.PageURL)
		}
		if m.Changelog != "" {
			l.Printf("  %s\n", m.Changelog)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
