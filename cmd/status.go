package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bakito/releaser/pkg/git"
	"github.com/bakito/releaser/pkg/render"
	"github.com/bakito/releaser/pkg/store"
)

// status.
var status = &cobra.Command{
	Use:   "status",
	Short: "Show pending changes and the recorded version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := readConfig(cmd)
		if err != nil {
			return err
		}
		l := config.Logger()

		gw, err := git.New(config.WorkDir, config.Remote)
		if err != nil {
			return err
		}

		v, found, err := store.New(versionPath(config)).Load()
		if err != nil {
			return err
		}
		if found {
			l.Printf("recorded version: %s\n", v)
		} else {
			l.Printf("no version recorded yet\n")
		}

		branch, err := gw.CurrentBranch(cmd.Context())
		if err != nil {
			return err
		}
		l.Printf("branch: %s\n", branch)

		changes, err := gw.Status(cmd.Context())
		if err != nil {
			return err
		}
		if len(changes) == 0 {
			l.Checkf("working tree clean\n")
			return nil
		}

		table := render.Table(os.Stdout)
		table.SetHeader([]string{"State", "Path"})
		for _, c := range changes {
			table.Append([]string{c.Code, c.Path})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(status)
}
