package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bakito/releaser/pkg/publish"
	"github.com/bakito/releaser/pkg/types"
)

// publishCmd.
var publishCmd = &cobra.Command{
	Use:   "publish <artifact>",
	Short: "Upload an installer artifact to the configured storage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		config, err := readConfig(cmd)
		if err != nil {
			return err
		}

		if config.S3 != nil && config.S3.SecretAccessKey == "" {
			if k, ok := os.LookupEnv(types.EnvS3Secret); ok {
				config.S3.SecretAccessKey = k
			} else if config.S3.SecretAccessKey, err = readSecret(); err != nil {
				return err
			}
		}

		p, err := publish.New(config)
		if err != nil {
			return err
		}
		return p.Upload(cmd.Context(), args[0])
	},
}

func readSecret() (string, error) {
	// restore terminal state on interrupt https://github.com/golang/go/issues/31180
	fd := int(os.Stdin.Fd())
	oldState, err := term.GetState(fd)
	if err != nil {
		return "", err
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	go func() {
		for range sigch {
			_ = term.Restore(fd, oldState)
			os.Exit(0)
		}
	}()

	_, _ = fmt.Fprint(os.Stderr, "Please enter the storage secret key: ")
	key, err := term.ReadPassword(fd)
	if err != nil {
		return "", err
	}
	_, _ = fmt.Fprintln(os.Stderr)
	return string(key), nil
}

func init() {
	rootCmd.AddCommand(publishCmd)
}
