package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/config"
	"tableflip.dev/agenda/pkg/runner/login"
)

func addLogin(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "authorize calendar access and cache the token",
		Example: `
agenda login
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			l := login.Login{
				CredentialsPath: cfg.CredentialsPath,
				TokenPath:       cfg.TokenPath,
				In:              os.Stdin,
				Out:             os.Stdout,
			}
			return l.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
