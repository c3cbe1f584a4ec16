// Package commands assembles the agenda command tree.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/config"
	"tableflip.dev/agenda/pkg/done"
	"tableflip.dev/agenda/pkg/gateway"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Google Calendar on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addLogin(topLevel)
	addGet(topLevel)
	addAdd(topLevel)
	addDone(topLevel)
	addVersion(topLevel)
}

// deps is the shared wiring for the commands that talk to the provider.
type deps struct {
	cfg     *config.Config
	gw      gateway.Gateway
	store   *done.DiskvStore
	overlay *done.Overlay
}

func load(ctx context.Context) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	gw, err := gateway.NewGoogle(ctx, cfg.CredentialsPath, cfg.TokenPath)
	if err != nil {
		return nil, err
	}
	store := done.NewDiskvStore(cfg.DonePath)
	return &deps{
		cfg:     cfg,
		gw:      gw,
		store:   store,
		overlay: done.NewOverlay(store),
	}, nil
}
