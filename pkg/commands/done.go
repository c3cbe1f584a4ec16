package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/config"
	donestore "tableflip.dev/agenda/pkg/done"
	runnerdone "tableflip.dev/agenda/pkg/runner/done"
)

func addDone(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "done <event-id>",
		Short: "toggle the local completion flag for an event",
		Long: "Toggle the local completion flag for an event.\n\n" +
			"The flag lives on this machine only; the provider never sees it.\n" +
			"Use 'agenda get day --show-id' to find event ids.",
		Example: `
agenda done 6ka1v2j8qnm34
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("exactly one event id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// No gateway here; toggling works offline.
			store := donestore.NewDiskvStore(cfg.DonePath)
			r := runnerdone.Done{
				ID:      args[0],
				Overlay: donestore.NewOverlay(store),
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
