package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/runner/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive calendar",
		Example: `
agenda ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			d, err := load(ctx)
			if err != nil {
				return err
			}

			opts := []tui.Option{}
			// Live overlay reloads are best effort; run without them if
			// the watcher cannot start.
			if changes, err := d.store.Watch(ctx); err == nil {
				opts = append(opts, tui.WithOverlayWatch(changes))
			}

			return tui.Run(d.gw, d.overlay, opts...)
		},
	}

	topLevel.AddCommand(cmd)
}
