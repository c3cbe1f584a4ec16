package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/datewindow"
	"tableflip.dev/agenda/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	zo := &options.ZoomOptions{}
	oo := &options.OnOptions{}
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get [month|week|day]",
		Short: "print the agenda for a window",
		Example: `
agenda get
agenda get week
agenda get day --on="2024-02-28" --show-id
`,
		ValidArgs: []string{"month", "week", "day"},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("too many windows set, confused")
			}
			if len(args) == 1 {
				zo.ZoomString = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			zoom, err := zo.GetZoom()
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}

			ctx := context.Background()
			d, err := load(ctx)
			if err != nil {
				return err
			}

			g := get.Get{
				Zoom:    zoom,
				ShowID:  out.ShowID,
				Gateway: d.gw,
				Overlay: d.overlay,
			}
			if on != nil {
				g.On = datewindow.Normalize(*on)
			}
			return g.Do(ctx)
		},
	}

	options.AddZoomArgs(cmd, zo)
	options.AddOnArgs(cmd, oo)
	options.AddOutputArgs(cmd, out)
	topLevel.AddCommand(cmd)
}
