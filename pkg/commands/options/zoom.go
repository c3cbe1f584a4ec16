package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/datewindow"
)

// ZoomOptions
type ZoomOptions struct {
	ZoomString string
}

func AddZoomArgs(cmd *cobra.Command, o *ZoomOptions) {
	cmd.Flags().StringVarP(&o.ZoomString, "zoom", "z", "month",
		"Window size. One of 'month', 'week' or 'day'.")
}

func (o *ZoomOptions) GetZoom() (datewindow.Zoom, error) {
	z, ok := datewindow.ParseZoom(o.ZoomString)
	if !ok {
		return z, fmt.Errorf("unknown zoom %q, want month, week or day", o.ZoomString)
	}
	return z, nil
}
