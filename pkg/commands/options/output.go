package options

import "github.com/spf13/cobra"

// OutputOptions
type OutputOptions struct {
	ShowID bool
}

func AddOutputArgs(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-id", false,
		"Print provider event ids, for use with 'agenda done'.")
}
