package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	do := &options.DraftOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "create an event on the primary calendar",
		Example: `
agenda add "Dentist" --on="2024-02-28" --at="09:30"
agenda add "Conference" --on="2024-03-04" --end-on="2024-03-06" --all-day
agenda add "Standup" --on="2024-03-04" --at="09:00" --repeat="RRULE:FREQ=WEEKLY"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("a title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d, err := load(ctx)
			if err != nil {
				return err
			}
			a := add.Add{
				Draft:   do.GetDraft(args),
				Gateway: d.gw,
			}
			return a.Do(ctx)
		},
	}

	options.AddDraftArgs(cmd, do)
	topLevel.AddCommand(cmd)
}
