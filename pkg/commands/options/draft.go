package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/event"
)

// DraftOptions carries the add-event flags.
type DraftOptions struct {
	Description string
	Location    string
	AllDay      bool
	On          string
	At          string
	EndOn       string
	EndAt       string
	Guests      string
	Recurrence  string
	Color       string
}

func AddDraftArgs(cmd *cobra.Command, o *DraftOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "", "Event description.")
	cmd.Flags().StringVarP(&o.Location, "location", "l", "", "Event location.")
	cmd.Flags().BoolVar(&o.AllDay, "all-day", false, "Create an all-day event; times are ignored.")
	cmd.Flags().StringVar(&o.On, "on", "", `Start date, example: --on="2024-02-28".`)
	cmd.Flags().StringVar(&o.At, "at", "", `Start time, example: --at="09:30".`)
	cmd.Flags().StringVar(&o.EndOn, "end-on", "", "End date, defaults to the start date.")
	cmd.Flags().StringVar(&o.EndAt, "end-at", "", "End time, defaults to the start time.")
	cmd.Flags().StringVar(&o.Guests, "guests", "", "Comma-separated guest emails.")
	cmd.Flags().StringVar(&o.Recurrence, "repeat", "", `Recurrence rule, example: --repeat="RRULE:FREQ=WEEKLY".`)
	cmd.Flags().StringVar(&o.Color, "color", "", "Provider color id (1-11).")
}

// GetDraft builds the draft from the flags plus the positional title.
func (o *DraftOptions) GetDraft(args []string) event.Draft {
	return event.Draft{
		Title:       strings.Join(args, " "),
		Description: o.Description,
		Location:    o.Location,
		AllDay:      o.AllDay,
		StartDate:   o.On,
		StartTime:   o.At,
		EndDate:     o.EndOn,
		EndTime:     o.EndAt,
		Guests:      o.Guests,
		Recurrence:  o.Recurrence,
		ColorID:     o.Color,
	}
}
