package get

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/agenda/pkg/bucket"
	"tableflip.dev/agenda/pkg/datewindow"
	"tableflip.dev/agenda/pkg/done"
	"tableflip.dev/agenda/pkg/gateway"
	"tableflip.dev/agenda/pkg/printers"
)

// Get prints the agenda for one window without entering the TUI.
type Get struct {
	Zoom    datewindow.Zoom
	On      time.Time
	Loc     *time.Location
	ShowID  bool
	Gateway gateway.Gateway
	Overlay *done.Overlay
}

func (g *Get) Do(ctx context.Context) error {
	w, buckets, err := g.plan(ctx)
	if err != nil {
		return err
	}

	pp := printers.New(g.location(), g.Overlay)
	pp.ShowID = g.ShowID

	if g.Zoom == datewindow.Day {
		pp.Day(buckets[0])
		return nil
	}
	pp.Grid(w, buckets)
	return nil
}

func (g *Get) location() *time.Location {
	if g.Loc != nil {
		return g.Loc
	}
	return time.Local
}

// plan resolves the window and buckets on the display zone's calendar.
// A requested date parsed in another zone contributes only its
// year/month/day; the window boundaries and bucketing both live in loc,
// so an evening event stays on the day the user asked about.
func (g *Get) plan(ctx context.Context) (datewindow.Window, []bucket.Bucket, error) {
	if g.Gateway == nil {
		return datewindow.Window{}, nil, errors.New("get: no gateway")
	}

	loc := g.location()
	on := g.On
	if on.IsZero() {
		on = time.Now().In(loc)
	}
	on = time.Date(on.Year(), on.Month(), on.Day(), 0, 0, 0, 0, loc)

	w := datewindow.At(on, g.Zoom)
	start, end := w.Bounds()

	events, err := g.Gateway.ListEvents(ctx, start, end)
	if err != nil {
		return datewindow.Window{}, nil, err
	}
	return w, bucket.Assign(w, events, loc), nil
}
