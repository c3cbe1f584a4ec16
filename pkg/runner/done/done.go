package done

import (
	"context"
	"errors"

	"tableflip.dev/agenda/pkg/done"
	"tableflip.dev/agenda/pkg/printers"
)

// Done toggles the completion flag for an event id from the command
// line. The flag is local to this machine; the provider never sees it.
type Done struct {
	ID      string
	Overlay *done.Overlay
}

func (d *Done) Do(ctx context.Context) error {
	if d.Overlay == nil {
		return errors.New("done: no overlay")
	}
	if d.ID == "" {
		return errors.New("done: event id required")
	}

	now := d.Overlay.Toggle(d.ID)

	pp := printers.New(nil, nil)
	if now {
		pp.Line("✓ %s marked done", d.ID)
	} else {
		pp.Line("· %s marked not done", d.ID)
	}
	return nil
}
