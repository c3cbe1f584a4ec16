package add

import (
	"context"
	"errors"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/gateway"
	"tableflip.dev/agenda/pkg/printers"
)

// Add creates one event on the primary calendar from the command line.
type Add struct {
	Draft   event.Draft
	Gateway gateway.Gateway
}

func (a *Add) Do(ctx context.Context) error {
	if a.Gateway == nil {
		return errors.New("add: no gateway")
	}
	if err := a.Draft.Validate(); err != nil {
		return err
	}

	created, err := a.Gateway.CreateEvent(ctx, a.Draft)
	if err != nil {
		return err
	}

	pp := printers.New(nil, nil)
	pp.Title("Created")
	title := created.Title
	if title == "" {
		title = "(untitled)"
	}
	pp.Line("%s  %s", created.ID, title)
	return nil
}
