// Package gateway is the boundary to the calendar provider. Everything
// the rest of the program knows about the provider passes through the
// two Gateway operations, and every provider failure is flattened to a
// descriptive error here.
package gateway

import (
	"context"
	"sort"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"tableflip.dev/agenda/pkg/event"
)

// pageCap bounds each per-calendar listing. There is no pagination past
// this: result sets larger than the cap are silently truncated by the
// provider, matching the page-size contract the views were built for.
const pageCap = 100

// primaryCalendar receives created events.
const primaryCalendar = "primary"

// Gateway is the provider contract the runners and the UI consume.
type Gateway interface {
	// ListEvents returns events across all calendars the authenticated
	// identity can access within [start, end), recurring instances
	// expanded, ordered by start time.
	ListEvents(ctx context.Context, start, end time.Time) ([]event.Event, error)

	// CreateEvent creates one event on the identity's primary calendar.
	CreateEvent(ctx context.Context, d event.Draft) (event.Event, error)
}

// Google implements Gateway against the Google Calendar API.
type Google struct {
	svc *calendar.Service
	loc *time.Location
}

// NewGoogle wires a gateway from the configured credential and token
// paths. It fails fast on a missing credential file, a missing token, or
// a token whose grant lacks the calendar scope.
func NewGoogle(ctx context.Context, credentialsPath, tokenPath string) (*Google, error) {
	cfg, err := OAuthConfig(credentialsPath)
	if err != nil {
		return nil, err
	}
	tok, err := LoadToken(tokenPath)
	if err != nil {
		return nil, err
	}
	svc, err := calendar.NewService(ctx, option.WithTokenSource(cfg.TokenSource(ctx, tok)))
	if err != nil {
		return nil, describe("create service", err)
	}
	return &Google{svc: svc, loc: time.Local}, nil
}

// ListEvents fans out over the identity's calendar list, merging the
// per-calendar streams back into one start-ordered list. Hidden
// calendar-list entries are skipped; deleted events and hidden
// invitations are excluded by the listing defaults.
func (g *Google) ListEvents(ctx context.Context, start, end time.Time) ([]event.Event, error) {
	cals, err := g.svc.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, describe("list calendars", err)
	}

	all := make([]event.Event, 0, 64)
	for _, item := range cals.Items {
		if item.Hidden {
			continue
		}
		res, err := g.svc.Events.List(item.Id).
			TimeMin(start.Format(time.RFC3339)).
			TimeMax(end.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			ShowDeleted(false).
			MaxResults(pageCap).
			Context(ctx).
			Do()
		if err != nil {
			return nil, describe("list events", err)
		}
		for _, raw := range res.Items {
			ev := event.FromProvider(raw)
			ev.Calendar = item.Summary
			all = append(all, ev)
		}
	}

	// Each per-calendar page arrives start-ordered; a stable sort on the
	// start instant keeps that order while interleaving calendars.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Start.When(g.loc).Before(all[j].Start.When(g.loc))
	})
	return all, nil
}

// CreateEvent submits the draft to the primary calendar and returns the
// provider's view of the created event.
func (g *Google) CreateEvent(ctx context.Context, d event.Draft) (event.Event, error) {
	payload, err := d.Provider()
	if err != nil {
		return event.Event{}, err
	}
	created, err := g.svc.Events.Insert(primaryCalendar, payload).Context(ctx).Do()
	if err != nil {
		return event.Event{}, describe("create event", err)
	}
	return event.FromProvider(created), nil
}

var _ Gateway = (*Google)(nil)
