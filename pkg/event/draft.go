package event

import (
	"errors"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"
)

const layoutClock = "15:04"

// Draft is user-authored input pending transformation into a provider
// create-event request. Dates use 2006-01-02, times 15:04.
type Draft struct {
	Title       string
	Description string
	Location    string
	AllDay      bool
	StartDate   string
	StartTime   string
	EndDate     string
	EndTime     string
	Guests      string // comma-separated email list
	Recurrence  string // raw RRULE, passed through unvalidated
	ColorID     string
}

// Validate checks the fields the provider would reject outright. It does
// not attempt RRULE syntax checking.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("event: title is required")
	}
	if _, err := time.Parse(layoutISO, d.StartDate); err != nil {
		return errors.New("event: start date must be YYYY-MM-DD")
	}
	if d.EndDate != "" {
		if _, err := time.Parse(layoutISO, d.EndDate); err != nil {
			return errors.New("event: end date must be YYYY-MM-DD")
		}
	}
	if !d.AllDay {
		if _, err := time.Parse(layoutClock, d.StartTime); err != nil {
			return errors.New("event: start time must be HH:MM")
		}
		if d.EndTime != "" {
			if _, err := time.Parse(layoutClock, d.EndTime); err != nil {
				return errors.New("event: end time must be HH:MM")
			}
		}
	}
	return nil
}

// Provider transforms the draft into the provider's create-event shape.
// All-day drafts carry only a date on each boundary; timed drafts carry a
// combined date+time value. Optional fields with no value are omitted from
// the payload entirely.
func (d Draft) Provider() (*calendar.Event, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	endDate := d.EndDate
	if endDate == "" {
		endDate = d.StartDate
	}

	ev := &calendar.Event{
		Summary:     strings.TrimSpace(d.Title),
		Description: d.Description,
		Location:    d.Location,
		ColorId:     d.ColorID,
	}

	if d.AllDay {
		ev.Start = &calendar.EventDateTime{Date: d.StartDate}
		ev.End = &calendar.EventDateTime{Date: endDate}
	} else {
		endTime := d.EndTime
		if endTime == "" {
			endTime = d.StartTime
		}
		ev.Start = &calendar.EventDateTime{DateTime: d.StartDate + "T" + d.StartTime}
		ev.End = &calendar.EventDateTime{DateTime: endDate + "T" + endTime}
	}

	for _, g := range strings.Split(d.Guests, ",") {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		ev.Attendees = append(ev.Attendees, &calendar.EventAttendee{Email: g})
	}

	if rule := strings.TrimSpace(d.Recurrence); rule != "" {
		ev.Recurrence = []string{rule}
	}

	return ev, nil
}
