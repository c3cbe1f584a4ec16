// Package event holds the calendar event model shared by the gateway,
// the bucketer, and the views.
package event

import (
	"time"

	"google.golang.org/api/calendar/v3"
)

const layoutISO = "2006-01-02"

// Kind tags the two shapes an event boundary can take on the wire.
type Kind int

const (
	// KindUnset means the provider sent neither a date nor a date-time.
	KindUnset Kind = iota
	// KindAllDay is a date-only value with no time zone.
	KindAllDay
	// KindTimed is a precise instant with an offset.
	KindTimed
)

// Moment is the tagged variant for an event boundary. Exactly one
// representation is meaningful; the zero Moment is KindUnset. Construct
// from provider payloads with momentFromProvider so the date-or-datetime
// ambiguity stays in one place.
type Moment struct {
	kind Kind
	date time.Time // all-day: year/month/day only, location-free by convention
	at   time.Time // timed: full instant
}

// AllDay builds a date-only Moment.
func AllDay(year int, month time.Month, day int) Moment {
	return Moment{kind: KindAllDay, date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Timed builds an instant Moment.
func Timed(at time.Time) Moment {
	return Moment{kind: KindTimed, at: at}
}

// Kind reports which representation the moment carries.
func (m Moment) Kind() Kind { return m.kind }

// Day resolves the moment to a calendar date in loc. All-day moments
// resolve to their stored date regardless of loc; timed moments convert
// the instant first. ok is false for an unset moment.
func (m Moment) Day(loc *time.Location) (year int, month time.Month, day int, ok bool) {
	switch m.kind {
	case KindAllDay:
		y, mo, d := m.date.Date()
		return y, mo, d, true
	case KindTimed:
		y, mo, d := m.at.In(loc).Date()
		return y, mo, d, true
	default:
		return 0, 0, 0, false
	}
}

// When returns the best instant for ordering and display: the instant
// itself for timed moments, local midnight of the date for all-day
// moments, and the zero time when unset.
func (m Moment) When(loc *time.Location) time.Time {
	switch m.kind {
	case KindAllDay:
		y, mo, d := m.date.Date()
		return time.Date(y, mo, d, 0, 0, 0, 0, loc)
	case KindTimed:
		return m.at.In(loc)
	default:
		return time.Time{}
	}
}

// Clock renders a short time label for timed moments and an empty
// string otherwise.
func (m Moment) Clock(loc *time.Location) string {
	if m.kind != KindTimed {
		return ""
	}
	return m.at.In(loc).Format("15:04")
}

// Event is a provider-sourced calendar event, read-only to this program.
type Event struct {
	ID          string
	Title       string
	Description string
	Location    string
	ColorID     string
	Calendar    string
	Start       Moment
	End         Moment
}

// FromProvider converts a provider event into the local model. Boundary
// fields that fail to parse, or that the provider omitted, come back as
// unset moments; the bucketer excludes those events rather than guessing.
func FromProvider(e *calendar.Event) Event {
	if e == nil {
		return Event{}
	}
	return Event{
		ID:          e.Id,
		Title:       e.Summary,
		Description: e.Description,
		Location:    e.Location,
		ColorID:     e.ColorId,
		Start:       momentFromProvider(e.Start),
		End:         momentFromProvider(e.End),
	}
}

func momentFromProvider(edt *calendar.EventDateTime) Moment {
	if edt == nil {
		return Moment{}
	}
	if edt.DateTime != "" {
		at, err := time.Parse(time.RFC3339, edt.DateTime)
		if err != nil {
			return Moment{}
		}
		return Timed(at)
	}
	if edt.Date != "" {
		d, err := time.Parse(layoutISO, edt.Date)
		if err != nil {
			return Moment{}
		}
		return AllDay(d.Date())
	}
	return Moment{}
}
