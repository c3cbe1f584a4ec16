// Package bucket assigns a flat provider-ordered event list onto the
// dates of a window.
package bucket

import (
	"time"

	"tableflip.dev/agenda/pkg/datewindow"
	"tableflip.dev/agenda/pkg/event"
)

// Bucket is the subset of fetched events that fall on one window date.
type Bucket struct {
	Date   time.Time
	Events []event.Event
}

// Visible returns the events shown directly in a grid cell.
func (b Bucket) Visible(limit int) []event.Event {
	if limit < 0 || len(b.Events) <= limit {
		return b.Events
	}
	return b.Events[:limit]
}

// Overflow counts the events collapsed behind the "+N more" indicator.
func (b Bucket) Overflow(limit int) int {
	if limit < 0 || len(b.Events) <= limit {
		return 0
	}
	return len(b.Events) - limit
}

type ymd struct {
	year  int
	month time.Month
	day   int
}

// Assign maps events onto the window's dates. Membership compares the
// event's effective calendar date in loc against each target date's
// year/month/day; time-of-day and offsets within the same day are
// irrelevant. Events with an unset start are excluded from every bucket.
// Within a bucket the provider's delivery order is preserved.
func Assign(w datewindow.Window, events []event.Event, loc *time.Location) []Bucket {
	buckets := make([]Bucket, len(w.Dates))
	index := make(map[ymd]int, len(w.Dates))
	for i, d := range w.Dates {
		buckets[i] = Bucket{Date: d}
		index[ymd{d.Year(), d.Month(), d.Day()}] = i
	}

	for _, ev := range events {
		y, m, d, ok := ev.Start.Day(loc)
		if !ok {
			continue
		}
		if i, hit := index[ymd{y, m, d}]; hit {
			buckets[i].Events = append(buckets[i].Events, ev)
		}
	}
	return buckets
}
