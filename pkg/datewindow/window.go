// Package datewindow computes the calendar dates visible for a reference
// date at a given zoom level, and the navigation between windows.
package datewindow

import "time"

// Zoom selects the window shape.
type Zoom int

const (
	Month Zoom = iota
	Week
	Day
)

func (z Zoom) String() string {
	switch z {
	case Month:
		return "month"
	case Week:
		return "week"
	case Day:
		return "day"
	}
	return "unknown"
}

// ParseZoom maps user input to a zoom level.
func ParseZoom(s string) (Zoom, bool) {
	switch s {
	case "month", "monthly", "m":
		return Month, true
	case "week", "weekly", "w":
		return Week, true
	case "day", "daily", "d":
		return Day, true
	}
	return Month, false
}

// Window is an ordered, ascending, duplicate-free run of calendar dates
// plus the zoom level that produced it. Padding counts leading blank grid
// cells in month zoom; padding cells carry no date and must never receive
// events.
type Window struct {
	Zoom    Zoom
	Ref     time.Time
	Padding int
	Dates   []time.Time
}

// At builds the window for ref at the given zoom. Any instant normalizes
// to its calendar date in ref's location.
func At(ref time.Time, zoom Zoom) Window {
	ref = Normalize(ref)
	w := Window{Zoom: zoom, Ref: ref}

	switch zoom {
	case Week:
		start := ref.AddDate(0, 0, -int(ref.Weekday()))
		w.Dates = make([]time.Time, 0, 7)
		for i := 0; i < 7; i++ {
			w.Dates = append(w.Dates, start.AddDate(0, 0, i))
		}
	case Day:
		w.Dates = []time.Time{ref}
	default:
		first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		n := DaysIn(first)
		w.Padding = int(first.Weekday())
		w.Dates = make([]time.Time, 0, n)
		for i := 0; i < n; i++ {
			w.Dates = append(w.Dates, first.AddDate(0, 0, i))
		}
	}
	return w
}

// Bounds returns the half-open instant range covering the window, from
// midnight of the first date to midnight after the last.
func (w Window) Bounds() (time.Time, time.Time) {
	if len(w.Dates) == 0 {
		return time.Time{}, time.Time{}
	}
	return w.Dates[0], w.Dates[len(w.Dates)-1].AddDate(0, 0, 1)
}

// Contains reports whether the window holds the calendar date of t.
// Membership compares year/month/day, not instants, so dates built in a
// different location still match on the same calendar day.
func (w Window) Contains(t time.Time) bool {
	for _, d := range w.Dates {
		if d.Year() == t.Year() && d.Month() == t.Month() && d.Day() == t.Day() {
			return true
		}
	}
	return false
}

// Next shifts ref forward by one window: a month (clamped to day 1 so
// month-length overflow cannot skip a month), seven days, or one day.
func Next(ref time.Time, zoom Zoom) time.Time {
	ref = Normalize(ref)
	switch zoom {
	case Week:
		return ref.AddDate(0, 0, 7)
	case Day:
		return ref.AddDate(0, 0, 1)
	default:
		return time.Date(ref.Year(), ref.Month()+1, 1, 0, 0, 0, 0, ref.Location())
	}
}

// Prev shifts ref backward by one window, mirroring Next so that
// prev(next(d)) == d (month zoom normalizes day-of-month to 1).
func Prev(ref time.Time, zoom Zoom) time.Time {
	ref = Normalize(ref)
	switch zoom {
	case Week:
		return ref.AddDate(0, 0, -7)
	case Day:
		return ref.AddDate(0, 0, -1)
	default:
		return time.Date(ref.Year(), ref.Month()-1, 1, 0, 0, 0, 0, ref.Location())
	}
}

// Normalize truncates an instant to its calendar date, keeping location.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in a month.
func DaysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return first.AddDate(0, 1, -1).Day()
}
