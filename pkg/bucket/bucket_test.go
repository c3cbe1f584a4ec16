package bucket

import (
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/datewindow"
	"tableflip.dev/agenda/pkg/event"
)

func allDayOn(id string, y int, m time.Month, d int) event.Event {
	return event.Event{ID: id, Start: event.AllDay(y, m, d)}
}

func TestAllDayEventBucketsIntoItsDateOnly(t *testing.T) {
	ev := allDayOn("e1", 2024, time.March, 15)

	for _, zoom := range []datewindow.Zoom{datewindow.Month, datewindow.Week, datewindow.Day} {
		w := datewindow.At(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), zoom)
		buckets := Assign(w, []event.Event{ev}, time.UTC)

		hits := 0
		for _, b := range buckets {
			for _, got := range b.Events {
				if got.ID != "e1" {
					continue
				}
				hits++
				if b.Date.Day() != 15 || b.Date.Month() != time.March {
					t.Fatalf("zoom %v: bucketed into %v", zoom, b.Date)
				}
			}
		}
		if hits != 1 {
			t.Fatalf("zoom %v: expected exactly one placement, got %d", zoom, hits)
		}
	}
}

func TestUnsetStartNeverBuckets(t *testing.T) {
	w := datewindow.At(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), datewindow.Month)
	buckets := Assign(w, []event.Event{{ID: "ghost"}}, time.UTC)
	for _, b := range buckets {
		if len(b.Events) != 0 {
			t.Fatalf("event with unset start appeared in bucket %v", b.Date)
		}
	}
}

func TestTimedEventUsesLocalCalendarDate(t *testing.T) {
	// 22:30 Pacific on the 15th is already the 16th in UTC.
	pacific := time.FixedZone("PDT", -7*3600)
	ev := event.Event{ID: "late", Start: event.Timed(time.Date(2024, time.March, 15, 22, 30, 0, 0, pacific))}

	w := datewindow.At(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), datewindow.Month)

	buckets := Assign(w, []event.Event{ev}, pacific)
	if len(buckets[14].Events) != 1 {
		t.Fatalf("expected event on March 15 in its own zone")
	}

	buckets = Assign(w, []event.Event{ev}, time.UTC)
	if len(buckets[15].Events) != 1 {
		t.Fatalf("expected event on March 16 when viewed in UTC")
	}
}

func TestProviderOrderPreservedWithinBucket(t *testing.T) {
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	events := []event.Event{
		{ID: "b", Start: event.Timed(day.Add(14 * time.Hour))},
		{ID: "a", Start: event.Timed(day.Add(9 * time.Hour))},
		{ID: "c", Start: event.Timed(day.Add(11 * time.Hour))},
	}
	w := datewindow.At(day, datewindow.Day)
	buckets := Assign(w, events, time.UTC)
	got := buckets[0].Events
	if len(got) != 3 || got[0].ID != "b" || got[1].ID != "a" || got[2].ID != "c" {
		t.Fatalf("bucket reordered events: %+v", got)
	}
}

func TestVisibleAndOverflowSplit(t *testing.T) {
	b := Bucket{Events: []event.Event{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}}}
	if len(b.Visible(2)) != 2 {
		t.Fatalf("expected 2 visible, got %d", len(b.Visible(2)))
	}
	if b.Overflow(2) != 2 {
		t.Fatalf("expected overflow 2, got %d", b.Overflow(2))
	}

	small := Bucket{Events: []event.Event{{ID: "1"}}}
	if len(small.Visible(2)) != 1 || small.Overflow(2) != 0 {
		t.Fatalf("small bucket must not overflow")
	}
}

func TestAssignOutsideWindowDropped(t *testing.T) {
	w := datewindow.At(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), datewindow.Week)
	ev := allDayOn("far", 2024, time.June, 1)
	buckets := Assign(w, []event.Event{ev}, time.UTC)
	for _, b := range buckets {
		if len(b.Events) != 0 {
			t.Fatalf("out-of-window event leaked into %v", b.Date)
		}
	}
}
