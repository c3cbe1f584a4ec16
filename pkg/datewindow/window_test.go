package datewindow

import (
	"testing"
	"time"
)

func TestWeekWindowShape(t *testing.T) {
	refs := []time.Time{
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),   // Friday
		time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),   // Sunday
		time.Date(2024, time.March, 9, 23, 59, 0, 0, time.UTC), // Saturday, late
		time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	for _, ref := range refs {
		w := At(ref, Week)
		if len(w.Dates) != 7 {
			t.Fatalf("ref %v: expected 7 dates, got %d", ref, len(w.Dates))
		}
		if w.Dates[0].Weekday() != time.Sunday {
			t.Fatalf("ref %v: window must start on Sunday, got %v", ref, w.Dates[0].Weekday())
		}
		for i := 1; i < 7; i++ {
			if !w.Dates[i].After(w.Dates[i-1]) {
				t.Fatalf("ref %v: dates not strictly ascending at %d", ref, i)
			}
			if w.Dates[i].Sub(w.Dates[i-1]) != 24*time.Hour {
				t.Fatalf("ref %v: gap between consecutive dates at %d", ref, i)
			}
		}
		if !w.Contains(ref) {
			t.Fatalf("ref %v: window must contain the reference date", ref)
		}
	}
}

func TestWeekWindowSundayIsStart(t *testing.T) {
	sunday := time.Date(2024, time.March, 3, 15, 4, 5, 0, time.UTC)
	w := At(sunday, Week)
	if !w.Dates[0].Equal(Normalize(sunday)) {
		t.Fatalf("a Sunday reference must begin its own week, got %v", w.Dates[0])
	}
}

func TestMonthWindowMarch2024(t *testing.T) {
	// 2024-03-01 is a Friday, weekday index 5.
	w := At(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), Month)
	if w.Padding != 5 {
		t.Fatalf("expected 5 padding slots, got %d", w.Padding)
	}
	if len(w.Dates) != 31 {
		t.Fatalf("expected 31 dates, got %d", len(w.Dates))
	}
	for i, d := range w.Dates {
		if d.Day() != i+1 || d.Month() != time.March || d.Year() != 2024 {
			t.Fatalf("date %d out of order: %v", i, d)
		}
	}
}

func TestMonthPaddingMatchesFirstWeekday(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		ref := time.Date(2024, month, 17, 12, 0, 0, 0, time.UTC)
		w := At(ref, Month)
		first := time.Date(2024, month, 1, 0, 0, 0, 0, time.UTC)
		if w.Padding != int(first.Weekday()) {
			t.Fatalf("%v: padding %d != weekday %d", month, w.Padding, int(first.Weekday()))
		}
		if len(w.Dates) != DaysIn(first) {
			t.Fatalf("%v: got %d dates, want %d", month, len(w.Dates), DaysIn(first))
		}
	}
}

func TestDayWindow(t *testing.T) {
	ref := time.Date(2024, time.June, 5, 9, 30, 0, 0, time.UTC)
	w := At(ref, Day)
	if len(w.Dates) != 1 {
		t.Fatalf("expected single date, got %d", len(w.Dates))
	}
	if !w.Dates[0].Equal(Normalize(ref)) {
		t.Fatalf("expected normalized reference date, got %v", w.Dates[0])
	}
}

func TestContainsComparesCalendarDates(t *testing.T) {
	w := At(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), Month)

	// Same calendar day in another location still counts as a member.
	west := time.FixedZone("UTC-8", -8*60*60)
	if !w.Contains(time.Date(2024, time.June, 15, 22, 30, 0, 0, west)) {
		t.Fatal("expected June 15 in UTC-8 to be in the June window")
	}

	// The day after the window, even when its instant falls inside the
	// window's UTC range, is not a member.
	east := time.FixedZone("UTC+10", 10*60*60)
	if w.Contains(time.Date(2024, time.July, 1, 2, 0, 0, 0, east)) {
		t.Fatal("expected July 1 in UTC+10 to be outside the June window")
	}
}

func TestBoundsHalfOpen(t *testing.T) {
	w := At(time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC), Week)
	start, end := w.Bounds()
	if !start.Equal(w.Dates[0]) {
		t.Fatalf("start must be the first date, got %v", start)
	}
	if !end.Equal(w.Dates[6].AddDate(0, 0, 1)) {
		t.Fatalf("end must be midnight after the last date, got %v", end)
	}
}

func TestPrevNextRoundTrip(t *testing.T) {
	for _, zoom := range []Zoom{Week, Day} {
		d := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 60; i++ {
			if got := Prev(Next(d, zoom), zoom); !got.Equal(d) {
				t.Fatalf("zoom %v: prev(next(%v)) = %v", zoom, d, got)
			}
			d = Next(d, zoom)
		}
	}
}

func TestMonthNavigationClampsToDayOne(t *testing.T) {
	// Jan 31 forward lands on Feb 1, not an overflowed March date.
	d := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	next := Next(d, Month)
	if next.Month() != time.February || next.Day() != 1 {
		t.Fatalf("expected 2024-02-01, got %v", next)
	}
	if got := Prev(next, Month); got.Month() != time.January || got.Day() != 1 {
		t.Fatalf("expected 2024-01-01, got %v", got)
	}
	// Once on day 1, prev/next round-trips exactly.
	d = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	if got := Prev(Next(d, Month), Month); !got.Equal(d) {
		t.Fatalf("prev(next(%v)) = %v", d, got)
	}
}

func TestParseZoom(t *testing.T) {
	cases := map[string]Zoom{"month": Month, "monthly": Month, "w": Week, "daily": Day}
	for in, want := range cases {
		got, ok := ParseZoom(in)
		if !ok || got != want {
			t.Fatalf("ParseZoom(%q) = %v, %v", in, got, ok)
		}
	}
	if _, ok := ParseZoom("fortnight"); ok {
		t.Fatal("expected ParseZoom to reject unknown zoom")
	}
}
