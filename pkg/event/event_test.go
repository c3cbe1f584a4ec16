package event

import (
	"testing"
	"time"

	"google.golang.org/api/calendar/v3"
)

func TestMomentFromProviderAllDay(t *testing.T) {
	m := momentFromProvider(&calendar.EventDateTime{Date: "2024-03-15"})
	if m.Kind() != KindAllDay {
		t.Fatalf("expected all-day kind, got %v", m.Kind())
	}
	y, mo, d, ok := m.Day(time.FixedZone("far", -11*3600))
	if !ok {
		t.Fatal("expected resolvable day")
	}
	// The zone must not shift a date-only value.
	if y != 2024 || mo != time.March || d != 15 {
		t.Fatalf("expected 2024-03-15, got %d-%d-%d", y, mo, d)
	}
}

func TestMomentFromProviderTimed(t *testing.T) {
	m := momentFromProvider(&calendar.EventDateTime{DateTime: "2024-03-15T22:30:00-07:00"})
	if m.Kind() != KindTimed {
		t.Fatalf("expected timed kind, got %v", m.Kind())
	}
	y, mo, d, ok := m.Day(time.UTC)
	if !ok || y != 2024 || mo != time.March || d != 16 {
		t.Fatalf("expected conversion to 2024-03-16 UTC, got %d-%d-%d ok=%v", y, mo, d, ok)
	}
}

func TestMomentFromProviderEmpty(t *testing.T) {
	for _, edt := range []*calendar.EventDateTime{nil, {}} {
		m := momentFromProvider(edt)
		if m.Kind() != KindUnset {
			t.Fatalf("expected unset kind for %+v", edt)
		}
		if _, _, _, ok := m.Day(time.UTC); ok {
			t.Fatal("unset moment must not resolve to a day")
		}
	}
}

func TestMomentFromProviderBadValues(t *testing.T) {
	if m := momentFromProvider(&calendar.EventDateTime{DateTime: "not a time"}); m.Kind() != KindUnset {
		t.Fatalf("bad dateTime should be unset, got %v", m.Kind())
	}
	if m := momentFromProvider(&calendar.EventDateTime{Date: "03/15/2024"}); m.Kind() != KindUnset {
		t.Fatalf("bad date should be unset, got %v", m.Kind())
	}
}

func TestFromProviderCopiesFields(t *testing.T) {
	ev := FromProvider(&calendar.Event{
		Id:      "abc123",
		Summary: "Dentist",
		ColorId: "5",
		Start:   &calendar.EventDateTime{Date: "2024-03-15"},
		End:     &calendar.EventDateTime{Date: "2024-03-15"},
	})
	if ev.ID != "abc123" || ev.Title != "Dentist" || ev.ColorID != "5" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.Start.Kind() != KindAllDay || ev.End.Kind() != KindAllDay {
		t.Fatalf("expected all-day boundaries")
	}
}
