package done

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiskvStoreRoundTrip(t *testing.T) {
	s := NewDiskvStore(t.TempDir())

	flags, err := s.Load()
	if err != nil {
		t.Fatalf("load of empty store failed: %v", err)
	}
	if len(flags) != 0 {
		t.Fatalf("expected empty mapping, got %v", flags)
	}

	want := map[string]bool{"evt-1": true, "evt-2": false}
	if err := s.Save(want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(got) != 2 || !got["evt-1"] || got["evt-2"] {
		t.Fatalf("mapping did not round-trip: %v", got)
	}
}

func TestDiskvStoreMalformedContentReported(t *testing.T) {
	dir := t.TempDir()
	s := NewDiskvStore(dir)
	if err := os.WriteFile(filepath.Join(dir, overlayKey), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(); err == nil {
		t.Fatal("expected load error for malformed content")
	}
	// The overlay built on top degrades to empty instead of failing.
	o := NewOverlay(s)
	if o.Len() != 0 {
		t.Fatalf("expected degraded empty overlay, got %d entries", o.Len())
	}
}
