package tui

import (
	"tableflip.dev/agenda/pkg/bucket"
	"tableflip.dev/agenda/pkg/event"
)

// dayModal shows every event of one bucket, including the overflow the
// grid cell collapsed, with a cursor for toggling completion.
type dayModal struct {
	bucket bucket.Bucket
	cursor int
}

func newDayModal(b bucket.Bucket) *dayModal {
	return &dayModal{bucket: b}
}

func (d *dayModal) cursorDown() {
	if d.cursor < len(d.bucket.Events)-1 {
		d.cursor++
	}
}

func (d *dayModal) cursorUp() {
	if d.cursor > 0 {
		d.cursor--
	}
}

// rebind swaps in a refreshed bucket, keeping the cursor in range.
func (d *dayModal) rebind(b bucket.Bucket) {
	d.bucket = b
	if d.cursor >= len(b.Events) {
		d.cursor = len(b.Events) - 1
	}
	if d.cursor < 0 {
		d.cursor = 0
	}
}

func (d *dayModal) current() (event.Event, bool) {
	if d.cursor < 0 || d.cursor >= len(d.bucket.Events) {
		return event.Event{}, false
	}
	return d.bucket.Events[d.cursor], true
}
