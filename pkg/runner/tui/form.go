package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/agenda/pkg/event"
)

// formRow enumerates the form's focusable rows, top to bottom. The
// all-day row is a toggle; every other row wraps a text input.
type formRow int

const (
	rowTitle formRow = iota
	rowDescription
	rowLocation
	rowAllDay
	rowStartDate
	rowStartTime
	rowEndDate
	rowEndTime
	rowGuests
	rowRecurrence
	rowColor
	rowCount
)

var rowLabels = map[formRow]string{
	rowTitle:       "Title",
	rowDescription: "Description",
	rowLocation:    "Location",
	rowAllDay:      "All day",
	rowStartDate:   "Start date",
	rowStartTime:   "Start time",
	rowEndDate:     "End date",
	rowEndTime:     "End time",
	rowGuests:      "Guests",
	rowRecurrence:  "Repeat",
	rowColor:       "Color",
}

// addForm collects a Draft. It validates on submit and keeps itself
// open, error inline, until the caller reports a successful create.
type addForm struct {
	inputs map[formRow]textinput.Model
	allDay bool
	focus  formRow
	err    string
}

// newAddForm builds the form prefilled with the selected date.
func newAddForm(date time.Time) *addForm {
	f := &addForm{
		inputs: make(map[formRow]textinput.Model),
		focus:  rowTitle,
	}

	placeholders := map[formRow]string{
		rowTitle:       "What is it?",
		rowDescription: "Details (optional)",
		rowLocation:    "Where (optional)",
		rowStartDate:   "YYYY-MM-DD",
		rowStartTime:   "HH:MM",
		rowEndDate:     "YYYY-MM-DD (optional)",
		rowEndTime:     "HH:MM (optional)",
		rowGuests:      "comma-separated emails (optional)",
		rowRecurrence:  "RRULE:FREQ=WEEKLY (optional)",
		rowColor:       "1-11 (optional)",
	}

	for row := rowTitle; row < rowCount; row++ {
		if row == rowAllDay {
			continue
		}
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholders[row]
		in.SetWidth(40)
		f.inputs[row] = in
	}

	if !date.IsZero() {
		in := f.inputs[rowStartDate]
		in.SetValue(date.Format("2006-01-02"))
		f.inputs[rowStartDate] = in
	}

	f.syncFocus()
	return f
}

// Update routes a key to the form. A non-nil draft means the user
// submitted and the input validated locally; the caller owns the create.
func (f *addForm) Update(msg tea.KeyPressMsg) (*event.Draft, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.String() {
	case "tab", "down":
		f.move(1)
	case "shift+tab", "up":
		f.move(-1)
	case "enter":
		d := f.draft()
		if err := d.Validate(); err != nil {
			f.err = err.Error()
			return nil, nil
		}
		f.err = ""
		return &d, nil
	case " ":
		if f.focus == rowAllDay {
			f.toggleAllDay()
			break
		}
		cmds = append(cmds, f.updateInput(msg))
	default:
		if f.focus == rowAllDay {
			break
		}
		cmds = append(cmds, f.updateInput(msg))
	}

	f.syncFocus()
	return nil, tea.Batch(cmds...)
}

func (f *addForm) updateInput(msg tea.KeyPressMsg) tea.Cmd {
	in, ok := f.inputs[f.focus]
	if !ok {
		return nil
	}
	in, cmd := in.Update(msg)
	f.inputs[f.focus] = in
	return cmd
}

func (f *addForm) toggleAllDay() {
	f.allDay = !f.allDay
}

// move advances focus, skipping the time rows while all-day is on.
func (f *addForm) move(delta int) {
	row := f.focus
	for i := 0; i < int(rowCount); i++ {
		row = formRow((int(row) + delta + int(rowCount)) % int(rowCount))
		if f.allDay && (row == rowStartTime || row == rowEndTime) {
			continue
		}
		break
	}
	f.focus = row
}

func (f *addForm) syncFocus() {
	for row, in := range f.inputs {
		if row == f.focus {
			in.Focus()
		} else {
			in.Blur()
		}
		f.inputs[row] = in
	}
}

func (f *addForm) value(row formRow) string {
	return strings.TrimSpace(f.inputs[row].Value())
}

func (f *addForm) draft() event.Draft {
	d := event.Draft{
		Title:       f.value(rowTitle),
		Description: f.value(rowDescription),
		Location:    f.value(rowLocation),
		AllDay:      f.allDay,
		StartDate:   f.value(rowStartDate),
		EndDate:     f.value(rowEndDate),
		Guests:      f.value(rowGuests),
		Recurrence:  f.value(rowRecurrence),
		ColorID:     f.value(rowColor),
	}
	if !f.allDay {
		d.StartTime = f.value(rowStartTime)
		d.EndTime = f.value(rowEndTime)
	}
	return d
}
