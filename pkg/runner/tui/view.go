package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/agenda/pkg/bucket"
	"tableflip.dev/agenda/pkg/datewindow"
	"tableflip.dev/agenda/pkg/event"
)

var weekdayHeads = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// View renders the calendar plus any open panels.
func (m Model) View() string {
	var body string

	switch m.phase {
	case phaseLoading:
		body = "Loading calendar…"
	case phaseError:
		body = errorStyle.Render("Error: "+m.errMsg) + "\n\npress r to retry, q to quit"
	default:
		body = m.viewReady()
	}

	if m.day != nil {
		body += "\n\n" + panelStyle.Render(m.viewDayModal())
	}
	if m.form != nil {
		body += "\n\n" + panelStyle.Render(m.viewForm())
	}

	status := statusStyle.Render(fmt.Sprintf("[%s] %s (m/w/d zoom · h/l move · t today · enter day · a add · q quit)",
		strings.ToUpper(m.zoom.String()), m.status))
	return body + "\n\n" + status
}

func (m Model) viewReady() string {
	out := titleStyle.Render(windowTitle(m.window)) + "\n\n"
	switch m.zoom {
	case datewindow.Day:
		out += m.viewDayList(m.selectedBucket(), -1)
	case datewindow.Week:
		out += m.viewColumns()
	default:
		out += m.viewMonthGrid()
	}
	return out
}

func windowTitle(w datewindow.Window) string {
	switch w.Zoom {
	case datewindow.Week:
		start, _ := w.Bounds()
		return "Week of " + start.Format("January 2, 2006")
	case datewindow.Day:
		return w.Ref.Format("Monday, January 2, 2006")
	default:
		return w.Ref.Format("January 2006")
	}
}

func (m Model) cellWidth() int {
	w := m.width
	if w <= 0 {
		w = 112
	}
	cw := w/7 - 1
	if cw < 10 {
		cw = 10
	}
	return cw
}

// viewMonthGrid lays the month out in Sunday-started rows of seven,
// with leading blanks for the padding cells.
func (m Model) viewMonthGrid() string {
	cw := m.cellWidth()

	var head []string
	for _, d := range weekdayHeads {
		head = append(head, headerStyle.Render(pad(d, cw)))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, head...)}

	cells := make([]string, 0, m.window.Padding+len(m.window.Dates))
	for i := 0; i < m.window.Padding; i++ {
		cells = append(cells, strings.Repeat("\n", cellEventLimit+1))
	}
	for i := range m.window.Dates {
		cells = append(cells, m.viewCell(i, cw))
	}
	for row := 0; row < len(cells); row += 7 {
		end := row + 7
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[row:end]...))
	}
	return strings.Join(rows, "\n")
}

// viewColumns renders the week zoom: one column per date, every event
// listed.
func (m Model) viewColumns() string {
	cw := m.cellWidth()
	cols := make([]string, 0, len(m.window.Dates))
	for i, d := range m.window.Dates {
		b := bucket.Bucket{Date: d}
		if i < len(m.buckets) {
			b = m.buckets[i]
		}
		head := d.Format("Mon 02")
		head = m.styleDayLabel(head, i, d)

		col := []string{pad(head, cw)}
		for _, e := range b.Events {
			col = append(col, m.eventLine(e, cw))
		}
		cols = append(cols, strings.Join(col, "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// viewCell renders one month cell: the day number and a short event
// list with a "+N more" tail past the cell limit.
func (m Model) viewCell(i, cw int) string {
	d := m.window.Dates[i]
	b := bucket.Bucket{Date: d}
	if i < len(m.buckets) {
		b = m.buckets[i]
	}

	label := fmt.Sprintf("%2d", d.Day())
	label = m.styleDayLabel(label, i, d)

	lines := []string{pad(label, cw)}
	for _, e := range b.Visible(cellEventLimit) {
		lines = append(lines, m.eventLine(e, cw))
	}
	if over := b.Overflow(cellEventLimit); over > 0 {
		lines = append(lines, headerStyle.Render(pad(fmt.Sprintf("+%d more", over), cw)))
	}
	for len(lines) < cellEventLimit+2 {
		lines = append(lines, pad("", cw))
	}
	return strings.Join(lines, "\n")
}

func (m Model) styleDayLabel(label string, i int, d time.Time) string {
	switch {
	case i == m.selected:
		return selectedStyle.Render(label)
	case m.isToday(d):
		return todayStyle.Render(label)
	default:
		return label
	}
}

func (m Model) isToday(d time.Time) bool {
	now := m.now().In(m.loc)
	return d.Year() == now.Year() && d.Month() == now.Month() && d.Day() == now.Day()
}

func (m Model) eventLine(e event.Event, cw int) string {
	done := m.overlay != nil && m.overlay.IsDone(e.ID)
	label := e.Title
	if label == "" {
		label = "(untitled)"
	}
	if clock := e.Start.Clock(m.loc); clock != "" {
		label = clock + " " + label
	}
	label = truncate.StringWithTail(label, uint(cw-1), "…")
	return eventStyle(e.ColorID, done).Render(pad(label, cw))
}

// viewDayModal is the bordered day panel with a toggle cursor.
func (m Model) viewDayModal() string {
	b := m.day.bucket
	lines := []string{titleStyle.Render(b.Date.Format("Monday, January 2, 2006"))}
	if len(b.Events) == 0 {
		lines = append(lines, "no events")
	}
	for i, e := range b.Events {
		indicator := "  "
		if i == m.day.cursor {
			indicator = focusStyle.Render("→ ")
		}
		lines = append(lines, indicator+m.dayLine(e))
	}
	lines = append(lines, "", statusStyle.Render("j/k move · x toggle done · a add · esc close"))
	return strings.Join(lines, "\n")
}

// viewDayList is the full-screen day zoom body.
func (m Model) viewDayList(b bucket.Bucket, cursor int) string {
	if len(b.Events) == 0 {
		return "no events"
	}
	lines := make([]string, 0, len(b.Events))
	for i, e := range b.Events {
		indicator := "  "
		if i == cursor {
			indicator = focusStyle.Render("→ ")
		}
		lines = append(lines, indicator+m.dayLine(e))
	}
	return strings.Join(lines, "\n")
}

func (m Model) dayLine(e event.Event) string {
	done := m.overlay != nil && m.overlay.IsDone(e.ID)
	mark := "·"
	if done {
		mark = "✓"
	}
	when := e.Start.Clock(m.loc)
	if when == "" {
		when = "all day"
	}
	title := e.Title
	if title == "" {
		title = "(untitled)"
	}
	line := fmt.Sprintf("%s %-8s %s", mark, when, eventStyle(e.ColorID, done).Render(title))
	if e.Location != "" {
		line += headerStyle.Render("  @ " + e.Location)
	}
	return line
}

// viewForm renders the add-event panel.
func (m Model) viewForm() string {
	f := m.form
	lines := []string{titleStyle.Render("Add Event"), ""}

	for row := rowTitle; row < rowCount; row++ {
		if f.allDay && (row == rowStartTime || row == rowEndTime) {
			continue
		}
		indicator := "  "
		label := fmt.Sprintf("%-12s", rowLabels[row])
		if row == f.focus {
			indicator = focusStyle.Render("➤ ")
			label = focusStyle.Render(label)
		}
		var value string
		if row == rowAllDay {
			value = "[ ]"
			if f.allDay {
				value = "[x]"
			}
		} else {
			value = f.inputs[row].View()
		}
		lines = append(lines, indicator+label+" "+value)
	}

	lines = append(lines, "")
	if f.err != "" {
		lines = append(lines, errorStyle.Render(f.err))
	} else {
		lines = append(lines, statusStyle.Render("Enter to create · Tab between fields · Space toggles all day · Esc to cancel"))
	}
	return strings.Join(lines, "\n")
}

func pad(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
