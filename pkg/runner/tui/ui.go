// Package tui is the interactive calendar view: a month/week/day grid
// over the provider's events, a day-detail panel, and an add-event form.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/agenda/pkg/bucket"
	"tableflip.dev/agenda/pkg/datewindow"
	"tableflip.dev/agenda/pkg/done"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/gateway"
)

// phase is the controller state machine from the view's perspective.
type phase int

const (
	phaseLoading phase = iota
	phaseError
	phaseReady
)

// cellEventLimit is how many events a grid cell shows before collapsing
// the remainder into a "+N more" indicator.
const cellEventLimit = 2

// The cached event list covers this span around today so navigation
// never refetches. The provider caps each calendar at its page size;
// anything past that is truncated, not paged.
const (
	fetchMonthsBack  = 3
	fetchMonthsAhead = 12
)

// messages
type mountedMsg struct{}
type eventsLoadedMsg struct {
	gen    int
	events []event.Event
}
type fetchFailedMsg struct {
	gen int
	err error
}
type createdMsg struct{ ev event.Event }
type createFailedMsg struct{ err error }
type overlayChangedMsg struct{}

// Model contains the UI state.
type Model struct {
	gw      gateway.Gateway
	overlay *done.Overlay
	changes <-chan struct{}
	loc     *time.Location
	now     func() time.Time

	phase  phase
	errMsg string

	zoom     datewindow.Zoom
	ref      time.Time
	window   datewindow.Window
	buckets  []bucket.Bucket
	events   []event.Event
	selected int // index into window.Dates

	// gen numbers issued fetches; only the response carrying the latest
	// generation is applied, so a superseded in-flight fetch cannot
	// clobber newer state.
	gen     int
	fetched bool

	day  *dayModal
	form *addForm

	status string
	width  int
	height int
}

// Option tweaks a Model at construction.
type Option func(*Model)

// WithLocation pins the display time zone (default local).
func WithLocation(loc *time.Location) Option {
	return func(m *Model) { m.loc = loc }
}

// WithClock pins the "today" source, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithOverlayWatch feeds external overlay-change notifications into the
// model so toggles from another terminal show up live.
func WithOverlayWatch(ch <-chan struct{}) Option {
	return func(m *Model) { m.changes = ch }
}

// New creates the calendar UI model.
func New(gw gateway.Gateway, overlay *done.Overlay, opts ...Option) Model {
	m := Model{
		gw:      gw,
		overlay: overlay,
		loc:     time.Local,
		now:     time.Now,
		zoom:    datewindow.Month,
		status:  "loading calendar…",
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.ref = datewindow.Normalize(m.now().In(m.loc))
	m.rebuild()
	m.selectDate(m.ref)
	return m
}

// Init announces the mount; the fetch itself is issued by Update so the
// one-shot guard lives in one place.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return mountedMsg{} },
		m.subscribeOverlay(),
	)
}

// startFetch issues a new fetch generation covering the cached span.
func (m *Model) startFetch() tea.Cmd {
	m.gen++
	m.phase = phaseLoading
	gen := m.gen
	gw := m.gw
	today := datewindow.Normalize(m.now().In(m.loc))
	start := today.AddDate(0, -fetchMonthsBack, 0)
	end := today.AddDate(0, fetchMonthsAhead, 0)
	return func() tea.Msg {
		events, err := gw.ListEvents(context.Background(), start, end)
		if err != nil {
			return fetchFailedMsg{gen: gen, err: err}
		}
		return eventsLoadedMsg{gen: gen, events: events}
	}
}

// createEvent submits the draft; the form stays open until createdMsg.
func (m *Model) createEvent(d event.Draft) tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		ev, err := gw.CreateEvent(context.Background(), d)
		if err != nil {
			return createFailedMsg{err: err}
		}
		return createdMsg{ev: ev}
	}
}

func (m Model) subscribeOverlay() tea.Cmd {
	ch := m.changes
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return overlayChangedMsg{}
	}
}

// rebuild recomputes the window and buckets from the cached events.
func (m *Model) rebuild() {
	m.window = datewindow.At(m.ref, m.zoom)
	m.buckets = bucket.Assign(m.window, m.events, m.loc)
	if m.selected >= len(m.window.Dates) {
		m.selected = len(m.window.Dates) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// selectDate points the selection at the window date matching t, if any.
func (m *Model) selectDate(t time.Time) {
	t = datewindow.Normalize(t)
	for i, d := range m.window.Dates {
		if d.Year() == t.Year() && d.Month() == t.Month() && d.Day() == t.Day() {
			m.selected = i
			return
		}
	}
}

// bucketOn finds the current bucket for a calendar date, or an empty
// one when the date has no bucket in the window.
func (m *Model) bucketOn(date time.Time) bucket.Bucket {
	for _, b := range m.buckets {
		if b.Date.Year() == date.Year() && b.Date.Month() == date.Month() && b.Date.Day() == date.Day() {
			return b
		}
	}
	return bucket.Bucket{Date: date}
}

func (m *Model) selectedBucket() bucket.Bucket {
	if m.selected >= 0 && m.selected < len(m.buckets) {
		return m.buckets[m.selected]
	}
	return bucket.Bucket{}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case mountedMsg:
		// Exactly one initial fetch per session; overlay toggles, modal
		// churn, and navigation never re-trigger it.
		if !m.fetched {
			m.fetched = true
			cmds = append(cmds, m.startFetch())
		}

	case eventsLoadedMsg:
		if msg.gen != m.gen {
			break // stale response from a superseded fetch
		}
		m.phase = phaseReady
		m.events = msg.events
		m.rebuild()
		// An open day panel holds a snapshot; swap in the rebuilt bucket
		// so a create made from the panel shows up in it.
		if m.day != nil {
			m.day.rebind(m.bucketOn(m.day.bucket.Date))
		}
		m.status = "ready"

	case fetchFailedMsg:
		if msg.gen != m.gen {
			break
		}
		m.phase = phaseError
		m.errMsg = msg.err.Error()

	case createdMsg:
		m.form = nil
		m.status = "event created"
		cmds = append(cmds, m.startFetch())

	case createFailedMsg:
		if m.form != nil {
			m.form.err = msg.err.Error()
			// The form stays open for correction.
		}

	case overlayChangedMsg:
		if m.overlay != nil {
			m.overlay.Reload()
		}
		cmds = append(cmds, m.subscribeOverlay())

	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg)...)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd
	key := msg.String()

	if key == "ctrl+c" {
		return []tea.Cmd{tea.Quit}
	}

	// The add-event form has input priority while open.
	if m.form != nil {
		switch key {
		case "esc":
			m.form = nil
			m.status = "add cancelled"
		default:
			draft, cmd := m.form.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			if draft != nil {
				m.status = "creating event…"
				cmds = append(cmds, m.createEvent(*draft))
			}
		}
		return cmds
	}

	if m.day != nil {
		switch key {
		case "esc", "q", "enter":
			m.day = nil
		case "j", "down":
			m.day.cursorDown()
		case "k", "up":
			m.day.cursorUp()
		case "x":
			if ev, ok := m.day.current(); ok && m.overlay != nil {
				if m.overlay.Toggle(ev.ID) {
					m.status = "marked done"
				} else {
					m.status = "marked not done"
				}
			}
		case "a":
			// Modals are independent; the day panel stays put behind the
			// form and is still there when the form closes.
			m.form = newAddForm(m.day.bucket.Date)
		}
		return cmds
	}

	switch m.phase {
	case phaseError:
		switch key {
		case "r":
			cmds = append(cmds, m.startFetch())
		case "q":
			cmds = append(cmds, tea.Quit)
		}
		return cmds
	case phaseLoading:
		if key == "q" {
			cmds = append(cmds, tea.Quit)
		}
		return cmds
	}

	switch key {
	case "q":
		cmds = append(cmds, tea.Quit)

	// zoom
	case "m":
		m.setZoom(datewindow.Month)
	case "w":
		m.setZoom(datewindow.Week)
	case "d":
		m.setZoom(datewindow.Day)

	// navigation: synchronous local updates, no refetch
	case "h", "left":
		m.ref = datewindow.Prev(m.ref, m.zoom)
		m.rebuild()
		m.selectDate(m.ref)
	case "l", "right":
		m.ref = datewindow.Next(m.ref, m.zoom)
		m.rebuild()
		m.selectDate(m.ref)
	case "t":
		m.ref = datewindow.Normalize(m.now().In(m.loc))
		m.zoomRebuild()

	// selection within the window
	case "j", "down":
		m.moveSelection(m.selectionStep())
	case "k", "up":
		m.moveSelection(-m.selectionStep())
	case "J":
		m.moveSelection(1)
	case "K":
		m.moveSelection(-1)

	case "enter":
		m.day = newDayModal(m.selectedBucket())
	case "a":
		m.form = newAddForm(m.window.Dates[m.selected])
	case "r":
		cmds = append(cmds, m.startFetch())
	}
	return cmds
}

// selectionStep moves a week at a time on the month grid and a day at a
// time elsewhere.
func (m *Model) selectionStep() int {
	if m.zoom == datewindow.Month {
		return 7
	}
	return 1
}

func (m *Model) moveSelection(delta int) {
	next := m.selected + delta
	if next < 0 || next >= len(m.window.Dates) {
		return
	}
	m.selected = next
}

func (m *Model) setZoom(z datewindow.Zoom) {
	if m.zoom == z {
		return
	}
	// Keep the eye on the selected date across zoom changes.
	if m.selected >= 0 && m.selected < len(m.window.Dates) {
		m.ref = m.window.Dates[m.selected]
	}
	m.zoom = z
	m.zoomRebuild()
}

func (m *Model) zoomRebuild() {
	m.rebuild()
	m.selectDate(m.ref)
}

// Run starts the program.
func Run(gw gateway.Gateway, overlay *done.Overlay, opts ...Option) error {
	p := tea.NewProgram(New(gw, overlay, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
