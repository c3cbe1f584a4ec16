// Package printers renders agenda output for the non-TUI commands.
package printers

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	isatty "github.com/mattn/go-isatty"

	"tableflip.dev/agenda/pkg/bucket"
	"tableflip.dev/agenda/pkg/datewindow"
	"tableflip.dev/agenda/pkg/done"
)

const layoutUS = "January 2, 2006"

// PrettyAgenda prints buckets to stdout, marking completed events from
// the overlay.
type PrettyAgenda struct {
	ShowID  bool
	Loc     *time.Location
	Overlay *done.Overlay
}

// New builds a printer, disabling color when stdout is not a terminal.
func New(loc *time.Location, overlay *done.Overlay) *PrettyAgenda {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	return &PrettyAgenda{Loc: loc, Overlay: overlay}
}

// Title prints a bold underlined heading.
func (pp *PrettyAgenda) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Line prints one plain formatted line.
func (pp *PrettyAgenda) Line(format string, args ...interface{}) {
	t := color.New()
	_, _ = t.Printf(format+"\n", args...)
}

// Day prints every event in the bucket, one per line.
func (pp *PrettyAgenda) Day(b bucket.Bucket) {
	pp.Title(b.Date.Format(layoutUS))

	if len(b.Events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	g := color.New(color.FgGreen)

	for _, e := range b.Events {
		if pp.ShowID {
			_, _ = y.Printf("%-28s ", e.ID)
		}
		mark := "·"
		if pp.Overlay != nil && pp.Overlay.IsDone(e.ID) {
			mark = g.Sprint("✓")
		}
		when := e.Start.Clock(pp.Loc)
		if when == "" {
			when = "all day"
		}
		title := e.Title
		if title == "" {
			title = "(untitled)"
		}
		_, _ = t.Printf("%s %-8s %s\n", mark, when, title)
	}
	_, _ = t.Println("")
}

// Grid prints one row per window date, with the day's events summarized.
// Month-zoom padding cells are positional only and are not printed.
func (pp *PrettyAgenda) Grid(w datewindow.Window, buckets []bucket.Bucket) {
	pp.Title(gridTitle(w))

	table := uitable.New()
	table.MaxColWidth = 72
	table.Wrap = true
	table.AddRow("DATE", "", "EVENTS")

	for _, b := range buckets {
		table.AddRow(b.Date.Format("Mon Jan 02"), len(b.Events), pp.summarize(b))
	}
	fmt.Println(table)
	fmt.Println("")
}

func (pp *PrettyAgenda) summarize(b bucket.Bucket) string {
	if len(b.Events) == 0 {
		return ""
	}
	out := ""
	for i, e := range b.Events {
		if i > 0 {
			out += ", "
		}
		title := e.Title
		if title == "" {
			title = "(untitled)"
		}
		if pp.Overlay != nil && pp.Overlay.IsDone(e.ID) {
			title = "✓ " + title
		}
		out += title
	}
	return out
}

func gridTitle(w datewindow.Window) string {
	switch w.Zoom {
	case datewindow.Week:
		start, _ := w.Bounds()
		return "Week of " + start.Format(layoutUS)
	case datewindow.Day:
		return w.Ref.Format(layoutUS)
	default:
		return w.Ref.Format("January 2006")
	}
}
