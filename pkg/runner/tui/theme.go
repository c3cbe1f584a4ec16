package tui

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// palette maps the provider's event color ids to their hex values.
var palette = map[string]string{
	"1":  "#7986cb", // lavender
	"2":  "#33b679", // sage
	"3":  "#8e24aa", // grape
	"4":  "#e67c73", // flamingo
	"5":  "#f6bf26", // banana
	"6":  "#f4511e", // tangerine
	"7":  "#039be5", // peacock
	"8":  "#616161", // graphite
	"9":  "#3f51b5", // blueberry
	"10": "#0b8043", // basil
	"11": "#d50000", // tomato
}

const defaultEventHex = "#039be5"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	todayStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	fadedStyle    = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2)
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

// eventHex resolves a color id to a hex value, falling back to the
// provider's default event blue.
func eventHex(colorID string) string {
	if hex, ok := palette[colorID]; ok {
		return hex
	}
	return defaultEventHex
}

// eventStyle colors an event label by its color id. Completed events
// get a washed-out blend toward gray instead of the full color.
func eventStyle(colorID string, completed bool) lipgloss.Style {
	hex := eventHex(colorID)
	if completed {
		if c, err := colorful.Hex(hex); err == nil {
			gray, _ := colorful.Hex("#808080")
			hex = c.BlendLab(gray, 0.6).Hex()
		}
		return fadedStyle.Foreground(lipgloss.Color(hex))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
