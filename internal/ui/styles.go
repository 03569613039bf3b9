// Package ui provides Charm-based UI components for digiprefs
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Active colors, set by ApplyPalette.
var (
	Primary    lipgloss.TerminalColor
	Secondary  lipgloss.TerminalColor
	Accent     lipgloss.TerminalColor
	Info       lipgloss.TerminalColor
	Success    lipgloss.TerminalColor
	Warning    lipgloss.TerminalColor
	Error      lipgloss.TerminalColor
	Muted      lipgloss.TerminalColor
	Background lipgloss.TerminalColor
	Foreground lipgloss.TerminalColor
	Border     lipgloss.TerminalColor
	Highlight  lipgloss.TerminalColor
)

var (
	Bold = lipgloss.NewStyle().Bold(true)

	HeaderStyle  lipgloss.Style
	Tagline      lipgloss.Style
	HintStyle    lipgloss.Style
	MutedStyle   lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	KeyStyle     lipgloss.Style
	ValueStyle   lipgloss.Style

	InfoBox    lipgloss.Style
	SuccessBox lipgloss.Style
	ErrorBox   lipgloss.Style
)

func init() {
	ApplyPalette(DefaultPalette())
}

func buildStyles() {
	HeaderStyle = lipgloss.NewStyle().
		Foreground(Background).
		Background(Primary).
		Padding(0, 1).
		Bold(true)

	Tagline = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	HintStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	WarningStyle = lipgloss.NewStyle().
		Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	KeyStyle = lipgloss.NewStyle().
		Foreground(Accent)

	ValueStyle = lipgloss.NewStyle().
		Foreground(Foreground).
		Bold(true)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	InfoBox = box.BorderForeground(Info)
	SuccessBox = box.BorderForeground(Success)
	ErrorBox = box.BorderForeground(Error)
}

// Header renders a screen title bar.
func Header(title string) string {
	return HeaderStyle.Render(strings.ToUpper(title))
}

// Banner returns the digiprefs banner
func Banner() string {
	banner := `
     │    ·
     │  ·   ·     ·
     │·       · ·   ·
     └──────────────────
      d i g i p r e f s`
	return lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Render(banner)
}

// KeyValue renders one "key=value" dump line. Lines without '=' are returned muted.
func KeyValue(line string) string {
	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	key, value, ok := strings.Cut(strings.TrimLeft(line, " \t"), "=")
	if !ok {
		return indent + MutedStyle.Render(key)
	}
	return indent + KeyStyle.Render(key) + MutedStyle.Render(" = ") + ValueStyle.Render(value)
}
