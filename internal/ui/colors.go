package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines the TUI color palette.
type Palette struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	Disabled   bool
}

const defaultThemeName = "aurora"

// ThemeNames returns supported palette names.
func ThemeNames() []string {
	return []string{"aurora", "ember", "mono", "graph"}
}

// PaletteByName returns a palette by theme name.
func PaletteByName(name string) Palette {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ember":
		return Palette{
			Name:       "ember",
			Primary:    lipgloss.Color("#F97316"),
			Secondary:  lipgloss.Color("#F43F5E"),
			Accent:     lipgloss.Color("#FACC15"),
			Info:       lipgloss.Color("#38BDF8"),
			Success:    lipgloss.Color("#22C55E"),
			Warning:    lipgloss.Color("#F59E0B"),
			Error:      lipgloss.Color("#EF4444"),
			Muted:      lipgloss.Color("#94A3B8"),
			Background: lipgloss.Color("#0F172A"),
			Foreground: lipgloss.Color("#E2E8F0"),
			Border:     lipgloss.Color("#475569"),
			Highlight:  lipgloss.Color("#FDBA74"),
		}
	case "mono":
		return Palette{
			Name:       "mono",
			Primary:    lipgloss.Color("#E2E8F0"),
			Secondary:  lipgloss.Color("#CBD5F5"),
			Accent:     lipgloss.Color("#94A3B8"),
			Info:       lipgloss.Color("#E2E8F0"),
			Success:    lipgloss.Color("#E2E8F0"),
			Warning:    lipgloss.Color("#94A3B8"),
			Error:      lipgloss.Color("#CBD5F5"),
			Muted:      lipgloss.Color("#94A3B8"),
			Background: lipgloss.Color("#0B1220"),
			Foreground: lipgloss.Color("#E2E8F0"),
			Border:     lipgloss.Color("#64748B"),
			Highlight:  lipgloss.Color("#F8FAFC"),
		}
	case "graph":
		// Plot-paper greens and a red trace.
		return Palette{
			Name:       "graph",
			Primary:    lipgloss.Color("#4ADE80"),
			Secondary:  lipgloss.Color("#F87171"),
			Accent:     lipgloss.Color("#A3E635"),
			Info:       lipgloss.Color("#7DD3FC"),
			Success:    lipgloss.Color("#86EFAC"),
			Warning:    lipgloss.Color("#FDE047"),
			Error:      lipgloss.Color("#EF4444"),
			Muted:      lipgloss.Color("#8FA89A"),
			Background: lipgloss.Color("#0A1410"),
			Foreground: lipgloss.Color("#ECFDF5"),
			Border:     lipgloss.Color("#2F5D46"),
			Highlight:  lipgloss.Color("#BBF7D0"),
		}
	default:
		return Palette{
			Name:       "aurora",
			Primary:    lipgloss.Color("#22D3EE"),
			Secondary:  lipgloss.Color("#A78BFA"),
			Accent:     lipgloss.Color("#38BDF8"),
			Info:       lipgloss.Color("#60A5FA"),
			Success:    lipgloss.Color("#34D399"),
			Warning:    lipgloss.Color("#FBBF24"),
			Error:      lipgloss.Color("#F87171"),
			Muted:      lipgloss.Color("#94A3B8"),
			Background: lipgloss.Color("#0B1120"),
			Foreground: lipgloss.Color("#E2E8F0"),
			Border:     lipgloss.Color("#334155"),
			Highlight:  lipgloss.Color("#7DD3FC"),
		}
	}
}

// DefaultPalette returns the default theme palette.
func DefaultPalette() Palette {
	return PaletteByName(defaultThemeName)
}

// ApplyPalette makes p the active palette and rebuilds every style from it.
func ApplyPalette(p Palette) {
	pick := func(c lipgloss.Color) lipgloss.TerminalColor {
		if p.Disabled {
			return lipgloss.NoColor{}
		}
		return c
	}

	Primary = pick(p.Primary)
	Secondary = pick(p.Secondary)
	Accent = pick(p.Accent)
	Info = pick(p.Info)
	Success = pick(p.Success)
	Warning = pick(p.Warning)
	Error = pick(p.Error)
	Muted = pick(p.Muted)
	Background = pick(p.Background)
	Foreground = pick(p.Foreground)
	Border = pick(p.Border)
	Highlight = pick(p.Highlight)

	buildStyles()
}
