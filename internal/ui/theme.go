package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// FormTheme returns the huh theme for the settings editor, built from the
// active palette. Call it after ApplyPreferences so colors follow the theme.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	f := &t.Focused
	f.Base = f.Base.BorderForeground(Border)
	f.Title = f.Title.Foreground(Highlight).Bold(true)
	f.NoteTitle = f.NoteTitle.Foreground(Primary).Bold(true)
	f.Description = f.Description.Foreground(Muted)
	f.ErrorIndicator = f.ErrorIndicator.Foreground(Error)
	f.ErrorMessage = f.ErrorMessage.Foreground(Error)
	f.SelectSelector = f.SelectSelector.Foreground(Accent)
	f.NextIndicator = f.NextIndicator.Foreground(Accent)
	f.PrevIndicator = f.PrevIndicator.Foreground(Accent)
	f.Option = f.Option.Foreground(Foreground)
	f.SelectedOption = f.SelectedOption.Foreground(Accent)
	f.UnselectedOption = f.UnselectedOption.Foreground(Foreground)
	f.FocusedButton = f.FocusedButton.Foreground(Background).Background(Primary).Bold(true)
	f.BlurredButton = f.BlurredButton.Foreground(Muted)
	f.TextInput.Cursor = f.TextInput.Cursor.Foreground(Info)
	f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(Muted)
	f.TextInput.Prompt = f.TextInput.Prompt.Foreground(Accent)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(Muted).Bold(false)
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	return t
}
