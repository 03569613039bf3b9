package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// StartScreen clears an interactive terminal and prints a titled header to w.
func StartScreen(w io.Writer, title string, subtitle string) {
	if IsInteractiveTerminal() {
		fmt.Fprint(w, "\033[2J\033[H")
	}
	fmt.Fprintln(w, Header(title))
	if subtitle != "" {
		fmt.Fprintln(w, Tagline.Render(subtitle))
	}
	if !CurrentPreferences.Dense {
		fmt.Fprintln(w)
	}
}

// IsInteractiveTerminal reports whether stdout is a terminal a user can answer
// prompts on. CI runners never count.
func IsInteractiveTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return false
	}
	if os.Getenv("TERM") == "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
