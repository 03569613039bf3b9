package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iiroan/digiprefs/internal/mainwindow"
	"github.com/iiroan/digiprefs/internal/ui"
)

var (
	showPlain  bool
	showIndent string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current main window preferences",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Print the raw dump without styling")
	showCmd.Flags().StringVar(&showIndent, "indent", "", "Indentation prefix for every line")
}

func runShow(cmd *cobra.Command, args []string) error {
	m, err := loadPreferences()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showPlain || !ui.IsInteractiveTerminal() {
		m.Describe(showIndent, out)
		return nil
	}

	dump := strings.TrimSuffix(m.DescribeString(showIndent), "\n")
	for _, line := range strings.Split(dump, "\n") {
		fmt.Fprintln(out, ui.KeyValue(line))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.HintStyle.Render(fmt.Sprintf(
		"%s (store: %s %s)", numberHint(m.Locale()), cfg.Store.Backend, cfg.Store.Path,
	)))
	return nil
}

// numberHint shows how the locale renders a whole and a fractional number.
func numberHint(l mainwindow.Locale) string {
	return fmt.Sprintf("Numbers in %s render as %s and %s",
		l.Name(), l.FormatInt(1234567), l.FormatFloat(1234567.25))
}
