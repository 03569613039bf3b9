package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/iiroan/digiprefs/internal/mainwindow"
	"github.com/iiroan/digiprefs/internal/ui"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore every preference to its default",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetYes {
		if !ui.IsInteractiveTerminal() {
			return fmt.Errorf("refusing to reset without confirmation (pass --yes)")
		}
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Reset preferences?").
					Description("Every main window preference returns to its default.").
					Affirmative("Reset").
					Negative("Cancel").
					Value(&confirmed),
			),
		).WithTheme(ui.FormTheme())
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), ui.MutedStyle.Render("Nothing changed."))
			return nil
		}
	}

	if err := savePreferences(mainwindow.New()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessStyle.Render("✓ Preferences reset to defaults"))
	return nil
}
