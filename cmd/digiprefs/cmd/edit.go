package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iiroan/digiprefs/internal/exec"
	"github.com/iiroan/digiprefs/internal/store"
	"github.com/iiroan/digiprefs/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the preferences file in your editor",
	Long: `Open the preferences file in $VISUAL or $EDITOR, then check what was saved.

Only the yaml backend stores preferences in an editable file.`,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	if cfg.Store.Backend != store.BackendYAML {
		return fmt.Errorf("edit needs the %s backend (current: %s); use set or settings instead", store.BackendYAML, cfg.Store.Backend)
	}

	_, err := os.Stat(cfg.Store.Path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		m, err := loadPreferences()
		if err != nil {
			return err
		}
		if err := savePreferences(m); err != nil {
			return err
		}
	case err != nil:
		return fmt.Errorf("checking preferences file: %w", err)
	}

	if err := exec.Edit(cmd.Context(), cfg.Store.Path, logger); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}

	m, err := loadPreferences()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), ui.ErrorBox.Render(cfg.Store.Path+"\n"+err.Error()))
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessStyle.Render("✓ "+cfg.Store.Path+" is valid"))
	m.Describe("", cmd.OutOrStdout())
	return nil
}
