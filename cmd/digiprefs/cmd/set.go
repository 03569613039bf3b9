package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iiroan/digiprefs/internal/mainwindow"
	"github.com/iiroan/digiprefs/internal/store"
	"github.com/iiroan/digiprefs/internal/ui"
)

var setCmd = &cobra.Command{
	Use:   "set KEY=VALUE...",
	Short: "Change one or more preferences and save them",
	Long: `Change one or more preferences and save them.

Keys: ` + strings.Join(store.Keys(), ", ") + `

Values are stored as given: no range checks are applied to numbers.`,
	Example: `  digiprefs set pdf_resolution=150 import_cropping=Always
  digiprefs set locale=de_DE highlight_opacity=0.5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	pairs, err := parseKeyValuePairs(args)
	if err != nil {
		return err
	}

	m, err := loadPreferences()
	if err != nil {
		return err
	}

	updated, err := applyPairs(m, pairs)
	if err != nil {
		return err
	}

	if err := savePreferences(updated); err != nil {
		return err
	}

	for _, p := range pairs {
		fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessStyle.Render("✓ ")+ui.KeyValue(p.Key+"="+p.Value))
	}
	return nil
}

func applyPairs(m mainwindow.Model, pairs []keyValue) (mainwindow.Model, error) {
	rec := store.RecordFrom(m)
	for _, p := range pairs {
		if err := rec.Set(p.Key, p.Value); err != nil {
			return m, err
		}
	}
	return rec.Model()
}
