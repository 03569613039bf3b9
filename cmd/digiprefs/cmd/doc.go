package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iiroan/digiprefs/internal/mainwindow"
	"github.com/iiroan/digiprefs/internal/ui"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Read and write the main window section of documents",
}

var docExportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Write the main window section for the current preferences",
	Long: `Write the main window section for the current preferences.

The section is written to stdout unless FILE is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDocExport,
}

var docCheckCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Verify that a document's main window section is well formed",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocCheck,
}

func init() {
	docCmd.AddCommand(docExportCmd)
	docCmd.AddCommand(docCheckCmd)
}

func runDocExport(cmd *cobra.Command, args []string) error {
	m, err := loadPreferences()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		out := cmd.OutOrStdout()
		if err := mainwindow.WriteDocument(out, m); err != nil {
			return err
		}
		fmt.Fprintln(out)
		return nil
	}

	if err := writeDocumentFile(args[0], m); err != nil {
		return err
	}
	logger.Info("document written", "path", args[0])
	return nil
}

func writeDocumentFile(path string, m mainwindow.Model) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := mainwindow.WriteDocument(f, m); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func runDocCheck(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer f.Close()

	if _, err := mainwindow.ReadDocument(f); err != nil {
		if errors.Is(err, mainwindow.ErrMalformedDocument) {
			fmt.Fprintln(cmd.OutOrStdout(), ui.ErrorBox.Render(args[0]+"\n"+err.Error()))
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessStyle.Render("✓ "+args[0]+": main window section is well formed"))
	return nil
}
