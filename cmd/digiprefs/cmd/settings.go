package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/iiroan/digiprefs/internal/mainwindow"
	"github.com/iiroan/digiprefs/internal/store"
	"github.com/iiroan/digiprefs/internal/ui"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit the main window preferences interactively",
	RunE:  runSettings,
}

// settingsDraft holds form-bound copies of the preferences while they are edited.
type settingsDraft struct {
	zoomControl        mainwindow.ZoomControl
	zoomFactorInitial  mainwindow.ZoomFactorInitial
	mainTitleBarFormat mainwindow.MainTitleBarFormat
	smallDialogs       bool
	pdfResolution      string
	importCropping     mainwindow.ImportCropping
	maximumGridLines   string
	locale             string
	highlightOpacity   string
	dragDropExport     bool
}

func newSettingsDraft(m mainwindow.Model) *settingsDraft {
	return &settingsDraft{
		zoomControl:        m.ZoomControl(),
		zoomFactorInitial:  m.ZoomFactorInitial(),
		mainTitleBarFormat: m.MainTitleBarFormat(),
		smallDialogs:       m.SmallDialogs(),
		pdfResolution:      strconv.Itoa(m.PDFResolution()),
		importCropping:     m.ImportCropping(),
		maximumGridLines:   strconv.Itoa(m.MaximumGridLines()),
		locale:             m.Locale().Tag().String(),
		highlightOpacity:   strconv.FormatFloat(m.HighlightOpacity(), 'g', -1, 64),
		dragDropExport:     m.DragDropExport(),
	}
}

// apply copies the draft onto m. Inputs were validated by the form.
func (d *settingsDraft) apply(m mainwindow.Model) (mainwindow.Model, error) {
	m.SetZoomControl(d.zoomControl)
	m.SetZoomFactorInitial(d.zoomFactorInitial)
	m.SetMainTitleBarFormat(d.mainTitleBarFormat)
	m.SetSmallDialogs(d.smallDialogs)
	m.SetImportCropping(d.importCropping)
	m.SetDragDropExport(d.dragDropExport)

	resolution, err := strconv.Atoi(d.pdfResolution)
	if err != nil {
		return m, fmt.Errorf("pdf resolution: %w", err)
	}
	m.SetPDFResolution(resolution)

	gridLines, err := strconv.Atoi(d.maximumGridLines)
	if err != nil {
		return m, fmt.Errorf("maximum grid lines: %w", err)
	}
	m.SetMaximumGridLines(gridLines)

	opacity, err := store.ParseOpacity(d.highlightOpacity)
	if err != nil {
		return m, fmt.Errorf("highlight opacity: %w", err)
	}
	m.SetHighlightOpacity(opacity)

	locale, err := store.ParseLocaleValue(d.locale)
	if err != nil {
		return m, err
	}
	m.SetLocale(locale)

	return m, nil
}

func runSettings(cmd *cobra.Command, args []string) error {
	m, err := loadPreferences()
	if err != nil {
		return err
	}
	draft := newSettingsDraft(m)
	changed := false

	ui.StartScreen(cmd.OutOrStdout(), "SETTINGS", "Select a preferences section to edit")

	for {
		choice := "main-window"
		err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Preferences").
				Description("Choose a section; q goes back").
				Options(
					huh.NewOption("Main Window: zoom, title bar, dialog size", "main-window"),
					huh.NewOption("Import: PDF resolution, cropping, grid lines", "import"),
					huh.NewOption("Locale: number formatting", "locale"),
					huh.NewOption("Export & Highlights: drag-drop, opacity", "export"),
					huh.NewOption("Save & Exit", "save"),
					huh.NewOption("Exit without saving", "exit"),
				).
				Value(&choice),
		)).WithTheme(ui.FormTheme()).WithKeyMap(newHuhBackOnQKeyMap()).Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		var form *huh.Form
		switch choice {
		case "exit":
			if changed {
				fmt.Fprintln(cmd.OutOrStdout(), ui.WarningStyle.Render("Changes discarded."))
			}
			return nil
		case "save":
			updated, err := draft.apply(m)
			if err != nil {
				return err
			}
			if !changed || updated.Equal(m) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.MutedStyle.Render("Nothing changed."))
				return nil
			}
			if err := savePreferences(updated); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessBox.Render(updated.DescribeString("")))
			return nil
		case "main-window":
			form = mainWindowForm(draft)
		case "import":
			form = importForm(draft)
		case "locale":
			form = localeForm(draft)
		case "export":
			form = exportForm(draft)
		default:
			continue
		}

		if err := form.WithTheme(ui.FormTheme()).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return err
		}
		changed = true
	}
}

func mainWindowForm(d *settingsDraft) *huh.Form {
	zoomOptions := make([]huh.Option[mainwindow.ZoomControl], 0)
	for _, z := range mainwindow.ZoomControlValues() {
		zoomOptions = append(zoomOptions, huh.NewOption(z.String(), z))
	}
	initialOptions := make([]huh.Option[mainwindow.ZoomFactorInitial], 0)
	for _, z := range mainwindow.ZoomFactorInitialValues() {
		initialOptions = append(initialOptions, huh.NewOption(z.String(), z))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[mainwindow.ZoomControl]().
				Title("Zoom Control").
				Description("Inputs that change the zoom level").
				Options(zoomOptions...).
				Value(&d.zoomControl),
			huh.NewSelect[mainwindow.ZoomFactorInitial]().
				Title("Initial Zoom").
				Description("Zoom applied when an image is opened").
				Options(initialOptions...).
				Value(&d.zoomFactorInitial),
			huh.NewSelect[mainwindow.MainTitleBarFormat]().
				Title("Title Bar").
				Description("Show the document path in the window title").
				Options(
					huh.NewOption("Full path", mainwindow.MainTitleBarFormatPath),
					huh.NewOption("File name only", mainwindow.MainTitleBarFormatNoPath),
				).
				Value(&d.mainTitleBarFormat),
			huh.NewConfirm().
				Title("Small Dialogs").
				Description("Shrink dialogs for low-resolution screens").
				Value(&d.smallDialogs),
		),
	)
}

func importForm(d *settingsDraft) *huh.Form {
	croppingOptions := make([]huh.Option[mainwindow.ImportCropping], 0)
	for _, c := range mainwindow.ImportCroppingValues() {
		croppingOptions = append(croppingOptions, huh.NewOption(c.Label(), c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("PDF Resolution").
				Description("Dots per inch used when rasterizing imported PDF pages").
				Value(&d.pdfResolution).
				Validate(validateInt),
			huh.NewSelect[mainwindow.ImportCropping]().
				Title("Import Cropping").
				Description("When to offer the cropping dialog").
				Options(croppingOptions...).
				Value(&d.importCropping),
			huh.NewInput().
				Title("Maximum Grid Lines").
				Description("Upper limit on grid lines drawn per axis").
				Value(&d.maximumGridLines).
				Validate(validateInt),
		),
	)
}

func localeForm(d *settingsDraft) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Locale").
				Description("Language tag such as en-US, de_DE or sr-Latn-RS, or \"system\". Digit grouping is always off.").
				Placeholder("en-US").
				Value(&d.locale).
				Validate(func(value string) error {
					_, err := store.ParseLocaleValue(value)
					return err
				}),
		),
	)
}

func exportForm(d *settingsDraft) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Drag-Drop Export").
				Description("Off lets click-drag select a block of table cells instead").
				Value(&d.dragDropExport),
			huh.NewInput().
				Title("Highlight Opacity").
				Description("0 is transparent, 1 is opaque").
				Value(&d.highlightOpacity).
				Validate(func(value string) error {
					_, err := store.ParseOpacity(value)
					return err
				}),
		),
	)
}

func validateInt(value string) error {
	if _, err := strconv.Atoi(value); err != nil {
		return fmt.Errorf("enter a valid integer")
	}
	return nil
}
