package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iiroan/digiprefs/internal/config"
	"github.com/iiroan/digiprefs/internal/mainwindow"
	"github.com/iiroan/digiprefs/internal/store"
	"github.com/iiroan/digiprefs/internal/ui"
)

var (
	verbose   bool
	quiet     bool
	noColor   bool
	cfgFile   string
	storePath string
	backend   string
	logger    *log.Logger
	cfg       *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "digiprefs",
	Short: "Inspect and edit graph digitizer main window preferences",
	Long: ui.Banner() + `

digiprefs reads, edits and persists the main window preferences
(zoom behavior, locale, import options, grid limits, dialogs)
and checks the main window section of saved documents.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			logger.Warn("could not load config, using defaults", "error", err)
			cfg = config.DefaultConfig()
		}
		if storePath != "" {
			cfg.Store.Path = storePath
		}
		if backend != "" {
			cfg.Store.Backend = strings.ToLower(backend)
		}

		applyUISettings()
		setupLogger()
		mainwindow.SetLogger(logger)

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if ui.IsInteractiveTerminal() {
			return settingsCmd.RunE(settingsCmd, args)
		}
		return showCmd.RunE(showCmd, args)
	},
}

// Execute runs the command tree and reports any failure on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, huh.ErrUserAborted) {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render("Error: "+err.Error()))
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: "+config.GetConfigPath()+")")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Preferences store path (overrides store.path)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Preferences store backend: yaml or sqlite (overrides store.backend)")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(docCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func applyUISettings() {
	if cfg == nil {
		ui.ApplyPreferences(ui.Preferences{NoColor: noColor})
		return
	}
	ui.ApplyPreferences(ui.Preferences{
		Theme:   cfg.UI.Theme,
		Dense:   cfg.UI.Dense,
		NoColor: cfg.UI.NoColor || noColor,
	})
}

func setupLogger() {
	level := log.InfoLevel
	if cfg != nil {
		if parsed, err := log.ParseLevel(cfg.Logging.Level); err == nil {
			level = parsed
		}
	}
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.WarnLevel
	}

	styles := log.DefaultStyles()
	if !noColor && os.Getenv("NO_COLOR") == "" {
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(ui.Muted).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(ui.Primary).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(ui.Warning).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(ui.Error).
			Bold(true)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	logger.SetStyles(styles)
}

func openStore() (store.Store, error) {
	s, err := store.Open(cfg.Store.Backend, cfg.Store.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("opening preferences store: %w", err)
	}
	return s, nil
}

func loadPreferences() (mainwindow.Model, error) {
	s, err := openStore()
	if err != nil {
		return mainwindow.New(), err
	}
	defer s.Close()

	m, err := s.Load()
	if err != nil {
		return mainwindow.New(), fmt.Errorf("loading preferences: %w", err)
	}
	return m, nil
}

func savePreferences(m mainwindow.Model) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Save(m); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	logger.Info("preferences saved", "backend", cfg.Store.Backend, "path", cfg.Store.Path)
	return nil
}
