package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"

	"github.com/iiroan/digiprefs/internal/mainwindow"
)

// SQLiteStore implements Store using a single-row SQLite table
type SQLiteStore struct {
	db     *sql.DB
	logger *log.Logger
}

// NewSQLiteStore opens (and if needed creates) the database at dbPath
func NewSQLiteStore(dbPath string, logger *log.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = log.Default()
	}

	dir := filepath.Dir(dbPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite works best with a single writer
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS main_window_settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			locale TEXT NOT NULL,
			zoom_control TEXT NOT NULL,
			zoom_factor_initial TEXT NOT NULL,
			main_title_bar_format TEXT NOT NULL,
			pdf_resolution INTEGER NOT NULL,
			import_cropping TEXT NOT NULL,
			maximum_grid_lines INTEGER NOT NULL,
			highlight_opacity REAL NOT NULL,
			small_dialogs INTEGER NOT NULL,
			drag_drop_export INTEGER NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

// Load returns the saved row, or the defaults when none exists
func (s *SQLiteStore) Load() (mainwindow.Model, error) {
	var (
		rec                             Record
		pdfResolution, maximumGridLines int
		highlightOpacity                float64
		smallDialogs, dragDropExport    bool
	)
	err := s.db.QueryRow(`
		SELECT locale, zoom_control, zoom_factor_initial, main_title_bar_format,
			pdf_resolution, import_cropping, maximum_grid_lines, highlight_opacity,
			small_dialogs, drag_drop_export
		FROM main_window_settings WHERE id = 1
	`).Scan(
		&rec.Locale, &rec.ZoomControl, &rec.ZoomFactorInitial, &rec.MainTitleBarFormat,
		&pdfResolution, &rec.ImportCropping, &maximumGridLines, &highlightOpacity,
		&smallDialogs, &dragDropExport,
	)

	if err == sql.ErrNoRows {
		s.logger.Debug("no saved preferences row, using defaults")
		return mainwindow.New(), nil
	}
	if err != nil {
		return mainwindow.New(), fmt.Errorf("query preferences: %w", err)
	}

	rec.PDFResolution = &pdfResolution
	rec.MaximumGridLines = &maximumGridLines
	rec.HighlightOpacity = &highlightOpacity
	rec.SmallDialogs = &smallDialogs
	rec.DragDropExport = &dragDropExport

	m, err := rec.Model()
	if err != nil {
		return mainwindow.New(), fmt.Errorf("decode preferences: %w", err)
	}
	return m, nil
}

// Save persists m using upsert
func (s *SQLiteStore) Save(m mainwindow.Model) error {
	rec := RecordFrom(m)

	_, err := s.db.Exec(`
		INSERT INTO main_window_settings (
			id, locale, zoom_control, zoom_factor_initial, main_title_bar_format,
			pdf_resolution, import_cropping, maximum_grid_lines, highlight_opacity,
			small_dialogs, drag_drop_export
		)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			locale = excluded.locale,
			zoom_control = excluded.zoom_control,
			zoom_factor_initial = excluded.zoom_factor_initial,
			main_title_bar_format = excluded.main_title_bar_format,
			pdf_resolution = excluded.pdf_resolution,
			import_cropping = excluded.import_cropping,
			maximum_grid_lines = excluded.maximum_grid_lines,
			highlight_opacity = excluded.highlight_opacity,
			small_dialogs = excluded.small_dialogs,
			drag_drop_export = excluded.drag_drop_export
	`, rec.Locale, rec.ZoomControl, rec.ZoomFactorInitial, rec.MainTitleBarFormat,
		*rec.PDFResolution, rec.ImportCropping, *rec.MaximumGridLines, *rec.HighlightOpacity,
		*rec.SmallDialogs, *rec.DragDropExport)

	if err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	s.logger.Debug("saved preferences row")
	return nil
}

// Close releases database resources
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
