package store

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"github.com/iiroan/digiprefs/internal/mainwindow"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func customModel() mainwindow.Model {
	m := mainwindow.New()
	m.SetLocale(mainwindow.LocaleFromTag(language.MustParse("de-CH")))
	m.SetZoomControl(mainwindow.ZoomControlMenuOnly)
	m.SetZoomFactorInitial(mainwindow.ZoomInitial1To8)
	m.SetMainTitleBarFormat(mainwindow.MainTitleBarFormatNoPath)
	m.SetPDFResolution(300)
	m.SetImportCropping(mainwindow.ImportCroppingAlways)
	m.SetMaximumGridLines(25)
	m.SetHighlightOpacity(1.5)
	m.SetSmallDialogs(true)
	m.SetDragDropExport(true)
	return m
}

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	sqlite, err := NewSQLiteStore(filepath.Join(dir, "db", "prefs.sqlite3"), quietLogger())
	if err != nil {
		t.Fatalf("Failed to open SQLite store: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{
		BackendYAML:   NewYAMLStore(filepath.Join(dir, "nested", "prefs.yaml"), quietLogger()),
		BackendSQLite: sqlite,
	}
}

func TestStore_LoadDefaultsWhenEmpty(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			m, err := s.Load()
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if !m.Equal(mainwindow.New()) {
				t.Error("Expected default preferences from an empty store")
			}
		})
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			want := customModel()
			if err := s.Save(want); err != nil {
				t.Fatalf("Expected no error saving, got %v", err)
			}

			got, err := s.Load()
			if err != nil {
				t.Fatalf("Expected no error loading, got %v", err)
			}
			if !got.Equal(want) {
				t.Errorf("Expected saved preferences back:\n%s\ngot:\n%s", want.DescribeString(""), got.DescribeString(""))
			}

			// A second save must overwrite, not append.
			want.SetMaximumGridLines(7)
			if err := s.Save(want); err != nil {
				t.Fatalf("Expected no error on second save, got %v", err)
			}
			got, err = s.Load()
			if err != nil {
				t.Fatalf("Expected no error reloading, got %v", err)
			}
			if got.MaximumGridLines() != 7 {
				t.Errorf("Expected maximum grid lines 7, got %d", got.MaximumGridLines())
			}
		})
	}
}

func TestYAMLStore_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	if err := os.WriteFile(path, []byte("pdf_resolution: 600\nsmall_dialogs: true\n"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	m, err := NewYAMLStore(path, quietLogger()).Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if m.PDFResolution() != 600 || !m.SmallDialogs() {
		t.Errorf("Expected file values, got resolution %d small dialogs %v", m.PDFResolution(), m.SmallDialogs())
	}
	if m.ZoomControl() != mainwindow.DefaultZoomControl {
		t.Errorf("Expected default zoom control, got %s", m.ZoomControl())
	}
}

func TestYAMLStore_InvalidEnum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	if err := os.WriteFile(path, []byte("zoom_control: Joystick\n"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := NewYAMLStore(path, quietLogger()).Load(); err == nil {
		t.Error("Expected error for unknown zoom control")
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open("YAML", filepath.Join(dir, "p.yaml"), nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, ok := s.(*YAMLStore); !ok {
		t.Errorf("Expected *YAMLStore, got %T", s)
	}

	s, err = Open(BackendSQLite, filepath.Join(dir, "p.sqlite3"), quietLogger())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer s.Close()
	if _, ok := s.(*SQLiteStore); !ok {
		t.Errorf("Expected *SQLiteStore, got %T", s)
	}

	if _, err := Open("redis", dir, nil); err == nil {
		t.Error("Expected error for unknown backend")
	}
}

func TestRecordSet(t *testing.T) {
	rec := RecordFrom(mainwindow.New())

	pairs := map[string]string{
		"locale":                "ja_JP.UTF-8",
		"zoom_control":          "menuwheel",
		"zoom_factor_initial":   "1:2",
		"main_title_bar_format": "NoPath",
		"pdf_resolution":        "150",
		"import_cropping":       "never",
		"MAXIMUM_GRID_LINES":    "64",
		"highlight_opacity":     "0.5",
		"small_dialogs":         "true",
		"drag_drop_export":      "1",
	}
	for key, value := range pairs {
		if err := rec.Set(key, value); err != nil {
			t.Fatalf("Expected no error setting %s, got %v", key, err)
		}
	}

	m, err := rec.Model()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if m.Locale().Name() != "ja_JP" {
		t.Errorf("Expected ja_JP, got %s", m.Locale().Name())
	}
	if m.ZoomControl() != mainwindow.ZoomControlMenuWheel {
		t.Errorf("Expected MenuWheel, got %s", m.ZoomControl())
	}
	if m.ZoomFactorInitial() != mainwindow.ZoomInitial1To2 {
		t.Errorf("Expected 1:2, got %s", m.ZoomFactorInitial())
	}
	if m.MainTitleBarFormat() != mainwindow.MainTitleBarFormatNoPath {
		t.Errorf("Expected NoPath, got %s", m.MainTitleBarFormat())
	}
	if m.PDFResolution() != 150 || m.MaximumGridLines() != 64 || m.HighlightOpacity() != 0.5 {
		t.Errorf("Unexpected numeric fields: %d %d %v", m.PDFResolution(), m.MaximumGridLines(), m.HighlightOpacity())
	}
	if m.ImportCropping() != mainwindow.ImportCroppingNever {
		t.Errorf("Expected Never, got %s", m.ImportCropping())
	}
	if !m.SmallDialogs() || !m.DragDropExport() {
		t.Error("Expected both boolean settings on")
	}
}

func TestRecordSet_Errors(t *testing.T) {
	rec := Record{}

	tests := []struct{ key, value, wantMsg string }{
		{"colour", "red", "unknown setting"},
		{"pdf_resolution", "high", "valid integer"},
		{"highlight_opacity", "half", "valid number"},
		{"highlight_opacity", "NaN", "valid number"},
		{"highlight_opacity", "+Inf", "valid number"},
		{"small_dialogs", "maybe", "true or false"},
		{"zoom_control", "pinch", "unknown zoom control"},
	}
	for _, tt := range tests {
		err := rec.Set(tt.key, tt.value)
		if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
			t.Errorf("Set(%q, %q): expected error containing %q, got %v", tt.key, tt.value, tt.wantMsg, err)
		}
	}
	if rec.ZoomControl != "" || rec.PDFResolution != nil {
		t.Error("Expected failed sets to leave the record untouched")
	}
}

func TestStore_LocaleScriptRoundTrip(t *testing.T) {
	for _, tag := range []string{"sr-Latn-RS", "zh-Hant-TW"} {
		for name, s := range openStores(t) {
			t.Run(tag+"/"+name, func(t *testing.T) {
				m := mainwindow.New()
				m.SetLocale(mainwindow.LocaleFromTag(language.MustParse(tag)))

				if err := s.Save(m); err != nil {
					t.Fatalf("Save failed: %v", err)
				}
				loaded, err := s.Load()
				if err != nil {
					t.Fatalf("Load failed: %v", err)
				}
				if got := loaded.Locale().Tag().String(); got != tag {
					t.Errorf("Expected locale %s, got %s", tag, got)
				}
				if !loaded.Equal(m) {
					t.Errorf("Expected loaded snapshot to equal the saved one:\n%s", loaded.DescribeString(""))
				}
			})
		}
	}
}

func TestRecordSet_LocaleKeepsScript(t *testing.T) {
	var rec Record
	if err := rec.Set("locale", "sr_Latn_RS"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if rec.Locale != "sr-Latn-RS" {
		t.Errorf("Expected sr-Latn-RS, got %q", rec.Locale)
	}
}

func TestRecordSet_SystemLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_NUMERIC", "pl_PL.UTF-8")

	var rec Record
	if err := rec.Set("locale", "System"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if rec.Locale != "pl-PL" {
		t.Errorf("Expected pl-PL from the environment, got %q", rec.Locale)
	}
}

func TestParseOpacity(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"0.35", 0.35, false},
		{" 1.5 ", 1.5, false},
		{"-0.25", -0.25, false},
		{"NaN", 0, true},
		{"-Inf", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseOpacity(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOpacity(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOpacity(%q): expected %v, got %v", tt.input, tt.want, got)
		}
	}
}
