package store

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/iiroan/digiprefs/internal/mainwindow"
)

// Record is the flat, persisted form of a mainwindow.Model. Nil or empty
// fields fall back to the model defaults when read.
type Record struct {
	Locale             string   `yaml:"locale,omitempty"`
	ZoomControl        string   `yaml:"zoom_control,omitempty"`
	ZoomFactorInitial  string   `yaml:"zoom_factor_initial,omitempty"`
	MainTitleBarFormat string   `yaml:"main_title_bar_format,omitempty"`
	PDFResolution      *int     `yaml:"pdf_resolution,omitempty"`
	ImportCropping     string   `yaml:"import_cropping,omitempty"`
	MaximumGridLines   *int     `yaml:"maximum_grid_lines,omitempty"`
	HighlightOpacity   *float64 `yaml:"highlight_opacity,omitempty"`
	SmallDialogs       *bool    `yaml:"small_dialogs,omitempty"`
	DragDropExport     *bool    `yaml:"drag_drop_export,omitempty"`
}

// RecordFrom captures every field of m.
func RecordFrom(m mainwindow.Model) Record {
	pdfResolution := m.PDFResolution()
	maximumGridLines := m.MaximumGridLines()
	highlightOpacity := m.HighlightOpacity()
	smallDialogs := m.SmallDialogs()
	dragDropExport := m.DragDropExport()

	return Record{
		Locale:             m.Locale().Tag().String(),
		ZoomControl:        m.ZoomControl().String(),
		ZoomFactorInitial:  m.ZoomFactorInitial().String(),
		MainTitleBarFormat: m.MainTitleBarFormat().String(),
		PDFResolution:      &pdfResolution,
		ImportCropping:     m.ImportCropping().String(),
		MaximumGridLines:   &maximumGridLines,
		HighlightOpacity:   &highlightOpacity,
		SmallDialogs:       &smallDialogs,
		DragDropExport:     &dragDropExport,
	}
}

// Model rebuilds a snapshot, starting from the defaults.
func (r Record) Model() (mainwindow.Model, error) {
	m := mainwindow.New()

	if r.Locale != "" {
		loc, err := mainwindow.ParseLocale(r.Locale)
		if err != nil {
			return m, err
		}
		m.SetLocale(loc)
	}
	if r.ZoomControl != "" {
		v, err := mainwindow.ParseZoomControl(r.ZoomControl)
		if err != nil {
			return m, err
		}
		m.SetZoomControl(v)
	}
	if r.ZoomFactorInitial != "" {
		v, err := mainwindow.ParseZoomFactorInitial(r.ZoomFactorInitial)
		if err != nil {
			return m, err
		}
		m.SetZoomFactorInitial(v)
	}
	if r.MainTitleBarFormat != "" {
		v, err := mainwindow.ParseMainTitleBarFormat(r.MainTitleBarFormat)
		if err != nil {
			return m, err
		}
		m.SetMainTitleBarFormat(v)
	}
	if r.ImportCropping != "" {
		v, err := mainwindow.ParseImportCropping(r.ImportCropping)
		if err != nil {
			return m, err
		}
		m.SetImportCropping(v)
	}
	if r.PDFResolution != nil {
		m.SetPDFResolution(*r.PDFResolution)
	}
	if r.MaximumGridLines != nil {
		m.SetMaximumGridLines(*r.MaximumGridLines)
	}
	if r.HighlightOpacity != nil {
		m.SetHighlightOpacity(*r.HighlightOpacity)
	}
	if r.SmallDialogs != nil {
		m.SetSmallDialogs(*r.SmallDialogs)
	}
	if r.DragDropExport != nil {
		m.SetDragDropExport(*r.DragDropExport)
	}

	return m, nil
}

// Keys lists the settings keys accepted by Set, sorted.
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for key := range setters {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Set assigns a single field from its textual form.
func (r *Record) Set(key, value string) error {
	set, ok := setters[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return fmt.Errorf("unknown setting %q (expected one of %s)", key, strings.Join(Keys(), ", "))
	}
	if err := set(r, strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}

// LocaleSystem selects the locale named by the environment.
const LocaleSystem = "system"

// ParseLocaleValue parses a locale setting. "system" resolves through
// mainwindow.SystemLocale.
func ParseLocaleValue(value string) (mainwindow.Locale, error) {
	if strings.EqualFold(strings.TrimSpace(value), LocaleSystem) {
		return mainwindow.SystemLocale(), nil
	}
	return mainwindow.ParseLocale(value)
}

// ParseOpacity parses a highlight opacity. Out-of-range values are kept;
// NaN and infinities are not numbers a user can mean.
func ParseOpacity(value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("enter a valid number")
	}
	return v, nil
}

var setters = map[string]func(r *Record, value string) error{
	"locale": func(r *Record, value string) error {
		loc, err := ParseLocaleValue(value)
		if err != nil {
			return err
		}
		r.Locale = loc.Tag().String()
		return nil
	},
	"zoom_control": func(r *Record, value string) error {
		v, err := mainwindow.ParseZoomControl(value)
		if err != nil {
			return err
		}
		r.ZoomControl = v.String()
		return nil
	},
	"zoom_factor_initial": func(r *Record, value string) error {
		v, err := mainwindow.ParseZoomFactorInitial(value)
		if err != nil {
			return err
		}
		r.ZoomFactorInitial = v.String()
		return nil
	},
	"main_title_bar_format": func(r *Record, value string) error {
		v, err := mainwindow.ParseMainTitleBarFormat(value)
		if err != nil {
			return err
		}
		r.MainTitleBarFormat = v.String()
		return nil
	},
	"import_cropping": func(r *Record, value string) error {
		v, err := mainwindow.ParseImportCropping(value)
		if err != nil {
			return err
		}
		r.ImportCropping = v.String()
		return nil
	},
	"pdf_resolution": func(r *Record, value string) error {
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("enter a valid integer")
		}
		r.PDFResolution = &v
		return nil
	},
	"maximum_grid_lines": func(r *Record, value string) error {
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("enter a valid integer")
		}
		r.MaximumGridLines = &v
		return nil
	},
	"highlight_opacity": func(r *Record, value string) error {
		v, err := ParseOpacity(value)
		if err != nil {
			return err
		}
		r.HighlightOpacity = &v
		return nil
	},
	"small_dialogs": func(r *Record, value string) error {
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("enter true or false")
		}
		r.SmallDialogs = &v
		return nil
	},
	"drag_drop_export": func(r *Record, value string) error {
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("enter true or false")
		}
		r.DragDropExport = &v
		return nil
	},
}
