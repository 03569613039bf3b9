// Package mainwindow holds the main window preferences of the digitizer.
package mainwindow

import (
	"math"

	"golang.org/x/text/language"
)

// Model is a snapshot of the user preferences owned by the main window.
// It is a plain value: assigning a Model copies every field.
type Model struct {
	locale             Locale
	zoomControl        ZoomControl
	zoomFactorInitial  ZoomFactorInitial
	mainTitleBarFormat MainTitleBarFormat
	pdfResolution      int
	importCropping     ImportCropping
	maximumGridLines   int
	highlightOpacity   float64
	smallDialogs       bool
	dragDropExport     bool
}

// New returns a Model with every field at its default.
func New() Model {
	return Model{
		locale:             DefaultLocale(),
		zoomControl:        DefaultZoomControl,
		zoomFactorInitial:  DefaultZoomFactorInitial,
		mainTitleBarFormat: DefaultMainTitleBarFormat,
		pdfResolution:      DefaultPDFResolution,
		importCropping:     DefaultImportCropping,
		maximumGridLines:   DefaultMaximumGridLines,
		highlightOpacity:   DefaultHighlightOpacity,
		smallDialogs:       DefaultSmallDialogs,
		dragDropExport:     DefaultDragDropExport,
	}
}

// Clone returns an independent copy.
func (m Model) Clone() Model {
	return m
}

// Equal reports whether every field of m and other match.
func (m Model) Equal(other Model) bool {
	return m.locale.Equal(other.locale) &&
		m.zoomControl == other.zoomControl &&
		m.zoomFactorInitial == other.zoomFactorInitial &&
		m.mainTitleBarFormat == other.mainTitleBarFormat &&
		m.pdfResolution == other.pdfResolution &&
		m.importCropping == other.importCropping &&
		m.maximumGridLines == other.maximumGridLines &&
		sameFloat(m.highlightOpacity, other.highlightOpacity) &&
		m.smallDialogs == other.smallDialogs &&
		m.dragDropExport == other.dragDropExport
}

// sameFloat treats two NaNs as equal so a snapshot always equals its copy.
func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// DragDropExport reports whether click-drag exports data instead of selecting cells.
func (m Model) DragDropExport() bool { return m.dragDropExport }

// HighlightOpacity returns the opacity of point highlights.
func (m Model) HighlightOpacity() float64 { return m.highlightOpacity }

// ImportCropping returns when the cropping dialog is offered on import.
func (m Model) ImportCropping() ImportCropping { return m.importCropping }

// Locale returns the number formatting locale.
func (m Model) Locale() Locale { return m.locale }

// MainTitleBarFormat returns whether the title bar shows the document path.
func (m Model) MainTitleBarFormat() MainTitleBarFormat { return m.mainTitleBarFormat }

// MaximumGridLines returns the limit on grid lines per axis.
func (m Model) MaximumGridLines() int { return m.maximumGridLines }

// PDFResolution returns the import resolution for PDF pages in dots per inch.
func (m Model) PDFResolution() int { return m.pdfResolution }

// SmallDialogs reports whether dialogs are shrunk for small screens.
func (m Model) SmallDialogs() bool { return m.smallDialogs }

// ZoomControl returns the inputs that change the zoom level.
func (m Model) ZoomControl() ZoomControl { return m.zoomControl }

// ZoomFactorInitial returns the zoom applied when an image is opened.
func (m Model) ZoomFactorInitial() ZoomFactorInitial { return m.zoomFactorInitial }

// Setters store their argument as given; none of them range-check.

// SetDragDropExport sets DragDropExport.
func (m *Model) SetDragDropExport(dragDropExport bool) { m.dragDropExport = dragDropExport }

// SetHighlightOpacity sets HighlightOpacity without clamping to [0,1].
func (m *Model) SetHighlightOpacity(opacity float64) { m.highlightOpacity = opacity }

// SetImportCropping sets ImportCropping.
func (m *Model) SetImportCropping(cropping ImportCropping) { m.importCropping = cropping }

// SetMainTitleBarFormat sets MainTitleBarFormat.
func (m *Model) SetMainTitleBarFormat(format MainTitleBarFormat) { m.mainTitleBarFormat = format }

// SetMaximumGridLines sets MaximumGridLines.
func (m *Model) SetMaximumGridLines(maximumGridLines int) { m.maximumGridLines = maximumGridLines }

// SetPDFResolution sets PDFResolution; any integer is accepted.
func (m *Model) SetPDFResolution(resolution int) { m.pdfResolution = resolution }

// SetSmallDialogs sets SmallDialogs.
func (m *Model) SetSmallDialogs(smallDialogs bool) { m.smallDialogs = smallDialogs }

// SetZoomControl sets ZoomControl.
func (m *Model) SetZoomControl(zoomControl ZoomControl) { m.zoomControl = zoomControl }

// SetZoomFactorInitial sets ZoomFactorInitial.
func (m *Model) SetZoomFactorInitial(zoomFactorInitial ZoomFactorInitial) {
	m.zoomFactorInitial = zoomFactorInitial
}

// SetLocale stores locale with digit grouping turned off.
func (m *Model) SetLocale(locale Locale) {
	m.locale = normalizeLocale(locale)
}

// SetLocaleComponents stores the locale for base and region with digit grouping turned off.
func (m *Model) SetLocaleComponents(base language.Base, region language.Region) {
	m.locale = LocaleFromComponents(base, region)
}
