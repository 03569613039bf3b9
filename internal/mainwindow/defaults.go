package mainwindow

// Defaults applied by New. Nothing here is mutable at runtime.
const (
	DefaultZoomControl        = ZoomControlMenuWheelPlusMinus
	DefaultZoomFactorInitial  = ZoomInitialFill
	DefaultMainTitleBarFormat = MainTitleBarFormatPath
	DefaultPDFResolution      = 75
	DefaultImportCropping     = ImportCroppingMultiPagePDFs
	DefaultMaximumGridLines   = 100
	DefaultHighlightOpacity   = 0.35
	DefaultSmallDialogs       = false

	// Off so that click-drag selects a rectangular block of table cells.
	DefaultDragDropExport = false
)

// IndentationDelta is appended to the caller's indentation for each nested Describe level.
const IndentationDelta = "  "

// DocumentElement is the element name of the main window subtree in a saved document.
const DocumentElement = "MainWindow"
