package mainwindow

import (
	"fmt"
	"strings"
)

// ZoomControl selects which inputs drive zooming in the main window.
type ZoomControl int

const (
	ZoomControlMenuOnly ZoomControl = iota
	ZoomControlMenuWheel
	ZoomControlMenuWheelPlusMinus
	ZoomControlMenuPlusMinus
)

var zoomControlNames = []string{
	ZoomControlMenuOnly:           "MenuOnly",
	ZoomControlMenuWheel:          "MenuWheel",
	ZoomControlMenuWheelPlusMinus: "MenuWheelPlusMinus",
	ZoomControlMenuPlusMinus:      "MenuPlusMinus",
}

func (z ZoomControl) String() string {
	return enumName(zoomControlNames, int(z))
}

// ZoomControlValues returns every zoom control mode in declaration order.
func ZoomControlValues() []ZoomControl {
	return []ZoomControl{
		ZoomControlMenuOnly,
		ZoomControlMenuWheel,
		ZoomControlMenuWheelPlusMinus,
		ZoomControlMenuPlusMinus,
	}
}

// ParseZoomControl accepts the String form, case-insensitively.
func ParseZoomControl(s string) (ZoomControl, error) {
	i, err := parseEnum("zoom control", zoomControlNames, s)
	return ZoomControl(i), err
}

// ZoomFactorInitial is the zoom applied when an image is first shown.
type ZoomFactorInitial int

const (
	ZoomInitial16To1 ZoomFactorInitial = iota
	ZoomInitial8To1
	ZoomInitial4To1
	ZoomInitial2To1
	ZoomInitial1To1
	ZoomInitial1To2
	ZoomInitial1To4
	ZoomInitial1To8
	ZoomInitial1To16
	ZoomInitialFill
	ZoomInitialPrevious
)

var zoomFactorInitialNames = []string{
	ZoomInitial16To1:    "16:1",
	ZoomInitial8To1:     "8:1",
	ZoomInitial4To1:     "4:1",
	ZoomInitial2To1:     "2:1",
	ZoomInitial1To1:     "1:1",
	ZoomInitial1To2:     "1:2",
	ZoomInitial1To4:     "1:4",
	ZoomInitial1To8:     "1:8",
	ZoomInitial1To16:    "1:16",
	ZoomInitialFill:     "Fill",
	ZoomInitialPrevious: "Previous",
}

func (z ZoomFactorInitial) String() string {
	return enumName(zoomFactorInitialNames, int(z))
}

// ZoomFactorInitialValues returns every initial zoom in declaration order.
func ZoomFactorInitialValues() []ZoomFactorInitial {
	values := make([]ZoomFactorInitial, len(zoomFactorInitialNames))
	for i := range zoomFactorInitialNames {
		values[i] = ZoomFactorInitial(i)
	}
	return values
}

// ParseZoomFactorInitial accepts the String form, case-insensitively.
func ParseZoomFactorInitial(s string) (ZoomFactorInitial, error) {
	i, err := parseEnum("initial zoom factor", zoomFactorInitialNames, s)
	return ZoomFactorInitial(i), err
}

// MainTitleBarFormat controls whether the window title shows the full document path.
type MainTitleBarFormat int

const (
	MainTitleBarFormatNoPath MainTitleBarFormat = iota
	MainTitleBarFormatPath
)

var mainTitleBarFormatNames = []string{
	MainTitleBarFormatNoPath: "NoPath",
	MainTitleBarFormatPath:   "Path",
}

func (f MainTitleBarFormat) String() string {
	return enumName(mainTitleBarFormatNames, int(f))
}

// MainTitleBarFormatValues returns both title bar formats.
func MainTitleBarFormatValues() []MainTitleBarFormat {
	return []MainTitleBarFormat{MainTitleBarFormatNoPath, MainTitleBarFormatPath}
}

// ParseMainTitleBarFormat accepts the String form, case-insensitively.
func ParseMainTitleBarFormat(s string) (MainTitleBarFormat, error) {
	i, err := parseEnum("title bar format", mainTitleBarFormatNames, s)
	return MainTitleBarFormat(i), err
}

// ImportCropping decides when the cropping dialog is offered during import.
type ImportCropping int

const (
	ImportCroppingNever ImportCropping = iota
	ImportCroppingMultiPagePDFs
	ImportCroppingAlways
)

var importCroppingNames = []string{
	ImportCroppingNever:         "Never",
	ImportCroppingMultiPagePDFs: "MultiPagePDFs",
	ImportCroppingAlways:        "Always",
}

func (c ImportCropping) String() string {
	return enumName(importCroppingNames, int(c))
}

// Label is the wording used in dialogs.
func (c ImportCropping) Label() string {
	switch c {
	case ImportCroppingNever:
		return "Never"
	case ImportCroppingMultiPagePDFs:
		return "Multi-page PDFs"
	case ImportCroppingAlways:
		return "Always"
	default:
		return c.String()
	}
}

// ImportCroppingValues returns every cropping strategy in declaration order.
func ImportCroppingValues() []ImportCropping {
	return []ImportCropping{ImportCroppingNever, ImportCroppingMultiPagePDFs, ImportCroppingAlways}
}

// ParseImportCropping accepts the String form, case-insensitively.
func ParseImportCropping(s string) (ImportCropping, error) {
	i, err := parseEnum("import cropping", importCroppingNames, s)
	return ImportCropping(i), err
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("Unknown(%d)", i)
	}
	return names[i]
}

func parseEnum(kind string, names []string, s string) (int, error) {
	s = strings.TrimSpace(s)
	for i, name := range names {
		if strings.EqualFold(name, s) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q (expected one of %s)", kind, s, strings.Join(names, ", "))
}
