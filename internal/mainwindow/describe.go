package mainwindow

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Describe writes a human-readable dump of m to w. The header line carries
// indentation and each field line carries indentation plus IndentationDelta.
// Write errors are ignored; the dump is diagnostic only.
func (m Model) Describe(indentation string, w io.Writer) {
	fmt.Fprintf(w, "%sMainWindowModel\n", indentation)

	indentation += IndentationDelta

	for _, field := range m.describeFields() {
		fmt.Fprintf(w, "%s%s=%s\n", indentation, field[0], field[1])
	}
}

// DescribeString returns the Describe output as a string.
func (m Model) DescribeString(indentation string) string {
	var b strings.Builder
	m.Describe(indentation, &b)
	return b.String()
}

func (m Model) describeFields() [][2]string {
	return [][2]string{
		{"locale", m.locale.Name()},
		{"zoomControl", m.zoomControl.String()},
		{"zoomFactorInitial", m.zoomFactorInitial.String()},
		{"mainWindowTitleBarFormat", m.mainTitleBarFormat.String()},
		{"pdfResolution", strconv.Itoa(m.pdfResolution)},
		{"importCropping", m.importCropping.Label()},
		{"maximumGridLines", strconv.Itoa(m.maximumGridLines)},
		{"highlightOpacity", strconv.FormatFloat(m.highlightOpacity, 'g', -1, 64)},
		{"smallDialogs", yesNo(m.smallDialogs)},
		{"dragDropExport", yesNo(m.dragDropExport)},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
