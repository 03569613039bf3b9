package mainwindow

import (
	"strings"
	"testing"
)

func TestDescribe_Defaults(t *testing.T) {
	want := `>>MainWindowModel
>>  locale=en_US
>>  zoomControl=MenuWheelPlusMinus
>>  zoomFactorInitial=Fill
>>  mainWindowTitleBarFormat=Path
>>  pdfResolution=75
>>  importCropping=Multi-page PDFs
>>  maximumGridLines=100
>>  highlightOpacity=0.35
>>  smallDialogs=no
>>  dragDropExport=no
`
	if got := New().DescribeString(">>"); got != want {
		t.Errorf("Unexpected dump:\n%s\nwant:\n%s", got, want)
	}
}

func TestDescribe_FieldOrderAndIndent(t *testing.T) {
	lines := strings.Split(strings.TrimSuffix(modifiedModel().DescribeString("\t"), "\n"), "\n")
	if len(lines) != 11 {
		t.Fatalf("Expected header plus 10 field lines, got %d", len(lines))
	}
	if lines[0] != "\tMainWindowModel" {
		t.Errorf("Expected header with caller indentation, got %q", lines[0])
	}

	order := []string{
		"locale=pt_BR",
		"zoomControl=MenuPlusMinus",
		"zoomFactorInitial=2:1",
		"mainWindowTitleBarFormat=NoPath",
		"pdfResolution=200",
		"importCropping=Never",
		"maximumGridLines=40",
		"highlightOpacity=0.9",
		"smallDialogs=yes",
		"dragDropExport=yes",
	}
	for i, field := range order {
		want := "\t" + IndentationDelta + field
		if lines[i+1] != want {
			t.Errorf("Line %d: expected %q, got %q", i+1, want, lines[i+1])
		}
	}
}
