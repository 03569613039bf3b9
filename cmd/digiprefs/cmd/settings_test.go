package cmd

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/iiroan/digiprefs/internal/mainwindow"
)

func TestSettingsDraftRoundTrip(t *testing.T) {
	m := mainwindow.New()
	m.SetPDFResolution(300)
	m.SetHighlightOpacity(0.8)
	m.SetZoomFactorInitial(mainwindow.ZoomInitial1To2)

	got, err := newSettingsDraft(m).apply(mainwindow.New())
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if !got.Equal(m) {
		t.Errorf("Expected draft to reproduce the snapshot:\n%s\ngot:\n%s", m.DescribeString(""), got.DescribeString(""))
	}
}

func TestSettingsDraft_LocaleKeepsScript(t *testing.T) {
	m := mainwindow.New()
	m.SetLocale(mainwindow.LocaleFromTag(language.MustParse("zh-Hant-TW")))

	d := newSettingsDraft(m)
	if d.locale != "zh-Hant-TW" {
		t.Errorf("Expected draft locale zh-Hant-TW, got %q", d.locale)
	}
	got, err := d.apply(mainwindow.New())
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if !got.Locale().Equal(m.Locale()) {
		t.Errorf("Expected locale %s, got %s", m.Locale().Tag(), got.Locale().Tag())
	}
}

func TestSettingsDraft_SystemLocale(t *testing.T) {
	t.Setenv("LC_ALL", "fi_FI.UTF-8")

	d := newSettingsDraft(mainwindow.New())
	d.locale = "system"
	got, err := d.apply(mainwindow.New())
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if got.Locale().Name() != "fi_FI" {
		t.Errorf("Expected fi_FI, got %s", got.Locale().Name())
	}
}

func TestSettingsDraftApply_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *settingsDraft)
	}{
		{"pdf resolution", func(d *settingsDraft) { d.pdfResolution = "high" }},
		{"grid lines", func(d *settingsDraft) { d.maximumGridLines = "" }},
		{"opacity", func(d *settingsDraft) { d.highlightOpacity = "half" }},
		{"nan opacity", func(d *settingsDraft) { d.highlightOpacity = "NaN" }},
		{"locale", func(d *settingsDraft) { d.locale = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newSettingsDraft(mainwindow.New())
			tt.mutate(d)
			if _, err := d.apply(mainwindow.New()); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
