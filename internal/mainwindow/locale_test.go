package mainwindow

import (
	"testing"

	"golang.org/x/text/language"
)

func TestSetLocale_AlwaysHidesGroupSeparator(t *testing.T) {
	raw := Locale{tag: language.German}
	if raw.GroupSeparatorHidden() {
		t.Fatal("Expected a raw locale to keep its group separator")
	}

	m := New()
	m.SetLocale(raw)
	if !m.Locale().GroupSeparatorHidden() {
		t.Error("Expected SetLocale to hide the group separator")
	}
	if m.Locale().Name() != "de_DE" {
		t.Errorf("Expected de_DE, got %s", m.Locale().Name())
	}

	m = New()
	m.SetLocaleComponents(language.MustParseBase("fr"), language.MustParseRegion("CA"))
	if !m.Locale().GroupSeparatorHidden() {
		t.Error("Expected SetLocaleComponents to hide the group separator")
	}
	if m.Locale().Name() != "fr_CA" {
		t.Errorf("Expected fr_CA, got %s", m.Locale().Name())
	}
}

func TestLocaleConstructors_HideGroupSeparator(t *testing.T) {
	fromTag := LocaleFromTag(language.BritishEnglish)
	fromParts := LocaleFromComponents(language.MustParseBase("en"), language.MustParseRegion("GB"))

	if !fromTag.GroupSeparatorHidden() || !fromParts.GroupSeparatorHidden() {
		t.Error("Expected both constructors to hide the group separator")
	}
	if !fromTag.Equal(fromParts) {
		t.Errorf("Expected %s and %s to be equal", fromTag, fromParts)
	}
}

func TestLocaleFormatInt(t *testing.T) {
	grouped := Locale{tag: language.AmericanEnglish}
	if got := grouped.FormatInt(1234567); got != "1,234,567" {
		t.Errorf("Expected grouped 1,234,567, got %s", got)
	}

	plain := LocaleFromTag(language.AmericanEnglish)
	if got := plain.FormatInt(1234567); got != "1234567" {
		t.Errorf("Expected ungrouped 1234567, got %s", got)
	}
}

func TestLocaleFormatFloat(t *testing.T) {
	german := LocaleFromTag(language.German)
	if got := german.FormatFloat(1234.5); got != "1234,5" {
		t.Errorf("Expected 1234,5, got %s", got)
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"de_DE", "de_DE", false},
		{"pt-BR", "pt_BR", false},
		{"fr_FR.UTF-8", "fr_FR", false},
		{"sr_RS@latin", "sr_RS", false},
		{"C", "en_US", false},
		{"POSIX", "en_US", false},
		{"", "", true},
		{"!!", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			loc, err := ParseLocale(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if loc.Name() != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, loc.Name())
			}
			if !loc.GroupSeparatorHidden() {
				t.Error("Expected parsed locale to hide the group separator")
			}
		})
	}
}

func TestSystemLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_NUMERIC", "nl_NL.UTF-8")
	t.Setenv("LANG", "en_GB.UTF-8")

	if got := SystemLocale().Name(); got != "nl_NL" {
		t.Errorf("Expected LC_NUMERIC to win over LANG, got %s", got)
	}

	t.Setenv("LC_ALL", "it_IT")
	if got := SystemLocale().Name(); got != "it_IT" {
		t.Errorf("Expected LC_ALL to win, got %s", got)
	}

	t.Setenv("LC_ALL", "")
	t.Setenv("LC_NUMERIC", "")
	t.Setenv("LANG", "")
	if got := SystemLocale().Name(); got != "en_US" {
		t.Errorf("Expected fallback en_US, got %s", got)
	}
}
