package mainwindow

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberOptions adjusts how a Locale renders numbers.
type NumberOptions uint8

const (
	// OmitGroupSeparator drops digit grouping, so a thousands comma can never be
	// confused with the comma that delimits fields in exported data.
	OmitGroupSeparator NumberOptions = 1 << iota
)

// Locale is a language and region pair with number formatting options.
// The zero value is the undetermined locale with grouping enabled.
type Locale struct {
	tag     language.Tag
	options NumberOptions
}

// LocaleFromComponents builds a locale from a language and a region.
func LocaleFromComponents(base language.Base, region language.Region) Locale {
	// Compose only fails on malformed parts; it still returns its best tag.
	tag, _ := language.Compose(base, region)
	return normalizeLocale(Locale{tag: tag})
}

// LocaleFromTag wraps an existing language tag.
func LocaleFromTag(tag language.Tag) Locale {
	return normalizeLocale(Locale{tag: tag})
}

// ParseLocale reads names such as "de_DE", "pt-BR" or "fr_FR.UTF-8".
// "C" and "POSIX" map to DefaultLocale.
func ParseLocale(s string) (Locale, error) {
	name := strings.TrimSpace(s)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "":
		return Locale{}, fmt.Errorf("empty locale name")
	case "C", "POSIX":
		return DefaultLocale(), nil
	}

	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return Locale{}, fmt.Errorf("parsing locale %q: %w", s, err)
	}
	return LocaleFromTag(tag), nil
}

// SystemLocale returns the locale named by LC_ALL, LC_NUMERIC or LANG,
// in that order, or DefaultLocale when none of them parses.
func SystemLocale() Locale {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		if value := os.Getenv(key); value != "" {
			if loc, err := ParseLocale(value); err == nil {
				return loc
			}
		}
	}
	return DefaultLocale()
}

// DefaultLocale is the locale of a default-constructed Model.
func DefaultLocale() Locale {
	return LocaleFromTag(language.AmericanEnglish)
}

func normalizeLocale(l Locale) Locale {
	l.options |= OmitGroupSeparator
	return l
}

// Tag returns the underlying language tag.
func (l Locale) Tag() language.Tag {
	return l.tag
}

// GroupSeparatorHidden reports whether digit grouping is suppressed.
func (l Locale) GroupSeparatorHidden() bool {
	return l.options&OmitGroupSeparator != 0
}

// Name returns the locale as language_REGION, for example "en_US".
func (l Locale) Name() string {
	base, _ := l.tag.Base()
	region, _ := l.tag.Region()
	if region.String() == "ZZ" {
		return base.String()
	}
	return base.String() + "_" + region.String()
}

func (l Locale) String() string {
	return l.Name()
}

// Equal compares tag and options.
func (l Locale) Equal(other Locale) bool {
	return l.tag.String() == other.tag.String() && l.options == other.options
}

// FormatFloat renders v with the locale's decimal mark.
func (l Locale) FormatFloat(v float64) string {
	return message.NewPrinter(l.tag).Sprint(number.Decimal(v, l.numberOptions()...))
}

// FormatInt renders v with the locale's digits and grouping rules.
func (l Locale) FormatInt(v int) string {
	return message.NewPrinter(l.tag).Sprint(number.Decimal(v, l.numberOptions()...))
}

func (l Locale) numberOptions() []number.Option {
	if l.GroupSeparatorHidden() {
		return []number.Option{number.NoSeparator()}
	}
	return nil
}
