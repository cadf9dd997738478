// Package locale formats calendar dates for display under a fixed locale.
//
// Cards show birthdates as "day month-name year" (e.g. "15 May 1998").
// The display locale is chosen once, when the Formatter is built, via
// golang.org/x/text language matching; it never changes per record.
package locale

import (
	"fmt"

	"golang.org/x/text/language"

	"cardwall/internal/model"
)

// supported lists the display locales cardwall ships month names for.
// English is first so the matcher falls back to it.
var supported = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.German,
}

var matcher = language.NewMatcher(supported)

// monthNames holds the standalone month names per supported locale,
// indexed January=0.
var monthNames = map[language.Tag][12]string{
	language.English: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	language.Spanish: {
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	},
	language.French: {
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	},
	language.German: {
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	},
}

// Formatter renders dates under one display locale.
type Formatter struct {
	tag    language.Tag
	months [12]string
}

// NewFormatter builds a Formatter for the given BCP 47 tag (e.g. "en",
// "es-MX"). Unsupported locales match to the closest supported one,
// falling back to English; a malformed tag is an error.
func NewFormatter(bcp47 string) (*Formatter, error) {
	tag, err := language.Parse(bcp47)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", bcp47, err)
	}
	_, idx, _ := matcher.Match(tag)
	chosen := supported[idx]
	return &Formatter{tag: chosen, months: monthNames[chosen]}, nil
}

// Default returns the English formatter.
func Default() *Formatter {
	return &Formatter{tag: language.English, months: monthNames[language.English]}
}

// Tag returns the resolved display locale.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// FormatDate renders d as "day month-name year" with no leading zero on
// the day: 1998-05-15 becomes "15 May 1998" under the English locale.
func (f *Formatter) FormatDate(d model.Date) string {
	if d.Month < 1 || d.Month > 12 {
		return d.String()
	}
	return fmt.Sprintf("%d %s %d", d.Day, f.months[d.Month-1], d.Year)
}
