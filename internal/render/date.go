package render

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
)

const (
	// DefaultDateLocale renders dates the way Brazilian Portuguese readers expect.
	DefaultDateLocale = string(monday.LocalePtBR)
	// DefaultDateLayout is DD/MM/YYYY.
	DefaultDateLayout = "02/01/2006"

	slugDateLayout = "2006-01-02"
)

// DateFormatter turns the YYYY-MM-DD prefix of a slug into display text.
type DateFormatter struct {
	locale monday.Locale
	layout string
}

// NewDateFormatter returns a formatter for locale and layout, falling back to
// the package defaults for blank or unsupported values.
func NewDateFormatter(locale, layout string) DateFormatter {
	f := DateFormatter{
		locale: monday.Locale(DefaultDateLocale),
		layout: DefaultDateLayout,
	}
	if loc := strings.TrimSpace(locale); loc != "" && SupportedLocale(loc) {
		f.locale = monday.Locale(loc)
	}
	if l := strings.TrimSpace(layout); l != "" {
		f.layout = l
	}
	return f
}

// Format renders raw when it is a real calendar date. Anything else, such as
// the partial date of a malformed slug, is returned unchanged.
func (f DateFormatter) Format(raw string) string {
	t, err := time.Parse(slugDateLayout, raw)
	if err != nil {
		return raw
	}
	return monday.Format(t, f.layout, f.locale)
}

// SupportedLocale reports whether monday knows locale (e.g. "pt_BR").
func SupportedLocale(locale string) bool {
	for _, known := range monday.ListLocales() {
		if string(known) == locale {
			return true
		}
	}
	return false
}
