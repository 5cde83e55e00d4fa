package models

// Known setting keys.
const (
	SettingCurrency         = "currency"
	SettingProjectionMonths = "projection_months"
	SettingDateFormat       = "date_format"
)

// DefaultDateFormat is the date format used until the user picks another.
const DefaultDateFormat = "YYYY-MM-DD"

// dateFormatLayouts maps the supported display date formats to Go layouts.
var dateFormatLayouts = map[string]string{
	"YYYY-MM-DD": "2006-01-02",
	"DD/MM/YYYY": "02/01/2006",
	"MM/DD/YYYY": "01/02/2006",
	"DD.MM.YYYY": "02.01.2006",
}

// DateFormats lists the supported display date formats.
var DateFormats = []string{"YYYY-MM-DD", "DD/MM/YYYY", "MM/DD/YYYY", "DD.MM.YYYY"}

// ValidDateFormat reports whether format is a supported display date format.
func ValidDateFormat(format string) bool {
	_, ok := dateFormatLayouts[format]
	return ok
}

// FormatDate renders d in a display date format, falling back to
// YYYY-MM-DD for an unknown format.
func FormatDate(d Date, format string) string {
	layout, ok := dateFormatLayouts[format]
	if !ok {
		layout = DateLayout
	}
	return d.Format(layout)
}

// Setting is a single key/value user preference.
type Setting struct {
	Base
	Key   string `gorm:"size:64;not null;uniqueIndex" json:"key"`
	Value string `gorm:"size:255;not null" json:"value"`
}
