package news

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

const isoDateLayout = "2006-01-02"

var supportedLocales = []language.Tag{
	language.French,
	language.English,
}

var monthNames = [][12]string{
	{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
}

var localeMatcher = language.NewMatcher(supportedLocales)

// DateFormatter renders publication dates. Only month names depend on the
// locale; unsupported locales fall back to French.
type DateFormatter struct {
	months [12]string
}

func NewDateFormatter(locale string) *DateFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.French
	}

	_, index, _ := localeMatcher.Match(tag)

	return &DateFormatter{months: monthNames[index]}
}

func (f *DateFormatter) ISO(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(isoDateLayout)
}

func (f *DateFormatter) Display(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d %s %d", t.Day(), f.months[t.Month()-1], t.Year())
}
