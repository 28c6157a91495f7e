package views

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mesh-intelligence/octofit/pkg/types"
)

// InvalidDate is shown for a date value that cannot be parsed.
const InvalidDate = "Invalid Date"

const isoLayout = "2006-01-02"

var dateLayouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.German, "2.1.2006"},
	{language.French, "02/01/2006"},
	{language.Japanese, "2006/1/2"},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(dateLayouts))
	for i, d := range dateLayouts {
		tags[i] = d.tag
	}
	return language.NewMatcher(tags)
}()

// accepted input layouts, most specific first
var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	isoLayout,
}

// DateFormatter renders API dates as locale date strings.
type DateFormatter struct {
	layout string
}

// NewDateFormatter picks the date layout for a BCP 47 locale. Unknown or
// unmatched locales use ISO dates.
func NewDateFormatter(locale string) DateFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		return DateFormatter{layout: isoLayout}
	}
	_, idx, conf := dateMatcher.Match(tag)
	if conf == language.No {
		return DateFormatter{layout: isoLayout}
	}
	return DateFormatter{layout: dateLayouts[idx].layout}
}

// Format renders v. Missing values render empty; unparsable values render
// InvalidDate. The date is shown in the zone it was sent in.
func (d DateFormatter) Format(v any) string {
	if !types.Truthy(v) {
		return ""
	}
	s := types.Text(v)
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(d.layout)
		}
	}
	return InvalidDate
}

// Env carries the locale-dependent helpers and view options.
type Env struct {
	Dates   DateFormatter
	Printer *message.Printer
	RankBy  string
}

// NewEnv builds an Env for locale. An unparsable locale falls back to
// American English for numbers and ISO for dates.
func NewEnv(locale, rankBy string) Env {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	if rankBy == "" {
		rankBy = types.RankByOrder
	}
	return Env{
		Dates:   NewDateFormatter(locale),
		Printer: message.NewPrinter(tag),
		RankBy:  rankBy,
	}
}
