package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
)

// IsWithin reports whether start <= date <= end. The date is compared as-is.
func IsWithin(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}

// HasLogForDate compares calendar days, not instants.
// The date is keyed by its own calendar day, not its UTC date.
func HasLogForDate(logs []DailyLog, date time.Time) bool {
	want := CalendarKey(date)
	for i := range logs {
		if key, ok := logs[i].DateKey(); ok && key == want {
			return true
		}
	}
	return false
}

// FilterLogs keeps the logs whose calendar day falls inside p.
// Each log day is placed at midnight of the period's location before the check.
func FilterLogs(logs []DailyLog, p Period) []DailyLog {
	loc := p.StartDate.Location()
	filtered := make([]DailyLog, 0, len(logs))
	for _, l := range logs {
		if l.Date.IsZero() {
			continue
		}
		y, m, d := l.Date.UTC().Date()
		if IsWithin(MidnightIn(y, m, d, loc), p.StartDate, p.EndDate) {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

var defaultTranslator = en.New()

// FormatRange renders "Mar 4 - Mar 10" with English month names.
func FormatRange(start, end time.Time) string {
	return NewRangeFormatter(nil).Format(start, end)
}

// RangeFormatter renders period labels with a locale's abbreviated month names,
// month first for English and day first otherwise.
// The label has no year, so late-December weeks read the same every year.
type RangeFormatter struct {
	tr locales.Translator
}

func NewRangeFormatter(tr locales.Translator) RangeFormatter {
	if tr == nil {
		tr = defaultTranslator
	}
	return RangeFormatter{tr: tr}
}

func (f RangeFormatter) Format(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", f.formatDay(start), f.formatDay(end))
}

// formatDay puts the month first only for English; the other bundled locales write "4 mar".
func (f RangeFormatter) formatDay(t time.Time) string {
	if strings.HasPrefix(f.tr.Locale(), "en") {
		return fmt.Sprintf("%s %d", f.tr.MonthAbbreviated(t.Month()), t.Day())
	}
	return fmt.Sprintf("%d %s", t.Day(), f.tr.MonthAbbreviated(t.Month()))
}

func (f RangeFormatter) Locale() string {
	return f.tr.Locale()
}
