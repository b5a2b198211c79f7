package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidPeriodKind = errors.New("invalid period kind (must be week or month)")
)

// DateLayout is the calendar-date key format shared by logs, periods and query params.
const DateLayout = "2006-01-02"

const endOfDayNanos = 999 * int(time.Millisecond)

type PeriodKind string

const (
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
)

func (k PeriodKind) Valid() bool {
	return k == PeriodWeek || k == PeriodMonth
}

// ParsePeriodKind accepts "week" or "month" in any case.
// An empty string defaults to week, which is what the dashboard opens on.
func ParsePeriodKind(raw string) (PeriodKind, error) {
	kind := PeriodKind(strings.ToLower(strings.TrimSpace(raw)))
	if kind == "" {
		return PeriodWeek, nil
	}
	if !kind.Valid() {
		return "", ErrInvalidPeriodKind
	}
	return kind, nil
}

// Period is the dashboard window with its log-derived counters.
// Values are never mutated once returned: EnrichWithLogs builds a new one.
type Period struct {
	Kind                 PeriodKind `json:"kind"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              time.Time  `json:"end_date"`
	DaysInPeriod         int        `json:"days_in_period"`
	DaysLeft             int        `json:"days_left"`
	DaysWithLogs         int        `json:"days_with_logs"`
	RemainingDaysForLogs int        `json:"remaining_days_for_logs"`
	HasLogToday          bool       `json:"has_log_today"`
}

// ComputeBasePeriod returns the week (Monday..Sunday) or month containing now,
// with bounds expressed in now's location.
func ComputeBasePeriod(kind PeriodKind, now time.Time) (Period, error) {
	if !kind.Valid() {
		return Period{}, ErrInvalidPeriodKind
	}

	loc := now.Location()
	year, month, day := now.Date()

	var start, end time.Time
	switch kind {
	case PeriodWeek:
		// ISO week: Sunday is the last day, not the first.
		wd := int(now.Weekday())
		if wd == 0 {
			wd = 7
		}
		mondayDay := day - (wd - 1)
		start = MidnightIn(year, month, mondayDay, loc)
		end = time.Date(year, month, mondayDay+6, 23, 59, 59, endOfDayNanos, loc)
	case PeriodMonth:
		start = MidnightIn(year, month, 1, loc)
		end = time.Date(year, month+1, 0, 23, 59, 59, endOfDayNanos, loc)
	}

	daysInPeriod := 7
	if kind == PeriodMonth {
		daysInPeriod = end.Day()
	}

	return Period{
		Kind:         kind,
		StartDate:    start,
		EndDate:      end,
		DaysInPeriod: daysInPeriod,
	}, nil
}

// EnrichWithLogs derives the log counters of p from logs as seen at now.
//
// DaysWithLogs counts distinct dates across every supplied log, including logs
// outside the period. DaysLeft counts the days from today (or tomorrow, when today
// already has a log) through EndDate. Logs without a usable date are ignored.
func EnrichWithLogs(p Period, logs []DailyLog, now time.Time) Period {
	uniqueDates := make(map[string]struct{}, len(logs))
	for i := range logs {
		key, ok := logs[i].DateKey()
		if !ok {
			continue
		}
		uniqueDates[key] = struct{}{}
	}

	_, hasLogToday := uniqueDates[CalendarKey(now)]

	// Count on UTC calendar dates: local midnights can be skipped or repeated.
	first := CalendarDay(now)
	if hasLogToday {
		first = first.AddDate(0, 0, 1)
	}
	last := CalendarDay(p.EndDate)

	daysLeft := 0
	if !first.After(last) {
		daysLeft = int(last.Sub(first)/(24*time.Hour)) + 1
	}

	enriched := p
	enriched.DaysLeft = daysLeft
	enriched.DaysWithLogs = len(uniqueDates)
	enriched.RemainingDaysForLogs = daysLeft
	enriched.HasLogToday = hasLogToday
	return enriched
}

// StartOfDay returns the first instant of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return MidnightIn(t.Year(), t.Month(), t.Day(), t.Location())
}

// MidnightIn returns the first instant of the given calendar day in loc.
// When a DST gap swallows 00:00, that is the moment the new offset starts.
func MidnightIn(year int, month time.Month, day int, loc *time.Location) time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	noon := time.Date(year, month, day, 12, 0, 0, 0, loc)
	if t.YearDay() == noon.YearDay() && t.Year() == noon.Year() {
		return t
	}
	if _, end := t.ZoneBounds(); !end.IsZero() {
		return end
	}
	return t
}

// CalendarKey formats t's own calendar day, without converting its location.
func CalendarKey(t time.Time) string {
	return t.Format(DateLayout)
}
