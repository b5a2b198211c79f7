package domain_test

import (
	"testing"
	"time"

	"github.com/go-playground/locales/it"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
)

func TestIsWithin(t *testing.T) {
	start := day(2024, 3, 4)
	end := day(2024, 3, 10)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"Inside", day(2024, 3, 5), true},
		{"Just past end", day(2024, 3, 11), false},
		{"Start is inclusive", start, true},
		{"End is inclusive", end, true},
		{"Before start", start.Add(-time.Nanosecond), false},
		{"Date is not normalized", end.Add(time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsWithin(tt.date, start, end))
		})
	}
}

func TestHasLogForDate(t *testing.T) {
	logs := []domain.DailyLog{
		logOn(day(2024, 3, 4), domain.MetricWeight, 80),
		{UserID: "u1", Metric: domain.MetricSteps},
	}

	assert.True(t, domain.HasLogForDate(logs, time.Date(2024, 3, 4, 18, 45, 0, 0, time.UTC)), "time of day must not matter")
	assert.False(t, domain.HasLogForDate(logs, day(2024, 3, 5)))
	assert.False(t, domain.HasLogForDate(nil, day(2024, 3, 4)))

	plusTwo := time.FixedZone("UTC+2", 2*60*60)
	assert.False(t, domain.HasLogForDate(logs, time.Date(2024, 3, 5, 0, 0, 0, 0, plusTwo)), "the date keeps its own calendar day")
}

func TestFilterLogs(t *testing.T) {
	now := time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)
	week, err := domain.ComputeBasePeriod(domain.PeriodWeek, now)
	require.NoError(t, err)

	logs := []domain.DailyLog{
		logOn(day(2024, 3, 3), domain.MetricSteps, 1),
		logOn(day(2024, 3, 4), domain.MetricSteps, 2),
		logOn(day(2024, 3, 10), domain.MetricSteps, 3),
		logOn(day(2024, 3, 11), domain.MetricSteps, 4),
		{UserID: "u1", Metric: domain.MetricSteps, Value: 5},
	}

	filtered := domain.FilterLogs(logs, week)

	require.Len(t, filtered, 2)
	assert.Equal(t, 2.0, filtered[0].Value)
	assert.Equal(t, 3.0, filtered[1].Value)
}

func TestFilterLogs_LocalPeriod(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	now := time.Date(2024, 3, 6, 9, 0, 0, 0, loc)
	week, err := domain.ComputeBasePeriod(domain.PeriodWeek, now)
	require.NoError(t, err)

	logs := []domain.DailyLog{logOn(day(2024, 3, 4), domain.MetricSteps, 1)}

	assert.Len(t, domain.FilterLogs(logs, week), 1, "a Monday log belongs to the local Monday")
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "Mar 4 - Mar 10", domain.FormatRange(day(2024, 3, 4), day(2024, 3, 10)))
	assert.Equal(t, "Dec 30 - Jan 5", domain.FormatRange(day(2024, 12, 30), day(2025, 1, 5)))

	end := time.Date(2024, 2, 29, 23, 59, 59, 999000000, time.UTC)
	assert.Equal(t, "Feb 1 - Feb 29", domain.FormatRange(day(2024, 2, 1), end))
}

func TestRangeFormatter_Locale(t *testing.T) {
	f := domain.NewRangeFormatter(it.New())

	label := f.Format(day(2024, 3, 4), day(2024, 3, 10))

	assert.Equal(t, "it", f.Locale())
	assert.Regexp(t, `^4 \S+ - 10 \S+$`, label, "day comes before the month")
	assert.NotEqual(t, "Mar 4 - Mar 10", label)
}
