package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidLog      = errors.New("invalid daily log data")
	ErrInvalidMetric   = errors.New("invalid metric (must be weight, calories, or steps)")
	ErrValueOutOfRange = errors.New("value out of range for metric")
	ErrLogDateRequired = errors.New("log date is required")
)

type Metric string

const (
	MetricWeight   Metric = "weight"
	MetricCalories Metric = "calories"
	MetricSteps    Metric = "steps"
)

// MetricSpec describes the quick-log widget for a metric.
type MetricSpec struct {
	Metric Metric  `json:"metric"`
	Label  string  `json:"label"`
	Unit   string  `json:"unit"`
	Step   float64 `json:"step"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

var metricSpecs = []MetricSpec{
	{Metric: MetricWeight, Label: "Log Weight", Unit: "kg", Step: 0.1, Min: 30, Max: 300},
	{Metric: MetricCalories, Label: "Log Calories", Unit: "kcal", Step: 50, Min: 0, Max: 10000},
	{Metric: MetricSteps, Label: "Log Steps", Unit: "steps", Step: 100, Min: 0, Max: 100000},
}

func MetricSpecs() []MetricSpec {
	out := make([]MetricSpec, len(metricSpecs))
	copy(out, metricSpecs)
	return out
}

func (m Metric) Spec() (MetricSpec, bool) {
	for _, s := range metricSpecs {
		if s.Metric == m {
			return s, true
		}
	}
	return MetricSpec{}, false
}

// DailyLog is one quick-logged value. Date carries a calendar day stored as UTC midnight.
type DailyLog struct {
	ID     string    `json:"id" db:"id"`
	UserID string    `json:"user_id" db:"user_id"`
	Date   time.Time `json:"date" db:"log_date"`
	Metric Metric    `json:"metric" db:"metric"`
	Value  float64   `json:"value" db:"value"`
	Notes  string    `json:"notes" db:"notes"`

	Version   int        `json:"version" db:"version"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

func NewDailyLog(userID string, date time.Time, metric Metric, value float64) *DailyLog {
	now := time.Now().UTC()
	return &DailyLog{
		UserID: userID,
		Date:   CalendarDay(date),
		Metric: metric,
		Value:  value,

		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CalendarDay keeps t's calendar day (in t's own location) and pins it to UTC midnight.
func CalendarDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey is the UTC calendar day of the log. ok is false when the date is unusable.
func (l DailyLog) DateKey() (string, bool) {
	if l.Date.IsZero() {
		return "", false
	}
	return l.Date.UTC().Format(DateLayout), true
}

func (l *DailyLog) Validate() error {
	if strings.TrimSpace(l.UserID) == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidLog)
	}
	if l.Date.IsZero() {
		return ErrLogDateRequired
	}
	spec, ok := l.Metric.Spec()
	if !ok {
		return ErrInvalidMetric
	}
	if l.Value < spec.Min || l.Value > spec.Max {
		return fmt.Errorf("%w: %s must be between %g and %g %s", ErrValueOutOfRange, spec.Metric, spec.Min, spec.Max, spec.Unit)
	}
	return nil
}
