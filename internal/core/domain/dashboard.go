package domain

import (
	"math"
	"sort"
)

type Dashboard struct {
	Period   Period           `json:"period"`
	Label    string           `json:"label"`
	Locale   string           `json:"locale"`
	Logs     []DailyLog       `json:"logs"`
	Weight   WeightSummary    `json:"weight"`
	Calories TargetSummary    `json:"calories"`
	Steps    TargetSummary    `json:"steps"`
	Widgets  []QuickLogWidget `json:"widgets"`
}

type QuickLogWidget struct {
	MetricSpec
	DefaultValue float64 `json:"default_value"`
}

type WeightSummary struct {
	CurrentWeight    float64  `json:"current_weight"`
	TargetWeight     float64  `json:"target_weight"`
	LatestLogged     *float64 `json:"latest_logged,omitempty"`
	Change           float64  `json:"change"`
	DistanceToTarget float64  `json:"distance_to_target"`
	Entries          int      `json:"entries"`
}

type TargetSummary struct {
	Metric          Metric  `json:"metric"`
	DailyTarget     int     `json:"daily_target"`
	Total           float64 `json:"total"`
	Average         float64 `json:"average"`
	DaysLogged      int     `json:"days_logged"`
	DaysOnTarget    int     `json:"days_on_target"`
	PeriodTarget    float64 `json:"period_target"`
	RemainingTarget float64 `json:"remaining_target"`
	DailyNeeded     float64 `json:"daily_needed"`
}

func QuickLogWidgets(p *Profile) []QuickLogWidget {
	specs := MetricSpecs()
	widgets := make([]QuickLogWidget, 0, len(specs))
	for _, s := range specs {
		widgets = append(widgets, QuickLogWidget{MetricSpec: s, DefaultValue: p.DefaultFor(s.Metric)})
	}
	return widgets
}

// SummarizeWeight expects logs already filtered to the displayed period.
func SummarizeWeight(p *Profile, logs []DailyLog) WeightSummary {
	var weights []DailyLog
	for _, l := range logs {
		if l.Metric == MetricWeight {
			weights = append(weights, l)
		}
	}

	sort.SliceStable(weights, func(i, j int) bool {
		if weights[i].Date.Equal(weights[j].Date) {
			return weights[i].CreatedAt.Before(weights[j].CreatedAt)
		}
		return weights[i].Date.Before(weights[j].Date)
	})

	summary := WeightSummary{
		CurrentWeight: p.CurrentWeight,
		TargetWeight:  p.TargetWeight,
		Entries:       len(weights),
	}

	reference := p.CurrentWeight
	if len(weights) > 0 {
		latest := weights[len(weights)-1].Value
		summary.LatestLogged = &latest
		summary.Change = round1(latest - weights[0].Value)
		reference = latest
	}
	summary.DistanceToTarget = round1(reference - p.TargetWeight)

	return summary
}

// SummarizeTarget aggregates calories or steps per calendar day against a daily target.
// A calorie day is on target at or below the target, a steps day at or above it.
func SummarizeTarget(metric Metric, dailyTarget int, logs []DailyLog, period Period) TargetSummary {
	perDay := make(map[string]float64)
	for _, l := range logs {
		if l.Metric != metric {
			continue
		}
		key, ok := l.DateKey()
		if !ok {
			continue
		}
		perDay[key] += l.Value
	}

	summary := TargetSummary{
		Metric:       metric,
		DailyTarget:  dailyTarget,
		DaysLogged:   len(perDay),
		PeriodTarget: float64(dailyTarget * period.DaysInPeriod),
	}

	target := float64(dailyTarget)
	for _, total := range perDay {
		summary.Total += total
		switch metric {
		case MetricCalories:
			if total <= target {
				summary.DaysOnTarget++
			}
		default:
			if total >= target {
				summary.DaysOnTarget++
			}
		}
	}

	if summary.DaysLogged > 0 {
		summary.Average = round1(summary.Total / float64(summary.DaysLogged))
	}

	summary.RemainingTarget = math.Max(0, summary.PeriodTarget-summary.Total)
	if period.RemainingDaysForLogs > 0 {
		summary.DailyNeeded = round1(summary.RemainingTarget / float64(period.RemainingDaysForLogs))
	}

	return summary
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
