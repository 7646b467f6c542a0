package models

import "time"

const (
	MinAnalyticsYear = 1970
	MaxAnalyticsYear = 9999
)

type CrimeTypeCount struct {
	Crime string
	Count int
}

type StatusCount struct {
	Status FirStatus
	Count  int
}

type PriorityCount struct {
	Priority int
	Count    int
}

type MonthlyCount struct {
	Month int
	Count int
}

type TimeRange struct {
	Start time.Time
	End   time.Time
}

func (r TimeRange) Validate() error {
	errs := FieldValidationError{}
	if r.Start.IsZero() {
		errs.Add("start", "is required")
	}
	if r.End.IsZero() {
		errs.Add("end", "is required")
	}
	if !r.Start.IsZero() && !r.End.IsZero() && r.Start.After(r.End) {
		errs.Add("start", "must not be after end")
	}
	return errs.OrNil()
}

type TimeRangeAnalytics struct {
	Start                     time.Time
	End                       time.Time
	TotalFirs                 int
	StatusDistribution        []StatusCount
	PriorityDistribution      []PriorityCount
	CrimeTypeDistribution     []CrimeTypeCount
	AverageProcessingTimeDays float64
}

func ValidateAnalyticsYear(year int) error {
	if year < MinAnalyticsYear || year > MaxAnalyticsYear {
		return FieldValidationError{"year": "must be between 1970 and 9999"}
	}
	return nil
}

// ZeroFilledMonths turns sparse per-month counts into exactly twelve entries.
func ZeroFilledMonths(counts map[int]int) []MonthlyCount {
	months := make([]MonthlyCount, 12)
	for i := range months {
		months[i] = MonthlyCount{Month: i + 1, Count: counts[i+1]}
	}
	return months
}
