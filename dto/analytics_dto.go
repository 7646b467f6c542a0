package dto

import (
	"time"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/pure_utils"
)

type CrimeTypeCount struct {
	Crime string `json:"crime"`
	Count int    `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

type PriorityCount struct {
	Priority int `json:"priority"`
	Count    int `json:"count"`
}

type MonthlyCount struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

func AdaptCrimeTypeCounts(counts []models.CrimeTypeCount) []CrimeTypeCount {
	return pure_utils.Map(counts, func(c models.CrimeTypeCount) CrimeTypeCount {
		return CrimeTypeCount{Crime: c.Crime, Count: c.Count}
	})
}

func AdaptStatusCounts(counts []models.StatusCount) []StatusCount {
	return pure_utils.Map(counts, func(c models.StatusCount) StatusCount {
		return StatusCount{Status: string(c.Status), Label: c.Status.Label(), Count: c.Count}
	})
}

func AdaptPriorityCounts(counts []models.PriorityCount) []PriorityCount {
	return pure_utils.Map(counts, func(c models.PriorityCount) PriorityCount {
		return PriorityCount{Priority: c.Priority, Count: c.Count}
	})
}

func AdaptMonthlyCounts(counts []models.MonthlyCount) []MonthlyCount {
	return pure_utils.Map(counts, func(c models.MonthlyCount) MonthlyCount {
		return MonthlyCount{Month: c.Month, Count: c.Count}
	})
}

type MonthlyStatsQuery struct {
	Year int `form:"year" binding:"required"`
}

type TimeRangeQuery struct {
	Start time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End   time.Time `form:"end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type TimeRangeAnalytics struct {
	Start                     time.Time        `json:"start"`
	End                       time.Time        `json:"end"`
	TotalFirs                 int              `json:"totalFirs"`
	StatusDistribution        []StatusCount    `json:"statusDistribution"`
	PriorityDistribution      []PriorityCount  `json:"priorityDistribution"`
	CrimeTypeDistribution     []CrimeTypeCount `json:"crimeTypeDistribution"`
	AverageProcessingTimeDays float64          `json:"averageProcessingTimeDays"`
}

func AdaptTimeRangeAnalytics(a models.TimeRangeAnalytics) TimeRangeAnalytics {
	return TimeRangeAnalytics{
		Start:                     a.Start,
		End:                       a.End,
		TotalFirs:                 a.TotalFirs,
		StatusDistribution:        AdaptStatusCounts(a.StatusDistribution),
		PriorityDistribution:      AdaptPriorityCounts(a.PriorityDistribution),
		CrimeTypeDistribution:     AdaptCrimeTypeCounts(a.CrimeTypeDistribution),
		AverageProcessingTimeDays: a.AverageProcessingTimeDays,
	}
}
