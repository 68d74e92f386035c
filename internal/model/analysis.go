package model

import "time"

// CategoryShare is a category total together with its percentage of the
// period's spending.
type CategoryShare struct {
	Category   string
	Total      float64
	Percentage float64
}

// MonthlyAnalysis is a monthly summary augmented with per-category
// percentages.
type MonthlyAnalysis struct {
	Breakdown     []CategoryShare
	TotalExpenses float64
	Year          int
	Month         int
}

// MonthStat is one non-zero month in a yearly analysis.
type MonthStat struct {
	Total            float64
	Month            int
	Year             int
	TransactionCount int
}

// YearlyAnalysis reports spending statistics across a year's non-zero months.
type YearlyAnalysis struct {
	MostExpensive  *MonthStat
	LeastExpensive *MonthStat
	MonthlyTotals  []MonthStat
	TotalExpenses  float64
	MonthlyAverage float64
	Year           int
}

// TrendPoint is one month of a category trend, most recent month first.
type TrendPoint struct {
	Total      float64
	Percentage float64
	Month      int
	Year       int
}

// SpendingReport summarizes expenses inside an inclusive date range.
type SpendingReport struct {
	CategoryDistribution  map[string]float64
	Start                 time.Time
	End                   time.Time
	TotalExpenses         float64
	AveragePerTransaction float64
	TransactionCount      int
	MostCommonWeekday     time.Weekday
	WeekdayCount          int
}
