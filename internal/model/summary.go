package model

// CategoryTotal is one row of a grouped category breakdown.
type CategoryTotal struct {
	Category string
	Total    float64
}

// MonthlySummary aggregates a single month's expenses by category.
// A month with no expenses has TotalExpenses 0 and an empty breakdown.
type MonthlySummary struct {
	CategoryBreakdown []CategoryTotal
	TotalExpenses     float64
	Year              int
	Month             int
}

// MonthTotal is one month's slice of a yearly summary.
type MonthTotal struct {
	Total float64
	Month int
	Count int
}

// YearlySummary aggregates a year's expenses by month, ascending by month.
type YearlySummary struct {
	MonthlyBreakdown []MonthTotal
	TotalExpenses    float64
	Year             int
	TransactionCount int
}
