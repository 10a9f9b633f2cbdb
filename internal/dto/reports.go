package dto

// MonthlyExpensePoint is one bar of the monthly overview chart.
type MonthlyExpensePoint struct {
	Month string  `json:"month"` // display label, e.g. "Jan 2024"
	Total float64 `json:"total"`
}

// CategorySlice is one slice of the category breakdown.
type CategorySlice struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// BudgetComparisonRow joins the budgeted amount for a category against the
// actual spend in the same month.
type BudgetComparisonRow struct {
	Category     string  `json:"category"`
	Budgeted     float64 `json:"budgeted"`
	Actual       float64 `json:"actual"`
	Difference   float64 `json:"difference"` // budgeted - actual
	IsOverBudget bool    `json:"isOverBudget"`
}

// Summary holds the headline totals over the whole transaction set.
type Summary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetBalance    float64 `json:"netBalance"`
}
