package dto

// BudgetFields carries the user-settable fields of a budget.
type BudgetFields struct {
	Month        string  `json:"month"` // YYYY-MM
	Category     string  `json:"category"`
	BudgetAmount float64 `json:"budgetAmount"`
}
