package dto

// Insight kind constants
const (
	InsightOverBudget       = "over_budget"
	InsightUnderBudget      = "under_budget"
	InsightOnTrack          = "on_track"
	InsightNoBudgets        = "no_budgets"
	InsightIncrease         = "increase"
	InsightDecrease         = "decrease"
	InsightStable           = "stable"
	InsightInsufficientData = "insufficient_data"
)

// Insight is a single derived qualitative fact about spending.
// Category, Amount and PercentChange are populated per kind:
// over/under budget facts carry the category and the overage or margin,
// increase/decrease facts carry the category and the percentage change.
type Insight struct {
	Kind          string  `json:"kind"`
	Category      string  `json:"category,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	PercentChange float64 `json:"percentChange,omitempty"`
	Message       string  `json:"message"`
}
