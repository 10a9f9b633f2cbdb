package models

import "time"

// Budget is a spending ceiling for one category in one calendar month.
// At most one budget exists per (month, category) pair; the store enforces
// the invariant on create and update.
type Budget struct {
	BudgetID     string    `firestore:"budgetId" json:"budgetId"`
	Month        string    `firestore:"month" json:"month"` // YYYY-MM
	Category     string    `firestore:"category" json:"category"`
	BudgetAmount float64   `firestore:"budgetAmount" json:"budgetAmount"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt" json:"updatedAt"`
}
