package models

import (
	"time"
)

// Transaction type values.
const (
	TypeExpense = "expense"
	TypeIncome  = "income"
)

type Transaction struct {
	TransactionID string    `firestore:"transactionId" json:"transactionId"`
	Amount        float64   `firestore:"amount" json:"amount"`
	Date          string    `firestore:"date" json:"date"` // YYYY-MM-DD
	Description   string    `firestore:"description" json:"description"`
	Category      string    `firestore:"category" json:"category"`
	Type          string    `firestore:"type" json:"type"` // expense | income
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt" json:"updatedAt"`
}
