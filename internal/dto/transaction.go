package dto

// TransactionFields carries the user-settable fields of a transaction.
// Used for both create and full-record update.
type TransactionFields struct {
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
}
