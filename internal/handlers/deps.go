package handlers

import (
	"log/slog"

	"github.com/yash314314/finance-tracking/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	TransactionSvc  transactionService
	BudgetSvc       budgetService
	ReportSvc       reportService
}
