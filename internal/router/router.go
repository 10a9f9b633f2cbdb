package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/yash314314/finance-tracking/internal/handlers"
	"github.com/yash314314/finance-tracking/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	txh := handlers.NewTransactionHandlers(deps)
	bgh := handlers.NewBudgetHandlers(deps)
	rph := handlers.NewReportHandlers(deps)

	r.Mount("/transactions", txh.TransactionRoutes())
	r.Mount("/budgets", bgh.BudgetRoutes())
	r.Mount("/reports", rph.ReportRoutes())
	return r
}
