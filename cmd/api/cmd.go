package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/yash314314/finance-tracking/internal/bootstrap"
	"github.com/yash314314/finance-tracking/internal/config"
	"github.com/yash314314/finance-tracking/internal/handlers"
	"github.com/yash314314/finance-tracking/internal/response"
	"github.com/yash314314/finance-tracking/internal/router"
	"github.com/yash314314/finance-tracking/internal/services"
	"github.com/yash314314/finance-tracking/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	tstore := store.NewTransactionStore(bs.Firestore)
	bstore := store.NewBudgetStore(bs.Firestore)

	// services
	tserv := services.NewTransactionService(tstore)
	bserv := services.NewBudgetService(bstore)
	rserv := services.NewReportService(tstore, bstore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.TransactionSvc = tserv
	deps.BudgetSvc = bserv
	deps.ReportSvc = rserv

	// router
	r := router.NewRouter(deps)
	bs.Log.Info("listening", "port", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
