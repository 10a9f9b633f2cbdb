package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yash314314/finance-tracking/internal/dto"
	"github.com/yash314314/finance-tracking/internal/errs"
	"github.com/yash314314/finance-tracking/internal/response"
	"github.com/yash314314/finance-tracking/internal/services"
	"github.com/yash314314/finance-tracking/internal/types"
)

type reportService interface {
	GetSummary(ctx context.Context) (dto.Summary, error)
	GetMonthlyExpenses(ctx context.Context) ([]dto.MonthlyExpensePoint, error)
	GetCategoryBreakdown(ctx context.Context, month types.Month, order services.CategoryOrder) ([]dto.CategorySlice, error)
	GetBudgetComparison(ctx context.Context, month types.Month) ([]dto.BudgetComparisonRow, error)
	GetInsights(ctx context.Context) ([]dto.Insight, error)
}

type reportHandlers struct {
	ResponseHandler response.ResponseHandler
	ReportSvc       reportService
}

func NewReportHandlers(deps *Deps) *reportHandlers {
	return &reportHandlers{
		ResponseHandler: deps.ResponseHandler,
		ReportSvc:       deps.ReportSvc,
	}
}

func (h *reportHandlers) ReportRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/summary", h.GetSummary)
	r.Get("/monthly-expenses", h.GetMonthlyExpenses)
	r.Get("/categories", h.GetCategoryBreakdown)
	r.Get("/budget-comparison", h.GetBudgetComparison)
	r.Get("/insights", h.GetInsights)
	return r
}

func (h *reportHandlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.ReportSvc.GetSummary(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, summary)
}

func (h *reportHandlers) GetMonthlyExpenses(w http.ResponseWriter, r *http.Request) {
	points, err := h.ReportSvc.GetMonthlyExpenses(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, points)
}

func (h *reportHandlers) GetCategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	month, err := monthParam(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	// Without an explicit sort the all-time view gets largest-first (the pie
	// chart) and the single-month view gets alphabetical (the comparison).
	var order services.CategoryOrder
	switch r.URL.Query().Get("sort") {
	case "total":
		order = services.OrderTotalDesc
	case "category":
		order = services.OrderCategoryAsc
	case "":
		order = services.OrderTotalDesc
		if !month.IsZero() {
			order = services.OrderCategoryAsc
		}
	default:
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError(`sort must be "total" or "category"`))
		return
	}

	slices, err := h.ReportSvc.GetCategoryBreakdown(r.Context(), month, order)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, slices)
}

func (h *reportHandlers) GetBudgetComparison(w http.ResponseWriter, r *http.Request) {
	month, err := monthParam(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	rows, err := h.ReportSvc.GetBudgetComparison(r.Context(), month)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, rows)
}

func (h *reportHandlers) GetInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.ReportSvc.GetInsights(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, insights)
}

// monthParam parses the optional ?month=YYYY-MM query parameter. The zero
// Month means the parameter was absent.
func monthParam(r *http.Request) (types.Month, error) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return types.Month{}, nil
	}
	month, err := types.ParseMonth(raw)
	if err != nil {
		return types.Month{}, errs.NewValidationError("month must be in YYYY-MM format")
	}
	return month, nil
}
