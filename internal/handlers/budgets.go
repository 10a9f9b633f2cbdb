package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yash314314/finance-tracking/internal/dto"
	"github.com/yash314314/finance-tracking/internal/errs"
	"github.com/yash314314/finance-tracking/internal/models"
	"github.com/yash314314/finance-tracking/internal/response"
)

type budgetService interface {
	List(ctx context.Context) ([]models.Budget, error)
	Create(ctx context.Context, fields dto.BudgetFields) (*models.Budget, error)
	Update(ctx context.Context, id string, fields dto.BudgetFields) (*models.Budget, error)
	Delete(ctx context.Context, id string) error
}

type budgetHandlers struct {
	ResponseHandler response.ResponseHandler
	BudgetSvc       budgetService
}

func NewBudgetHandlers(deps *Deps) *budgetHandlers {
	return &budgetHandlers{
		ResponseHandler: deps.ResponseHandler,
		BudgetSvc:       deps.BudgetSvc,
	}
}

func (h *budgetHandlers) BudgetRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListBudgets)
	r.Post("/", h.CreateBudget)
	r.Put("/{budgetId}", h.UpdateBudget)
	r.Delete("/{budgetId}", h.DeleteBudget)
	return r
}

func (h *budgetHandlers) ListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.BudgetSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, budgets)
}

func (h *budgetHandlers) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var fields dto.BudgetFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("request body must be valid JSON"))
		return
	}
	b, err := h.BudgetSvc.Create(r.Context(), fields)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, b)
}

func (h *budgetHandlers) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "budgetId")
	var fields dto.BudgetFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("request body must be valid JSON"))
		return
	}
	b, err := h.BudgetSvc.Update(r.Context(), id, fields)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, b)
}

func (h *budgetHandlers) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "budgetId")
	if err := h.BudgetSvc.Delete(r.Context(), id); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
