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

type transactionService interface {
	List(ctx context.Context) ([]models.Transaction, error)
	Create(ctx context.Context, fields dto.TransactionFields) (*models.Transaction, error)
	Update(ctx context.Context, id string, fields dto.TransactionFields) (*models.Transaction, error)
	Delete(ctx context.Context, id string) error
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	TransactionSvc  transactionService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		TransactionSvc:  deps.TransactionSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListTransactions)
	r.Post("/", h.CreateTransaction)
	r.Put("/{transactionId}", h.UpdateTransaction)
	r.Delete("/{transactionId}", h.DeleteTransaction)
	return r
}

func (h *transactionHandlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := h.TransactionSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, txns)
}

func (h *transactionHandlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var fields dto.TransactionFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("request body must be valid JSON"))
		return
	}
	t, err := h.TransactionSvc.Create(r.Context(), fields)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, t)
}

func (h *transactionHandlers) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "transactionId")
	var fields dto.TransactionFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("request body must be valid JSON"))
		return
	}
	t, err := h.TransactionSvc.Update(r.Context(), id, fields)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, t)
}

func (h *transactionHandlers) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "transactionId")
	if err := h.TransactionSvc.Delete(r.Context(), id); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
