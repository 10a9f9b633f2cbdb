package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yash314314/finance-tracking/internal/dto"
	"github.com/yash314314/finance-tracking/internal/errs"
	"github.com/yash314314/finance-tracking/internal/models"
)

type stubBudgetService struct {
	listCalled   bool
	createCalled bool
	updateCalled bool
	deleteCalled bool

	id     string
	fields dto.BudgetFields

	budgets []models.Budget
	budget  *models.Budget
	err     error
}

func (s *stubBudgetService) List(ctx context.Context) ([]models.Budget, error) {
	s.listCalled = true
	return s.budgets, s.err
}

func (s *stubBudgetService) Create(ctx context.Context, fields dto.BudgetFields) (*models.Budget, error) {
	s.createCalled = true
	s.fields = fields
	return s.budget, s.err
}

func (s *stubBudgetService) Update(ctx context.Context, id string, fields dto.BudgetFields) (*models.Budget, error) {
	s.updateCalled = true
	s.id = id
	s.fields = fields
	return s.budget, s.err
}

func (s *stubBudgetService) Delete(ctx context.Context, id string) error {
	s.deleteCalled = true
	s.id = id
	return s.err
}

func TestListBudgetsHandler(t *testing.T) {
	svc := &stubBudgetService{budgets: []models.Budget{{BudgetID: "b-1"}}}
	resp := &stubResponseHandler{}
	h := NewBudgetHandlers(&Deps{ResponseHandler: resp, BudgetSvc: svc})

	rr := httptest.NewRecorder()
	h.ListBudgets(rr, testRequest(http.MethodGet, "/budgets", ""))

	if !svc.listCalled {
		t.Fatalf("expected service List to be called")
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("WriteSuccess not called with status 200")
	}
}

func TestCreateBudgetHandler(t *testing.T) {
	svc := &stubBudgetService{budget: &models.Budget{BudgetID: "b-1"}}
	resp := &stubResponseHandler{}
	h := NewBudgetHandlers(&Deps{ResponseHandler: resp, BudgetSvc: svc})

	body := `{"month":"2024-02","category":"Rent","budgetAmount":1200}`
	rr := httptest.NewRecorder()
	h.CreateBudget(rr, testRequest(http.MethodPost, "/budgets", body))

	if !svc.createCalled {
		t.Fatalf("expected service Create to be called")
	}
	if svc.fields.Month != "2024-02" || svc.fields.BudgetAmount != 1200 {
		t.Fatalf("service called with unexpected fields: %+v", svc.fields)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusCreated {
		t.Fatalf("WriteSuccess not called with status 201")
	}
}

func TestCreateBudgetHandlerInvalidJSON(t *testing.T) {
	svc := &stubBudgetService{}
	resp := &stubResponseHandler{}
	h := NewBudgetHandlers(&Deps{ResponseHandler: resp, BudgetSvc: svc})

	rr := httptest.NewRecorder()
	h.CreateBudget(rr, testRequest(http.MethodPost, "/budgets", "{"))

	if svc.createCalled {
		t.Fatalf("service should not be called on invalid JSON")
	}
	if !resp.handleErrorCalled {
		t.Fatalf("expected HandleError to be called")
	}
}

func TestCreateBudgetHandlerDuplicate(t *testing.T) {
	svc := &stubBudgetService{err: errs.NewDuplicateBudgetError("2024-02", "Rent")}
	resp := &stubResponseHandler{}
	h := NewBudgetHandlers(&Deps{ResponseHandler: resp, BudgetSvc: svc})

	body := `{"month":"2024-02","category":"Rent","budgetAmount":1200}`
	rr := httptest.NewRecorder()
	h.CreateBudget(rr, testRequest(http.MethodPost, "/budgets", body))

	if !resp.handleErrorCalled {
		t.Fatalf("expected HandleError to be called")
	}
	var derr *errs.DuplicateBudgetError
	if !errors.As(resp.handleError, &derr) {
		t.Fatalf("expected DuplicateBudgetError, got %v", resp.handleError)
	}
}

func TestUpdateBudgetHandler(t *testing.T) {
	svc := &stubBudgetService{budget: &models.Budget{BudgetID: "b-1"}}
	resp := &stubResponseHandler{}
	h := NewBudgetHandlers(&Deps{ResponseHandler: resp, BudgetSvc: svc})

	body := `{"month":"2024-03","category":"Groceries","budgetAmount":400}`
	req := withChiParam(testRequest(http.MethodPut, "/budgets/b-1", body), "budgetId", "b-1")
	rr := httptest.NewRecorder()
	h.UpdateBudget(rr, req)

	if !svc.updateCalled || svc.id != "b-1" {
		t.Fatalf("expected Update(b-1), got %+v", svc)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("WriteSuccess not called with status 200")
	}
}

func TestDeleteBudgetHandler(t *testing.T) {
	svc := &stubBudgetService{}
	resp := &stubResponseHandler{}
	h := NewBudgetHandlers(&Deps{ResponseHandler: resp, BudgetSvc: svc})

	req := withChiParam(testRequest(http.MethodDelete, "/budgets/b-2", ""), "budgetId", "b-2")
	rr := httptest.NewRecorder()
	h.DeleteBudget(rr, req)

	if !svc.deleteCalled || svc.id != "b-2" {
		t.Fatalf("expected Delete(b-2), got %+v", svc)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("WriteSuccess not called with status 200")
	}
}
