package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/yash314314/finance-tracking/internal/dto"
	"github.com/yash314314/finance-tracking/internal/errs"
	"github.com/yash314314/finance-tracking/internal/models"
	"github.com/yash314314/finance-tracking/internal/types"
)

type budgetStore interface {
	List(ctx context.Context) ([]models.Budget, error)
	Create(ctx context.Context, b *models.Budget) error
	Update(ctx context.Context, b *models.Budget) error
	Delete(ctx context.Context, id string) error
}

type budgetService struct {
	store budgetStore
}

func NewBudgetService(store budgetStore) *budgetService {
	return &budgetService{store: store}
}

func (s *budgetService) List(ctx context.Context) ([]models.Budget, error) {
	return s.store.List(ctx)
}

func (s *budgetService) Create(ctx context.Context, fields dto.BudgetFields) (*models.Budget, error) {
	b, err := buildBudget(fields)
	if err != nil {
		return nil, err
	}
	b.BudgetID = uuid.New().String()
	if err := s.store.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *budgetService) Update(ctx context.Context, id string, fields dto.BudgetFields) (*models.Budget, error) {
	b, err := buildBudget(fields)
	if err != nil {
		return nil, err
	}
	b.BudgetID = id
	if err := s.store.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *budgetService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func buildBudget(fields dto.BudgetFields) (*models.Budget, error) {
	var violations []string

	month, err := types.ParseMonth(fields.Month)
	if err != nil {
		violations = append(violations, "month must be in YYYY-MM format")
	}

	if strings.TrimSpace(fields.Category) == "" {
		violations = append(violations, "category is required")
	}

	if fields.BudgetAmount < 0 {
		violations = append(violations, "budget amount must be a non-negative number")
	}

	if len(violations) > 0 {
		return nil, errs.NewValidationError(violations...)
	}

	return &models.Budget{
		Month:        month.String(),
		Category:     fields.Category,
		BudgetAmount: fields.BudgetAmount,
	}, nil
}
