package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/yash314314/finance-tracking/internal/dto"
	"github.com/yash314314/finance-tracking/internal/errs"
	"github.com/yash314314/finance-tracking/internal/models"
)

const dateLayout = "2006-01-02"

// transactionStore is the persistence interface consumed by the service.
type transactionStore interface {
	List(ctx context.Context) ([]models.Transaction, error)
	Create(ctx context.Context, t *models.Transaction) error
	Update(ctx context.Context, t *models.Transaction) error
	Delete(ctx context.Context, id string) error
}

type transactionService struct {
	store transactionStore
}

func NewTransactionService(store transactionStore) *transactionService {
	return &transactionService{store: store}
}

func (s *transactionService) List(ctx context.Context) ([]models.Transaction, error) {
	return s.store.List(ctx)
}

func (s *transactionService) Create(ctx context.Context, fields dto.TransactionFields) (*models.Transaction, error) {
	t, err := buildTransaction(fields)
	if err != nil {
		return nil, err
	}
	t.TransactionID = uuid.New().String()
	if err := s.store.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *transactionService) Update(ctx context.Context, id string, fields dto.TransactionFields) (*models.Transaction, error) {
	t, err := buildTransaction(fields)
	if err != nil {
		return nil, err
	}
	t.TransactionID = id
	if err := s.store.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *transactionService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// buildTransaction validates every field and reports all violations at once.
func buildTransaction(fields dto.TransactionFields) (*models.Transaction, error) {
	var violations []string

	if fields.Amount <= 0 {
		violations = append(violations, "amount must be a positive number")
	}

	date, err := parseDate(fields.Date)
	if err != nil {
		violations = append(violations, "date must be a valid date")
	}

	description := strings.TrimSpace(fields.Description)
	if n := utf8.RuneCountInString(description); n < 2 || n > 50 {
		violations = append(violations, "description must be between 2 and 50 characters")
	}

	if strings.TrimSpace(fields.Category) == "" {
		violations = append(violations, "category is required")
	}

	if fields.Type != models.TypeExpense && fields.Type != models.TypeIncome {
		violations = append(violations, `type must be "expense" or "income"`)
	}

	if len(violations) > 0 {
		return nil, errs.NewValidationError(violations...)
	}

	return &models.Transaction{
		Amount:      fields.Amount,
		Date:        date.Format(dateLayout),
		Description: description,
		Category:    fields.Category,
		Type:        fields.Type,
	}, nil
}

// parseDate accepts the date-only form used on the wire plus RFC 3339
// timestamps, which older stored records may carry.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
