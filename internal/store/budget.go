package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/yash314314/finance-tracking/internal/errs"
	"github.com/yash314314/finance-tracking/internal/models"
)

type budgetStore struct {
	client *firestore.Client
}

func NewBudgetStore(client *firestore.Client) *budgetStore {
	return &budgetStore{client: client}
}

func (s *budgetStore) collection() *firestore.CollectionRef {
	return s.client.Collection("budgets")
}

// List returns the full collection, newest month first, categories ordered
// within a month.
func (s *budgetStore) List(ctx context.Context) ([]models.Budget, error) {
	docs, err := s.collection().
		OrderBy("month", firestore.Desc).
		OrderBy("category", firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, classify(err, "budgets not found")
	}

	budgets := make([]models.Budget, 0, len(docs))
	for _, d := range docs {
		var b models.Budget
		if err := d.DataTo(&b); err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, nil
}

func (s *budgetStore) Get(ctx context.Context, id string) (*models.Budget, error) {
	doc, err := s.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, classify(err, "budget not found")
	}
	var b models.Budget
	if err := doc.DataTo(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts a new budget. The one-budget-per-(month, category) invariant
// is enforced inside a Firestore transaction: concurrent creates for the same
// pair serialize on the query read set and the loser retries against the
// committed document.
func (s *budgetStore) Create(ctx context.Context, b *models.Budget) error {
	ref := s.collection().Doc(b.BudgetID)
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		existing, err := s.findPair(tx, b.Month, b.Category)
		if err != nil {
			return err
		}
		if existing != "" {
			return errs.NewDuplicateBudgetError(b.Month, b.Category)
		}
		return tx.Create(ref, b)
	})
	return classify(err, "budget not found")
}

// Update replaces the full record, keeping the uniqueness invariant when the
// update moves the budget to a different (month, category) pair.
func (s *budgetStore) Update(ctx context.Context, b *models.Budget) error {
	ref := s.collection().Doc(b.BudgetID)

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}
		existing, err := s.findPair(tx, b.Month, b.Category)
		if err != nil {
			return err
		}
		if existing != "" && existing != b.BudgetID {
			return errs.NewDuplicateBudgetError(b.Month, b.Category)
		}

		var prev models.Budget
		if err := doc.DataTo(&prev); err != nil {
			return err
		}
		b.CreatedAt = prev.CreatedAt
		b.UpdatedAt = time.Now()
		return tx.Set(ref, b)
	})
	return classify(err, "budget not found")
}

func (s *budgetStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	_, err := s.collection().Doc(id).Delete(ctx)
	return classify(err, "budget not found")
}

// findPair returns the document ID holding the given (month, category) pair,
// or "" if none exists.
func (s *budgetStore) findPair(tx *firestore.Transaction, month, category string) (string, error) {
	q := s.collection().
		Where("month", "==", month).
		Where("category", "==", category).
		Limit(1)
	docs, err := tx.Documents(q).GetAll()
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "", nil
	}
	return docs[0].Ref.ID, nil
}
