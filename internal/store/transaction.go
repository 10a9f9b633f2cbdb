package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/yash314314/finance-tracking/internal/models"
)

type transactionStore struct {
	client *firestore.Client
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{client: client}
}

func (s *transactionStore) collection() *firestore.CollectionRef {
	return s.client.Collection("transactions")
}

// List returns the full collection, newest date first.
func (s *transactionStore) List(ctx context.Context) ([]models.Transaction, error) {
	docs, err := s.collection().OrderBy("date", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, classify(err, "transactions not found")
	}

	txs := make([]models.Transaction, 0, len(docs))
	for _, d := range docs {
		var t models.Transaction
		if err := d.DataTo(&t); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, nil
}

func (s *transactionStore) Get(ctx context.Context, id string) (*models.Transaction, error) {
	doc, err := s.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, classify(err, "transaction not found")
	}
	var t models.Transaction
	if err := doc.DataTo(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *transactionStore) Create(ctx context.Context, t *models.Transaction) error {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	_, err := s.collection().Doc(t.TransactionID).Create(ctx, t)
	return classify(err, "transaction not found")
}

// Update replaces the full record. The original CreatedAt is preserved.
func (s *transactionStore) Update(ctx context.Context, t *models.Transaction) error {
	prev, err := s.Get(ctx, t.TransactionID)
	if err != nil {
		return err
	}
	t.CreatedAt = prev.CreatedAt
	t.UpdatedAt = time.Now()
	_, err = s.collection().Doc(t.TransactionID).Set(ctx, t)
	return classify(err, "transaction not found")
}

func (s *transactionStore) Delete(ctx context.Context, id string) error {
	// Firestore deletes are no-ops for missing documents; read first so the
	// caller gets a NotFoundError for unknown ids.
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	_, err := s.collection().Doc(id).Delete(ctx)
	return classify(err, "transaction not found")
}
