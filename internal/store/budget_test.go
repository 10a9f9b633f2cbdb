package store

import (
	"errors"
	"testing"

	"github.com/yash314314/finance-tracking/internal/errs"
	"github.com/yash314314/finance-tracking/internal/models"
	"github.com/yash314314/finance-tracking/pkg/helpers"
)

func TestBudgetStoreWithEmulator(t *testing.T) {
	ctx := helpers.TestCtx()
	client := emulatorClient(t)
	store := NewBudgetStore(client)

	b := &models.Budget{
		BudgetID:     "b-store-1",
		Month:        "2024-02",
		Category:     "Rent",
		BudgetAmount: 1200,
	}
	if err := store.Create(ctx, b); err != nil {
		t.Fatalf("create error: %v", err)
	}
	defer store.Delete(ctx, "b-store-1")

	got, err := store.Get(ctx, "b-store-1")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if got.Month != "2024-02" || got.BudgetAmount != 1200 {
		t.Errorf("unexpected stored record: %+v", got)
	}

	b.BudgetAmount = 1300
	if err := store.Update(ctx, b); err != nil {
		t.Fatalf("update error: %v", err)
	}
	got, err = store.Get(ctx, "b-store-1")
	if err != nil {
		t.Fatalf("get after update error: %v", err)
	}
	if got.BudgetAmount != 1300 {
		t.Errorf("update did not persist: %+v", got)
	}
	if !got.CreatedAt.Equal(b.CreatedAt) {
		t.Errorf("update must preserve CreatedAt")
	}
}

func TestBudgetStoreDuplicatePairWithEmulator(t *testing.T) {
	ctx := helpers.TestCtx()
	client := emulatorClient(t)
	store := NewBudgetStore(client)

	first := &models.Budget{BudgetID: "b-dup-1", Month: "2024-05", Category: "Fun", BudgetAmount: 100}
	if err := store.Create(ctx, first); err != nil {
		t.Fatalf("create error: %v", err)
	}
	defer store.Delete(ctx, "b-dup-1")

	second := &models.Budget{BudgetID: "b-dup-2", Month: "2024-05", Category: "Fun", BudgetAmount: 200}
	err := store.Create(ctx, second)
	var derr *errs.DuplicateBudgetError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DuplicateBudgetError, got %v", err)
	}

	// A different month with the same category is a distinct pair.
	third := &models.Budget{BudgetID: "b-dup-3", Month: "2024-06", Category: "Fun", BudgetAmount: 200}
	if err := store.Create(ctx, third); err != nil {
		t.Fatalf("create for distinct pair error: %v", err)
	}
	defer store.Delete(ctx, "b-dup-3")
}

func TestBudgetStoreUpdateOntoExistingPairWithEmulator(t *testing.T) {
	ctx := helpers.TestCtx()
	client := emulatorClient(t)
	store := NewBudgetStore(client)

	rent := &models.Budget{BudgetID: "b-move-1", Month: "2024-07", Category: "Rent", BudgetAmount: 1200}
	fun := &models.Budget{BudgetID: "b-move-2", Month: "2024-07", Category: "Fun", BudgetAmount: 100}
	for _, b := range []*models.Budget{rent, fun} {
		if err := store.Create(ctx, b); err != nil {
			t.Fatalf("seed error: %v", err)
		}
		defer store.Delete(ctx, b.BudgetID)
	}

	// Moving fun onto rent's pair must be rejected.
	moved := &models.Budget{BudgetID: "b-move-2", Month: "2024-07", Category: "Rent", BudgetAmount: 100}
	err := store.Update(ctx, moved)
	var derr *errs.DuplicateBudgetError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DuplicateBudgetError, got %v", err)
	}

	// Updating a budget in place keeps its own pair and succeeds.
	rent.BudgetAmount = 1250
	if err := store.Update(ctx, rent); err != nil {
		t.Fatalf("in-place update error: %v", err)
	}
}

func TestBudgetStoreListOrderWithEmulator(t *testing.T) {
	ctx := helpers.TestCtx()
	client := emulatorClient(t)
	store := NewBudgetStore(client)

	seeds := []*models.Budget{
		{BudgetID: "b-list-1", Month: "2024-08", Category: "Rent", BudgetAmount: 1},
		{BudgetID: "b-list-2", Month: "2024-09", Category: "Fun", BudgetAmount: 2},
		{BudgetID: "b-list-3", Month: "2024-09", Category: "Rent", BudgetAmount: 3},
	}
	for _, b := range seeds {
		if err := store.Create(ctx, b); err != nil {
			t.Fatalf("seed error: %v", err)
		}
		defer store.Delete(ctx, b.BudgetID)
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}

	idx := map[string]int{}
	for i, b := range got {
		idx[b.BudgetID] = i
	}
	for _, id := range []string{"b-list-1", "b-list-2", "b-list-3"} {
		if _, ok := idx[id]; !ok {
			t.Fatalf("seeded budget %s missing from list", id)
		}
	}
	if !(idx["b-list-2"] < idx["b-list-3"] && idx["b-list-3"] < idx["b-list-1"]) {
		t.Errorf("expected month desc then category asc, got %v", idx)
	}
}
