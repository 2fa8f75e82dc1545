package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/expensify-app/expensify-backend/internal/domain"
	"github.com/expensify-app/expensify-backend/internal/testutil"
	"github.com/google/uuid"
)

func TestExpenseRepositoryRoundTrip(t *testing.T) {
	repo := NewExpenseRepository(testutil.NewMemoryStore())
	ctx := context.Background()

	budgetID := uuid.New()
	in := []domain.Expense{
		testutil.MakeExpense("Shop", "82.40", budgetID),
		testutil.MakeExpense("Market", "12", budgetID),
	}
	if err := repo.SaveAll(ctx, in); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}

	out, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(out))
	}
	if out[0].ID != in[0].ID || out[1].BudgetID != budgetID {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestExpenseRepositoryReadFailureIsEmpty(t *testing.T) {
	store := testutil.NewMemoryStore()
	repo := NewExpenseRepository(store)
	ctx := context.Background()

	repo.SaveAll(ctx, []domain.Expense{testutil.MakeExpense("Shop", "10", uuid.New())})
	store.GetErr = errors.New("backend down")

	expenses, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("read failures must not propagate, got %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("expected empty slice on read failure, got %d", len(expenses))
	}
}

func TestExpenseRepositoryCorruptValueIsEmpty(t *testing.T) {
	store := testutil.NewMemoryStore()
	repo := NewExpenseRepository(store)
	ctx := context.Background()

	store.Set(ctx, domain.StorageKeyExpenses, []byte("[oops"))

	expenses, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("corrupt values must not propagate, got %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("expected empty slice, got %d", len(expenses))
	}
}
