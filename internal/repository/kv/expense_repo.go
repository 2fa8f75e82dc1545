package kv

import (
	"context"
	"encoding/json"

	"github.com/expensify-app/expensify-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// ExpenseRepository implements domain.ExpenseRepository over a
// KeyValueStore, one JSON array under the "expenses" key. Same
// read-failure policy as BudgetRepository: absent, not fatal.
type ExpenseRepository struct {
	store domain.KeyValueStore
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(store domain.KeyValueStore) *ExpenseRepository {
	return &ExpenseRepository{store: store}
}

// GetAll retrieves every expense in creation order
func (r *ExpenseRepository) GetAll(ctx context.Context) ([]domain.Expense, error) {
	data, found, err := r.store.Get(ctx, domain.StorageKeyExpenses)
	if err != nil {
		log.Warn().Err(err).Str("key", domain.StorageKeyExpenses).Msg("Store read failed, treating as no data")
		return []domain.Expense{}, nil
	}
	if !found {
		return []domain.Expense{}, nil
	}

	var expenses []domain.Expense
	if err := json.Unmarshal(data, &expenses); err != nil {
		log.Warn().Err(err).Str("key", domain.StorageKeyExpenses).Msg("Stored expenses unreadable, treating as no data")
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// SaveAll replaces the stored collection
func (r *ExpenseRepository) SaveAll(ctx context.Context, expenses []domain.Expense) error {
	data, err := json.Marshal(expenses)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, domain.StorageKeyExpenses, data)
}
