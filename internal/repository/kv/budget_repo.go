package kv

import (
	"context"
	"encoding/json"

	"github.com/expensify-app/expensify-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BudgetRepository implements domain.BudgetRepository over a
// KeyValueStore, holding the whole collection as one JSON array under
// the "budgets" key. Read failures are logged and treated as an empty
// collection; they never propagate past this boundary.
type BudgetRepository struct {
	store domain.KeyValueStore
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(store domain.KeyValueStore) *BudgetRepository {
	return &BudgetRepository{store: store}
}

// GetAll retrieves every budget in creation order
func (r *BudgetRepository) GetAll(ctx context.Context) ([]domain.Budget, error) {
	data, found, err := r.store.Get(ctx, domain.StorageKeyBudgets)
	if err != nil {
		log.Warn().Err(err).Str("key", domain.StorageKeyBudgets).Msg("Store read failed, treating as no data")
		return []domain.Budget{}, nil
	}
	if !found {
		return []domain.Budget{}, nil
	}

	var budgets []domain.Budget
	if err := json.Unmarshal(data, &budgets); err != nil {
		log.Warn().Err(err).Str("key", domain.StorageKeyBudgets).Msg("Stored budgets unreadable, treating as no data")
		return []domain.Budget{}, nil
	}
	return budgets, nil
}

// GetByID retrieves a single budget
func (r *BudgetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Budget, error) {
	budgets, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range budgets {
		if budgets[i].ID == id {
			return &budgets[i], nil
		}
	}
	return nil, domain.ErrBudgetNotFound
}

// SaveAll replaces the stored collection
func (r *BudgetRepository) SaveAll(ctx context.Context, budgets []domain.Budget) error {
	data, err := json.Marshal(budgets)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, domain.StorageKeyBudgets, data)
}
