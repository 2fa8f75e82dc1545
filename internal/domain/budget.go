package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is a named spending allocation. Budgets are immutable once
// created except for deletion.
type Budget struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
	Color     string          `json:"color"` // HSL components, e.g. "137.5, 70%, 45%"
}

type BudgetRepository interface {
	GetAll(ctx context.Context) ([]Budget, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Budget, error)
	SaveAll(ctx context.Context, budgets []Budget) error
}
