package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a single spending record attributed to one budget. The
// BudgetID may dangle if the budget was deleted out from under it;
// consumers must filter such orphans.
type Expense struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	BudgetID  uuid.UUID       `json:"budgetId"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Expense sort fields
type ExpenseSortField string

const (
	SortByDate   ExpenseSortField = "date"
	SortByAmount ExpenseSortField = "amount"
	SortByName   ExpenseSortField = "name"
)

// ExpenseFilter narrows and orders an expense listing
type ExpenseFilter struct {
	BudgetID   *uuid.UUID       // nil = all budgets
	SearchTerm string           // case-insensitive substring match on name
	SortBy     ExpenseSortField // defaults to date
	Descending bool
}

type ExpenseRepository interface {
	GetAll(ctx context.Context) ([]Expense, error)
	SaveAll(ctx context.Context, expenses []Expense) error
}
