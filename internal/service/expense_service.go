package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/expensify-app/expensify-backend/internal/domain"
	"github.com/expensify-app/expensify-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseService handles expense business logic
type ExpenseService struct {
	expenseRepo domain.ExpenseRepository
	budgetRepo  domain.BudgetRepository
	publisher   websocket.EventPublisher
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo domain.ExpenseRepository, budgetRepo domain.BudgetRepository, publisher websocket.EventPublisher) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		publisher:   publisher,
	}
}

// CreateExpense records a new expense against an existing budget
func (s *ExpenseService) CreateExpense(ctx context.Context, name string, amount decimal.Decimal, budgetID uuid.UUID) (*domain.Expense, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxExpenseNameLength {
		return nil, domain.ErrNameTooLong
	}
	if amount.IsNegative() {
		return nil, domain.ErrNegativeAmount
	}

	// The referenced budget must exist at creation time
	if _, err := s.budgetRepo.GetByID(ctx, budgetID); err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	expense := domain.Expense{
		ID:        uuid.New(),
		Name:      name,
		Amount:    amount,
		BudgetID:  budgetID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.expenseRepo.SaveAll(ctx, append(expenses, expense)); err != nil {
		return nil, err
	}

	s.publisher.Publish(websocket.ExpenseCreated(expense))
	return &expense, nil
}

// DeleteExpense removes a single expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	expenses, err := s.expenseRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	kept := make([]domain.Expense, 0, len(expenses))
	found := false
	for _, e := range expenses {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return domain.ErrExpenseNotFound
	}

	if err := s.expenseRepo.SaveAll(ctx, kept); err != nil {
		return err
	}

	s.publisher.Publish(websocket.ExpenseDeleted(map[string]string{"id": id.String()}))
	return nil
}

// GetExpenses retrieves all expenses in creation order
func (s *ExpenseService) GetExpenses(ctx context.Context) ([]domain.Expense, error) {
	return s.expenseRepo.GetAll(ctx)
}

// GetExpensesByBudget retrieves the expenses recorded against one budget
func (s *ExpenseService) GetExpensesByBudget(ctx context.Context, budgetID uuid.UUID) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.BudgetID == budgetID {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// FilterExpenses narrows and orders expenses, returning the matches and
// their total amount.
func (s *ExpenseService) FilterExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, decimal.Decimal, error) {
	expenses, err := s.expenseRepo.GetAll(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.SearchTerm))
	matched := make([]domain.Expense, 0, len(expenses))
	total := decimal.Zero
	for _, e := range expenses {
		if search != "" && !strings.Contains(strings.ToLower(e.Name), search) {
			continue
		}
		if filter.BudgetID != nil && e.BudgetID != *filter.BudgetID {
			continue
		}
		matched = append(matched, e)
		total = total.Add(e.Amount)
	}

	sortExpenses(matched, filter.SortBy, filter.Descending)
	return matched, total, nil
}

func sortExpenses(expenses []domain.Expense, field domain.ExpenseSortField, descending bool) {
	less := func(a, b domain.Expense) bool { return a.CreatedAt.Before(b.CreatedAt) }
	switch field {
	case domain.SortByAmount:
		less = func(a, b domain.Expense) bool { return a.Amount.LessThan(b.Amount) }
	case domain.SortByName:
		less = func(a, b domain.Expense) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		if descending {
			return less(expenses[j], expenses[i])
		}
		return less(expenses[i], expenses[j])
	})
}
