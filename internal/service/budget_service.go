package service

import (
	"context"
	"strings"
	"time"

	"github.com/expensify-app/expensify-backend/internal/domain"
	"github.com/expensify-app/expensify-backend/internal/util"
	"github.com/expensify-app/expensify-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetService handles budget business logic
type BudgetService struct {
	budgetRepo  domain.BudgetRepository
	expenseRepo domain.ExpenseRepository
	publisher   websocket.EventPublisher
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo domain.BudgetRepository, expenseRepo domain.ExpenseRepository, publisher websocket.EventPublisher) *BudgetService {
	return &BudgetService{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
		publisher:   publisher,
	}
}

// CreateBudget creates a new budget with an auto-assigned color
func (s *BudgetService) CreateBudget(ctx context.Context, name string, amount decimal.Decimal) (*domain.Budget, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxBudgetNameLength {
		return nil, domain.ErrNameTooLong
	}
	if amount.IsNegative() {
		return nil, domain.ErrNegativeAmount
	}

	budgets, err := s.budgetRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	budget := domain.Budget{
		ID:        uuid.New(),
		Name:      name,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
		Color:     util.BudgetColor(len(budgets)),
	}

	if err := s.budgetRepo.SaveAll(ctx, append(budgets, budget)); err != nil {
		return nil, err
	}

	s.publisher.Publish(websocket.BudgetCreated(budget))
	return &budget, nil
}

// GetBudgets retrieves all budgets in creation order
func (s *BudgetService) GetBudgets(ctx context.Context) ([]domain.Budget, error) {
	return s.budgetRepo.GetAll(ctx)
}

// GetBudgetByID retrieves a single budget
func (s *BudgetService) GetBudgetByID(ctx context.Context, id uuid.UUID) (*domain.Budget, error) {
	return s.budgetRepo.GetByID(ctx, id)
}

// DeleteBudget removes a budget and cascades deletion of its expenses
func (s *BudgetService) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	budgets, err := s.budgetRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	kept := make([]domain.Budget, 0, len(budgets))
	found := false
	for _, b := range budgets {
		if b.ID == id {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return domain.ErrBudgetNotFound
	}

	if err := s.budgetRepo.SaveAll(ctx, kept); err != nil {
		return err
	}

	// Drop the budget's expenses so they don't dangle
	expenses, err := s.expenseRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	keptExpenses := make([]domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.BudgetID != id {
			keptExpenses = append(keptExpenses, e)
		}
	}
	if err := s.expenseRepo.SaveAll(ctx, keptExpenses); err != nil {
		return err
	}

	s.publisher.Publish(websocket.BudgetDeleted(map[string]string{"id": id.String()}))
	return nil
}
