package service

import (
	"context"
	"testing"

	"github.com/expensify-app/expensify-backend/internal/domain"
	"github.com/expensify-app/expensify-backend/internal/repository/kv"
	"github.com/expensify-app/expensify-backend/internal/testutil"
	"github.com/expensify-app/expensify-backend/internal/util"
	"github.com/shopspring/decimal"
)

func newTestDashboardService() (*DashboardService, domain.BudgetRepository, domain.ExpenseRepository) {
	store := testutil.NewMemoryStore()
	budgetRepo := kv.NewBudgetRepository(store)
	expenseRepo := kv.NewExpenseRepository(store)
	return NewDashboardService(budgetRepo, expenseRepo, NewAggregationService()), budgetRepo, expenseRepo
}

func TestGetSummary(t *testing.T) {
	svc, budgetRepo, expenseRepo := newTestDashboardService()
	ctx := context.Background()

	healthy := testutil.MakeBudget("Healthy", "1000")
	overspent := testutil.MakeBudget("Overspent", "100")
	budgetRepo.SaveAll(ctx, []domain.Budget{healthy, overspent})
	expenseRepo.SaveAll(ctx, []domain.Expense{
		testutil.MakeExpense("small", "100", healthy.ID),
		testutil.MakeExpense("blowout", "120", overspent.ID),
	})

	summary, err := svc.GetSummary(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !summary.TotalBudgeted.Equal(decimal.RequireFromString("1100")) {
		t.Errorf("expected total budgeted 1100, got %v", summary.TotalBudgeted)
	}
	if !summary.TotalSpent.Equal(decimal.RequireFromString("220")) {
		t.Errorf("expected total spent 220, got %v", summary.TotalSpent)
	}
	if !summary.TotalRemaining.Equal(decimal.RequireFromString("880")) {
		t.Errorf("expected total remaining 880, got %v", summary.TotalRemaining)
	}
	if summary.PercentSpent != 0.2 {
		t.Errorf("expected PercentSpent 0.2, got %v", summary.PercentSpent)
	}
	if summary.Status != util.StatusSuccess {
		t.Errorf("expected overall success status, got %v", summary.Status)
	}

	if len(summary.Budgets) != 2 {
		t.Fatalf("expected 2 budget rows, got %d", len(summary.Budgets))
	}
	if summary.Budgets[0].Status != util.StatusSuccess {
		t.Errorf("healthy budget: expected success, got %v", summary.Budgets[0].Status)
	}
	if summary.Budgets[1].Status != util.StatusDanger {
		t.Errorf("overspent budget: expected danger, got %v", summary.Budgets[1].Status)
	}
	if summary.Budgets[1].PercentUtilized != 120 {
		t.Errorf("expected 120%% utilization, got %v", summary.Budgets[1].PercentUtilized)
	}
}

func TestGetSummaryEmpty(t *testing.T) {
	svc, _, _ := newTestDashboardService()

	summary, err := svc.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.PercentSpent != 0 {
		t.Errorf("expected 0 percent with no budgets, got %v", summary.PercentSpent)
	}
	if len(summary.Budgets) != 0 {
		t.Errorf("expected no rows, got %d", len(summary.Budgets))
	}
}
