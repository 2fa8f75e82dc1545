package service

import (
	"context"
	"testing"
	"time"

	"github.com/expensify-app/expensify-backend/internal/domain"
	"github.com/expensify-app/expensify-backend/internal/repository/kv"
	"github.com/expensify-app/expensify-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newTestAnalyticsService() (*AnalyticsService, domain.BudgetRepository, domain.ExpenseRepository) {
	store := testutil.NewMemoryStore()
	budgetRepo := kv.NewBudgetRepository(store)
	expenseRepo := kv.NewExpenseRepository(store)
	return NewAnalyticsService(budgetRepo, expenseRepo, NewAggregationService()), budgetRepo, expenseRepo
}

func TestGetDistribution(t *testing.T) {
	svc, budgetRepo, expenseRepo := newTestAnalyticsService()
	ctx := context.Background()

	b := testutil.MakeBudget("Groceries", "200")
	b.Color = "137.5, 70%, 45%"
	budgetRepo.SaveAll(ctx, []domain.Budget{b})
	expenseRepo.SaveAll(ctx, []domain.Expense{
		testutil.MakeExpense("Shop", "50", b.ID),
	})

	slices, err := svc.GetDistribution(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slices) != 1 {
		t.Fatalf("expected 1 slice, got %d", len(slices))
	}
	s := slices[0]
	if s.Color != "hsl(137.5, 70%, 45%)" {
		t.Errorf("unexpected color: %q", s.Color)
	}
	if s.PercentUsed != 0.25 {
		t.Errorf("expected PercentUsed 0.25, got %v", s.PercentUsed)
	}
	if !s.Remaining.Equal(decimal.RequireFromString("150")) {
		t.Errorf("expected remaining 150, got %v", s.Remaining)
	}
}

func TestGetDistributionEmpty(t *testing.T) {
	svc, _, _ := newTestAnalyticsService()

	slices, err := svc.GetDistribution(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slices) != 0 {
		t.Errorf("expected no slices, got %d", len(slices))
	}
}

func TestGetTimeline(t *testing.T) {
	svc, _, expenseRepo := newTestAnalyticsService()
	ctx := context.Background()

	budgetID := uuid.New()
	jan10 := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	jan20 := time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC)
	mar05 := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)

	expenseRepo.SaveAll(ctx, []domain.Expense{
		{ID: uuid.New(), Name: "mar", Amount: decimal.RequireFromString("30"), BudgetID: budgetID, CreatedAt: mar05},
		{ID: uuid.New(), Name: "jan a", Amount: decimal.RequireFromString("10"), BudgetID: budgetID, CreatedAt: jan10},
		{ID: uuid.New(), Name: "jan b", Amount: decimal.RequireFromString("15"), BudgetID: budgetID, CreatedAt: jan20},
	})

	points, err := svc.GetTimeline(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 months, got %d", len(points))
	}

	if points[0].Label != "Jan 2025" {
		t.Errorf("expected Jan 2025 first, got %q", points[0].Label)
	}
	if !points[0].Total.Equal(decimal.RequireFromString("25")) {
		t.Errorf("expected January total 25, got %v", points[0].Total)
	}
	// Timestamp is the first expense encountered for the month, which is
	// input order, not chronological order within the month.
	if points[0].Timestamp != jan10.UnixMilli() {
		t.Errorf("expected timestamp %d, got %d", jan10.UnixMilli(), points[0].Timestamp)
	}

	if points[1].Label != "Mar 2025" || !points[1].Total.Equal(decimal.RequireFromString("30")) {
		t.Errorf("unexpected second point: %+v", points[1])
	}
}

func TestGetTimelineEmpty(t *testing.T) {
	svc, _, _ := newTestAnalyticsService()

	points, err := svc.GetTimeline(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 0 {
		t.Errorf("expected no points, got %d", len(points))
	}
}
