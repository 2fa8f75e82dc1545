package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/expensify-app/expensify-backend/internal/domain"
	"github.com/expensify-app/expensify-backend/internal/repository/kv"
	"github.com/expensify-app/expensify-backend/internal/service"
	"github.com/expensify-app/expensify-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestGetDistributionHandler(t *testing.T) {
	store := testutil.NewMemoryStore()
	budgetRepo := kv.NewBudgetRepository(store)
	expenseRepo := kv.NewExpenseRepository(store)
	h := NewAnalyticsHandler(service.NewAnalyticsService(budgetRepo, expenseRepo, service.NewAggregationService()))
	f := newHandlerFixture()
	ctx := context.Background()

	b := testutil.MakeBudget("Groceries", "200")
	budgetRepo.SaveAll(ctx, []domain.Budget{b})
	expenseRepo.SaveAll(ctx, []domain.Expense{testutil.MakeExpense("Shop", "50", b.ID)})

	c, rec := f.request(http.MethodGet, "/api/v1/analytics/distribution", "")
	if err := h.GetDistribution(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []DistributionSliceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 slice, got %d", len(resp))
	}
	if resp[0].PercentUsed != 0.25 {
		t.Errorf("expected PercentUsed 0.25, got %v", resp[0].PercentUsed)
	}
	if resp[0].Budget != "200" || resp[0].Spent != "50" {
		t.Errorf("unexpected slice: %+v", resp[0])
	}
}

func TestGetTimelineHandler(t *testing.T) {
	store := testutil.NewMemoryStore()
	budgetRepo := kv.NewBudgetRepository(store)
	expenseRepo := kv.NewExpenseRepository(store)
	h := NewAnalyticsHandler(service.NewAnalyticsService(budgetRepo, expenseRepo, service.NewAggregationService()))
	f := newHandlerFixture()
	ctx := context.Background()

	budgetID := uuid.New()
	expenseRepo.SaveAll(ctx, []domain.Expense{
		{ID: uuid.New(), Name: "a", Amount: decimal.RequireFromString("10"), BudgetID: budgetID,
			CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Name: "b", Amount: decimal.RequireFromString("5"), BudgetID: budgetID,
			CreatedAt: time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)},
	})

	c, rec := f.request(http.MethodGet, "/api/v1/analytics/timeline", "")
	if err := h.GetTimeline(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []TimelinePointResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 month, got %d", len(resp))
	}
	if resp[0].Label != "Feb 2025" || resp[0].Total != "15" {
		t.Errorf("unexpected point: %+v", resp[0])
	}
}
