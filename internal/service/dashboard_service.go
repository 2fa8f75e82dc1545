package service

import (
	"context"

	"github.com/expensify-app/expensify-backend/internal/domain"
	"github.com/expensify-app/expensify-backend/internal/util"
	"github.com/shopspring/decimal"
)

// DashboardService assembles the dashboard summary
type DashboardService struct {
	budgetRepo  domain.BudgetRepository
	expenseRepo domain.ExpenseRepository
	aggregator  *AggregationService
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(budgetRepo domain.BudgetRepository, expenseRepo domain.ExpenseRepository, aggregator *AggregationService) *DashboardService {
	return &DashboardService{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
		aggregator:  aggregator,
	}
}

// BudgetOverview is a utilization record enriched with display fields
type BudgetOverview struct {
	domain.BudgetUtilization
	Color  string            `json:"color"`
	Status util.BudgetStatus `json:"status"`
}

// DashboardSummary contains the headline stats plus per-budget rows
type DashboardSummary struct {
	TotalBudgeted  decimal.Decimal
	TotalSpent     decimal.Decimal
	TotalRemaining decimal.Decimal
	PercentSpent   float64 // fraction: 1.0 = everything spent
	Status         util.BudgetStatus
	Budgets        []BudgetOverview
}

// GetSummary computes the current dashboard summary
func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	budgets, err := s.budgetRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	agg := s.aggregator.Aggregate(budgets, expenses)

	percentSpent := 0.0
	if agg.Totals.TotalBudgeted.IsPositive() {
		percentSpent = agg.Totals.TotalSpent.Div(agg.Totals.TotalBudgeted).InexactFloat64()
	}

	overviews := make([]BudgetOverview, len(agg.Utilization))
	for i, u := range agg.Utilization {
		overviews[i] = BudgetOverview{
			BudgetUtilization: u,
			Color:             budgets[i].Color,
			Status:            util.StatusForUtilization(u.PercentUtilized),
		}
	}

	return &DashboardSummary{
		TotalBudgeted:  agg.Totals.TotalBudgeted,
		TotalSpent:     agg.Totals.TotalSpent,
		TotalRemaining: agg.Totals.TotalBudgeted.Sub(agg.Totals.TotalSpent),
		PercentSpent:   percentSpent,
		Status:         util.StatusForUtilization(percentSpent * 100),
		Budgets:        overviews,
	}, nil
}
