package service

import (
	"github.com/expensify-app/expensify-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AggregationService converts raw budget and expense records into
// derived utilization metrics. It is pure: no I/O, no hidden state, and
// the same inputs always produce the same output.
type AggregationService struct{}

// NewAggregationService creates a new AggregationService
func NewAggregationService() *AggregationService {
	return &AggregationService{}
}

// Aggregate computes per-budget utilization, prompt-ready summaries and
// portfolio totals. Budgets appear in input order and budgets without
// expenses still get a record with zero spend. An expense whose budget
// no longer exists contributes to no record.
func (s *AggregationService) Aggregate(budgets []domain.Budget, expenses []domain.Expense) domain.Aggregation {
	byBudget := make(map[uuid.UUID][]domain.Expense)
	for _, e := range expenses {
		byBudget[e.BudgetID] = append(byBudget[e.BudgetID], e)
	}

	utilization := make([]domain.BudgetUtilization, 0, len(budgets))
	summaries := make([]domain.BudgetSummary, 0, len(budgets))
	totalBudgeted := decimal.Zero
	totalSpent := decimal.Zero

	for _, b := range budgets {
		budgetExpenses := byBudget[b.ID]

		spent := decimal.Zero
		lines := make([]domain.ExpenseLine, 0, len(budgetExpenses))
		for _, e := range budgetExpenses {
			spent = spent.Add(e.Amount)
			lines = append(lines, domain.ExpenseLine{
				Name:   e.Name,
				Amount: e.Amount,
				Date:   e.CreatedAt.UTC().Format("2006-01-02"),
			})
		}

		remaining := b.Amount.Sub(spent)
		// Zero-allocation budgets report 0% utilization, never NaN/Inf
		percent := 0.0
		if b.Amount.IsPositive() {
			percent = spent.Div(b.Amount).InexactFloat64() * 100
		}

		utilization = append(utilization, domain.BudgetUtilization{
			BudgetID:        b.ID,
			Name:            b.Name,
			Allocated:       b.Amount,
			Spent:           spent,
			Remaining:       remaining,
			PercentUtilized: percent,
			Expenses:        lines,
		})
		summaries = append(summaries, domain.BudgetSummary{
			Name:            b.Name,
			Allocated:       b.Amount.InexactFloat64(),
			Spent:           spent.InexactFloat64(),
			Remaining:       remaining.InexactFloat64(),
			PercentUtilized: percent,
			ExpenseCount:    len(budgetExpenses),
		})

		totalBudgeted = totalBudgeted.Add(b.Amount)
		totalSpent = totalSpent.Add(spent)
	}

	return domain.Aggregation{
		Utilization: utilization,
		Summaries:   summaries,
		Totals: domain.Totals{
			TotalBudgeted: totalBudgeted,
			TotalSpent:    totalSpent,
		},
	}
}
