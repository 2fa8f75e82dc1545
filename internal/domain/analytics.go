package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseLine is a single spending line item inside a utilization record
type ExpenseLine struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"` // ISO date, YYYY-MM-DD
}

// BudgetUtilization is the per-budget derived metric set. Remaining may
// be negative and PercentUtilized is unbounded above 100.
type BudgetUtilization struct {
	BudgetID        uuid.UUID       `json:"budgetId"`
	Name            string          `json:"name"`
	Allocated       decimal.Decimal `json:"allocated"`
	Spent           decimal.Decimal `json:"spent"`
	Remaining       decimal.Decimal `json:"remaining"`
	PercentUtilized float64         `json:"percentUtilized"`
	Expenses        []ExpenseLine   `json:"expenses"`
}

// BudgetSummary is a utilization record with line items dropped, the
// form sent to the generation model to bound payload size.
type BudgetSummary struct {
	Name            string  `json:"name"`
	Allocated       float64 `json:"allocated"`
	Spent           float64 `json:"spent"`
	Remaining       float64 `json:"remaining"`
	PercentUtilized float64 `json:"percentUtilized"`
	ExpenseCount    int     `json:"expenseCount"`
}

// Totals are whole-portfolio sums across all budgets
type Totals struct {
	TotalBudgeted decimal.Decimal `json:"totalBudgeted"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`
}

// Aggregation is the full output of one aggregator pass
type Aggregation struct {
	Utilization []BudgetUtilization
	Summaries   []BudgetSummary
	Totals      Totals
}

// DistributionSlice feeds the budget distribution chart
type DistributionSlice struct {
	Name        string          `json:"name"`
	Budget      decimal.Decimal `json:"budget"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	Color       string          `json:"color"`
	PercentUsed float64         `json:"percentUsed"`
}

// TimelinePoint is one month of spending on the expense timeline
type TimelinePoint struct {
	Label     string          `json:"label"` // e.g. "Jan 2026"
	Total     decimal.Decimal `json:"total"`
	Timestamp int64           `json:"timestamp"` // unix millis of the first expense seen in the month
}
