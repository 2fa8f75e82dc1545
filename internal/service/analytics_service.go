package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/expensify-app/expensify-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// AnalyticsService produces the chart feeds for the analytics page
type AnalyticsService struct {
	budgetRepo  domain.BudgetRepository
	expenseRepo domain.ExpenseRepository
	aggregator  *AggregationService
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(budgetRepo domain.BudgetRepository, expenseRepo domain.ExpenseRepository, aggregator *AggregationService) *AnalyticsService {
	return &AnalyticsService{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
		aggregator:  aggregator,
	}
}

// GetDistribution returns one slice per budget for the distribution and
// utilization charts. PercentUsed is a fraction (1.0 = fully spent).
func (s *AnalyticsService) GetDistribution(ctx context.Context) ([]domain.DistributionSlice, error) {
	budgets, err := s.budgetRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	agg := s.aggregator.Aggregate(budgets, expenses)
	slices := make([]domain.DistributionSlice, len(agg.Utilization))
	for i, u := range agg.Utilization {
		slices[i] = domain.DistributionSlice{
			Name:        u.Name,
			Budget:      u.Allocated,
			Spent:       u.Spent,
			Remaining:   u.Remaining,
			Color:       fmt.Sprintf("hsl(%s)", budgets[i].Color),
			PercentUsed: u.PercentUtilized / 100,
		}
	}
	return slices, nil
}

// GetTimeline groups spending by calendar month, oldest first
func (s *AnalyticsService) GetTimeline(ctx context.Context) ([]domain.TimelinePoint, error) {
	expenses, err := s.expenseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	type monthKey struct {
		year  int
		month int
	}
	grouped := make(map[monthKey]*domain.TimelinePoint)
	for _, e := range expenses {
		t := e.CreatedAt.UTC()
		key := monthKey{t.Year(), int(t.Month())}
		point, ok := grouped[key]
		if !ok {
			point = &domain.TimelinePoint{
				Label:     t.Format("Jan 2006"),
				Total:     decimal.Zero,
				Timestamp: t.UnixMilli(),
			}
			grouped[key] = point
		}
		point.Total = point.Total.Add(e.Amount)
	}

	points := make([]domain.TimelinePoint, 0, len(grouped))
	for _, p := range grouped {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Timestamp < points[j].Timestamp
	})
	return points, nil
}
