package handler

import (
	"net/http"

	"github.com/expensify-app/expensify-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// BudgetOverviewResponse is one per-budget row on the dashboard
type BudgetOverviewResponse struct {
	BudgetID        string  `json:"budgetId"`
	Name            string  `json:"name"`
	Allocated       string  `json:"allocated"`
	Spent           string  `json:"spent"`
	Remaining       string  `json:"remaining"`
	PercentUtilized float64 `json:"percentUtilized"`
	ExpenseCount    int     `json:"expenseCount"`
	Color           string  `json:"color"`
	Status          string  `json:"status"`
}

// DashboardSummaryResponse represents the dashboard summary API response
type DashboardSummaryResponse struct {
	TotalBudgeted  string                   `json:"totalBudgeted"`
	TotalSpent     string                   `json:"totalSpent"`
	TotalRemaining string                   `json:"totalRemaining"`
	PercentSpent   float64                  `json:"percentSpent"`
	Status         string                   `json:"status"`
	Budgets        []BudgetOverviewResponse `json:"budgets"`
}

// GetSummary handles GET /api/v1/dashboard/summary
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	summary, err := h.dashboardService.GetSummary(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to get dashboard summary")
		return NewInternalError(c, "Failed to get dashboard summary")
	}

	budgets := make([]BudgetOverviewResponse, len(summary.Budgets))
	for i, b := range summary.Budgets {
		budgets[i] = BudgetOverviewResponse{
			BudgetID:        b.BudgetID.String(),
			Name:            b.Name,
			Allocated:       b.Allocated.String(),
			Spent:           b.Spent.String(),
			Remaining:       b.Remaining.String(),
			PercentUtilized: b.PercentUtilized,
			ExpenseCount:    len(b.Expenses),
			Color:           b.Color,
			Status:          string(b.Status),
		}
	}

	return c.JSON(http.StatusOK, DashboardSummaryResponse{
		TotalBudgeted:  summary.TotalBudgeted.String(),
		TotalSpent:     summary.TotalSpent.String(),
		TotalRemaining: summary.TotalRemaining.String(),
		PercentSpent:   summary.PercentSpent,
		Status:         string(summary.Status),
		Budgets:        budgets,
	})
}
