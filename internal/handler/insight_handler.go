package handler

import (
	"net/http"
	"time"

	"github.com/expensify-app/expensify-backend/internal/service"
	"github.com/expensify-app/expensify-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// InsightHandler handles insight generation HTTP requests
type InsightHandler struct {
	insightService *service.InsightService
	budgetService  *service.BudgetService
	expenseService *service.ExpenseService
	publisher      websocket.EventPublisher
}

// NewInsightHandler creates a new InsightHandler
func NewInsightHandler(insightService *service.InsightService, budgetService *service.BudgetService, expenseService *service.ExpenseService, publisher websocket.EventPublisher) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
		budgetService:  budgetService,
		expenseService: expenseService,
		publisher:      publisher,
	}
}

// InsightResponse represents a successful insight generation
type InsightResponse struct {
	FullResponse   string   `json:"fullResponse"`
	FinancialScore *float64 `json:"financialScore,omitempty"`
	Sections       []string `json:"sections"`
	Timestamp      string   `json:"timestamp"`
}

// InsightErrorResponse represents a failed insight generation. It is
// returned with status 200: pipeline failures are data for the UI to
// render, not transport errors.
type InsightErrorResponse struct {
	Error         string `json:"error"`
	DetailedError string `json:"detailedError,omitempty"`
	Timestamp     string `json:"timestamp"`
}

// GenerateInsights handles POST /api/v1/insights
// Responds 204 when there is nothing to analyze yet.
func (h *InsightHandler) GenerateInsights(c echo.Context) error {
	ctx := c.Request().Context()

	budgets, err := h.budgetService.GetBudgets(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load budgets for insights")
		return NewInternalError(c, "Failed to load financial data")
	}
	expenses, err := h.expenseService.GetExpenses(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load expenses for insights")
		return NewInternalError(c, "Failed to load financial data")
	}

	result := h.insightService.GenerateInsights(ctx, budgets, expenses)
	if result == nil {
		return c.NoContent(http.StatusNoContent)
	}

	if result.Err != nil {
		log.Warn().Str("detail", result.Err.DetailedError).Msg("Insight generation returned an error result")
		return c.JSON(http.StatusOK, InsightErrorResponse{
			Error:         result.Err.Message,
			DetailedError: result.Err.DetailedError,
			Timestamp:     result.Err.Timestamp.Format(time.RFC3339),
		})
	}

	response := InsightResponse{
		FullResponse:   result.Insight.FullResponse,
		FinancialScore: result.Insight.FinancialScore,
		Sections:       result.Insight.Sections,
		Timestamp:      result.Insight.Timestamp.Format(time.RFC3339),
	}
	h.publisher.Publish(websocket.InsightGenerated(response))
	return c.JSON(http.StatusOK, response)
}
