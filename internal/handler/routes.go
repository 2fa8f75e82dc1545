package handler

import (
	"github.com/expensify-app/expensify-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, insightLimiter *middleware.RateLimiter, profileHandler *ProfileHandler, budgetHandler *BudgetHandler, expenseHandler *ExpenseHandler, dashboardHandler *DashboardHandler, analyticsHandler *AnalyticsHandler, insightHandler *InsightHandler, wsHandler *WebSocketHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Profile routes
	profile := api.Group("/profile")
	profile.GET("", profileHandler.GetProfile)
	profile.POST("", profileHandler.SetProfile)
	profile.DELETE("", profileHandler.DeleteAccount)

	// Budget routes
	budgets := api.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.GET("/:id/expenses", budgetHandler.GetBudgetExpenses)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Expense routes
	expenses := api.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)

	// Analytics routes
	analytics := api.Group("/analytics")
	analytics.GET("/distribution", analyticsHandler.GetDistribution)
	analytics.GET("/timeline", analyticsHandler.GetTimeline)

	// Insight route; generation calls are rate limited per client
	insights := api.Group("/insights")
	insights.Use(middleware.RateLimitMiddleware(insightLimiter))
	insights.POST("", insightHandler.GenerateInsights)

	// Event feed
	e.GET("/ws", wsHandler.HandleWS)
}
