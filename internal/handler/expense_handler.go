package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/expensify-app/expensify-backend/internal/domain"
	"github.com/expensify-app/expensify-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents the create expense request body
type CreateExpenseRequest struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	BudgetID string `json:"budgetId"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Amount    string `json:"amount"`
	BudgetID  string `json:"budgetId"`
	CreatedAt string `json:"createdAt"`
}

// ExpenseListResponse is a filtered expense listing plus its total
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    string            `json:"total"`
}

// CreateExpense handles POST /api/v1/expenses
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	budgetID, err := uuid.Parse(req.BudgetID)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "budgetId", Message: "Budget ID must be a valid UUID"},
		})
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be a number"},
		})
	}

	expense, err := h.expenseService.CreateExpense(c.Request().Context(), req.Name, amount, budgetID)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Expense name is required", []ValidationError{
				{Field: "name", Message: "Name cannot be empty"},
			})
		}
		if errors.Is(err, domain.ErrNameTooLong) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name must be 100 characters or less"},
			})
		}
		if errors.Is(err, domain.ErrNegativeAmount) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "amount", Message: "Amount must not be negative"},
			})
		}
		if errors.Is(err, domain.ErrBudgetNotFound) {
			return NewNotFoundError(c, "Budget not found")
		}
		log.Error().Err(err).Msg("Failed to create expense")
		return NewInternalError(c, "Failed to create expense")
	}

	log.Info().Str("expense_id", expense.ID.String()).Str("name", expense.Name).Msg("Expense created")
	return c.JSON(http.StatusCreated, toExpenseResponse(expense))
}

// GetExpenses handles GET /api/v1/expenses
// Query params: budgetId, search, sortBy (date|amount|name), order (asc|desc)
func (h *ExpenseHandler) GetExpenses(c echo.Context) error {
	filter := domain.ExpenseFilter{
		SearchTerm: c.QueryParam("search"),
		SortBy:     domain.SortByDate,
		Descending: true,
	}

	if raw := c.QueryParam("budgetId"); raw != "" {
		budgetID, err := uuid.Parse(raw)
		if err != nil {
			return NewValidationError(c, "Invalid budgetId query parameter", nil)
		}
		filter.BudgetID = &budgetID
	}

	switch c.QueryParam("sortBy") {
	case "", string(domain.SortByDate):
	case string(domain.SortByAmount):
		filter.SortBy = domain.SortByAmount
	case string(domain.SortByName):
		filter.SortBy = domain.SortByName
	default:
		return NewValidationError(c, "Invalid sortBy query parameter", nil)
	}

	switch c.QueryParam("order") {
	case "", "desc":
	case "asc":
		filter.Descending = false
	default:
		return NewValidationError(c, "Invalid order query parameter", nil)
	}

	expenses, total, err := h.expenseService.FilterExpenses(c.Request().Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get expenses")
		return NewInternalError(c, "Failed to get expenses")
	}

	response := ExpenseListResponse{
		Expenses: make([]ExpenseResponse, len(expenses)),
		Total:    total.String(),
	}
	for i := range expenses {
		response.Expenses[i] = toExpenseResponse(&expenses[i])
	}
	return c.JSON(http.StatusOK, response)
}

// DeleteExpense handles DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid expense ID", nil)
	}

	if err := h.expenseService.DeleteExpense(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return NewNotFoundError(c, "Expense not found")
		}
		log.Error().Err(err).Str("expense_id", id.String()).Msg("Failed to delete expense")
		return NewInternalError(c, "Failed to delete expense")
	}

	log.Info().Str("expense_id", id.String()).Msg("Expense deleted")
	return c.NoContent(http.StatusNoContent)
}

func toExpenseResponse(expense *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        expense.ID.String(),
		Name:      expense.Name,
		Amount:    expense.Amount.String(),
		BudgetID:  expense.BudgetID.String(),
		CreatedAt: expense.CreatedAt.Format(time.RFC3339),
	}
}
