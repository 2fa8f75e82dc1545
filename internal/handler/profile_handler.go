package handler

import (
	"errors"
	"net/http"

	"github.com/expensify-app/expensify-backend/internal/domain"
	"github.com/expensify-app/expensify-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ProfileHandler handles the local user's profile requests
type ProfileHandler struct {
	userService *service.UserService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(userService *service.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// SetNameRequest represents the set-name request body
type SetNameRequest struct {
	Name string `json:"name"`
}

// ProfileResponse represents the profile in API responses
type ProfileResponse struct {
	Name string `json:"name"`
}

// GetProfile handles GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	name, found, err := h.userService.GetName(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to get profile")
		return NewInternalError(c, "Failed to get profile")
	}
	if !found {
		return NewNotFoundError(c, "No profile has been created")
	}
	return c.JSON(http.StatusOK, ProfileResponse{Name: name})
}

// SetProfile handles POST /api/v1/profile
func (h *ProfileHandler) SetProfile(c echo.Context) error {
	var req SetNameRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	name, err := h.userService.SetName(c.Request().Context(), req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Name is required", []ValidationError{
				{Field: "name", Message: "Name cannot be empty"},
			})
		}
		if errors.Is(err, domain.ErrNameTooLong) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name must be 100 characters or less"},
			})
		}
		log.Error().Err(err).Msg("Failed to set profile")
		return NewInternalError(c, "Failed to set profile")
	}

	log.Info().Str("name", name).Msg("Profile created")
	return c.JSON(http.StatusCreated, ProfileResponse{Name: name})
}

// DeleteAccount handles DELETE /api/v1/profile
// Wipes the profile along with every budget and expense.
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	if err := h.userService.DeleteAccount(c.Request().Context()); err != nil {
		log.Error().Err(err).Msg("Failed to delete account")
		return NewInternalError(c, "Failed to delete account")
	}

	log.Info().Msg("Account deleted")
	return c.NoContent(http.StatusNoContent)
}
