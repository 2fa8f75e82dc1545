package handler

import (
	"net/http"

	"github.com/expensify-app/expensify-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AnalyticsHandler handles analytics HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// DistributionSliceResponse is one budget's slice of the distribution chart
type DistributionSliceResponse struct {
	Name        string  `json:"name"`
	Budget      string  `json:"budget"`
	Spent       string  `json:"spent"`
	Remaining   string  `json:"remaining"`
	Color       string  `json:"color"`
	PercentUsed float64 `json:"percentUsed"`
}

// TimelinePointResponse is one month on the spending timeline
type TimelinePointResponse struct {
	Label     string `json:"label"`
	Total     string `json:"total"`
	Timestamp int64  `json:"timestamp"`
}

// GetDistribution handles GET /api/v1/analytics/distribution
func (h *AnalyticsHandler) GetDistribution(c echo.Context) error {
	slices, err := h.analyticsService.GetDistribution(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to get budget distribution")
		return NewInternalError(c, "Failed to get budget distribution")
	}

	response := make([]DistributionSliceResponse, len(slices))
	for i, s := range slices {
		response[i] = DistributionSliceResponse{
			Name:        s.Name,
			Budget:      s.Budget.String(),
			Spent:       s.Spent.String(),
			Remaining:   s.Remaining.String(),
			Color:       s.Color,
			PercentUsed: s.PercentUsed,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetTimeline handles GET /api/v1/analytics/timeline
func (h *AnalyticsHandler) GetTimeline(c echo.Context) error {
	points, err := h.analyticsService.GetTimeline(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to get expense timeline")
		return NewInternalError(c, "Failed to get expense timeline")
	}

	response := make([]TimelinePointResponse, len(points))
	for i, p := range points {
		response[i] = TimelinePointResponse{
			Label:     p.Label,
			Total:     p.Total.String(),
			Timestamp: p.Timestamp,
		}
	}
	return c.JSON(http.StatusOK, response)
}
