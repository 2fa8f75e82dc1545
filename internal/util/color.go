package util

import (
	"fmt"
	"math"
)

// Budget status levels, keyed off percent of allocation spent
type BudgetStatus string

const (
	StatusSuccess BudgetStatus = "success"
	StatusCaution BudgetStatus = "caution"
	StatusWarning BudgetStatus = "warning"
	StatusDanger  BudgetStatus = "danger"
)

// BudgetColor returns the HSL components assigned to the budget at the
// given creation index. The golden-angle step spreads hues so adjacent
// budgets get visually distinct colors.
func BudgetColor(index int) string {
	hue := math.Mod(float64(index)*137.5, 360)
	return fmt.Sprintf("%g, 70%%, 45%%", hue)
}

// StatusForUtilization classifies how spent a budget is.
// Thresholds match the frontend's progress-bar coloring.
func StatusForUtilization(percentUsed float64) BudgetStatus {
	switch {
	case percentUsed >= 100:
		return StatusDanger
	case percentUsed >= 85:
		return StatusWarning
	case percentUsed >= 60:
		return StatusCaution
	default:
		return StatusSuccess
	}
}
