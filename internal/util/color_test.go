package util

import "testing"

func TestBudgetColor(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "0, 70%, 45%"},
		{1, "137.5, 70%, 45%"},
		{2, "275, 70%, 45%"},
		{3, "52.5, 70%, 45%"}, // 412.5 wraps past 360
		{8, "20, 70%, 45%"},
	}
	for _, tt := range tests {
		if got := BudgetColor(tt.index); got != tt.want {
			t.Errorf("index %d: expected %q, got %q", tt.index, tt.want, got)
		}
	}
}

func TestStatusForUtilization(t *testing.T) {
	tests := []struct {
		percent float64
		want    BudgetStatus
	}{
		{0, StatusSuccess},
		{59.9, StatusSuccess},
		{60, StatusCaution},
		{84.9, StatusCaution},
		{85, StatusWarning},
		{99.9, StatusWarning},
		{100, StatusDanger},
		{250, StatusDanger},
	}
	for _, tt := range tests {
		if got := StatusForUtilization(tt.percent); got != tt.want {
			t.Errorf("%.1f%%: expected %q, got %q", tt.percent, tt.want, got)
		}
	}
}
