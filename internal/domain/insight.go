package domain

import (
	"context"
	"time"
)

// Generator is the text-generation collaborator. A single prompt in,
// free-form text out. Implementations may fail with provider-specific
// errors whose message strings drive classification.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Insight is the structured result of a successful generation run.
type Insight struct {
	FullResponse   string    `json:"fullResponse"`
	FinancialScore *float64  `json:"financialScore,omitempty"` // nil when the model gave no score
	Sections       []string  `json:"sections"`
	Timestamp      time.Time `json:"timestamp"`
}

// InsightError is the user-facing failure shape. Message is safe to
// display; DetailedError carries the raw diagnostic for logging only.
type InsightError struct {
	Message       string    `json:"error"`
	DetailedError string    `json:"detailedError,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// InsightResult carries exactly one of Insight or Err. A nil
// *InsightResult means "no data yet" and is not an error.
type InsightResult struct {
	Insight *Insight
	Err     *InsightError
}
