package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/expensify-app/expensify-backend/internal/domain"
	"github.com/expensify-app/expensify-backend/internal/insight"
	"github.com/rs/zerolog/log"
)

// User-facing pipeline messages
const (
	msgMissingKey       = "API key is missing. Please add your Gemini API key to your environment variables."
	msgInsufficientData = "Not enough financial data to generate insights. Please add more budgets and expenses."
	msgConfiguration    = "API configuration error. Please contact support."
	msgAccessDenied     = "API access denied. Please check your API key."
	msgModelNotFound    = "AI model not found. The model may be unavailable or incorrect."
	msgServiceError     = "AI service error. Please try again later."
	msgAuthError        = "API authentication error. Please try again later."
	msgTimeout          = "Connection timeout. Please check your internet connection and try again."
	msgEmptyResponse    = "AI model returned an empty response. Please try again with more complete financial data."
	msgAborted          = "Request was aborted. Please try again later."
	msgNetworkError     = "Network error. Please check your internet connection."
	msgUnknown          = "Unable to generate financial insights"
)

const (
	maxRetries  = 2
	backoffUnit = time.Second
)

// errEmptyResponse marks a call that succeeded but produced no usable text
var errEmptyResponse = errors.New("empty response from AI model")

// InsightService runs the insight pipeline: validate aggregated data,
// build a prompt, call the generation model with retry and backoff, and
// parse the response into a structured result. Every failure comes back
// as a value; nothing escapes as an error or panic.
type InsightService struct {
	generator  domain.Generator // nil means no API key was configured
	aggregator *AggregationService
	sleep      func(ctx context.Context, d time.Duration) error
	now        func() time.Time
}

// NewInsightService creates a new InsightService. Pass a nil generator
// when no credential is configured; the pipeline then reports the
// missing key instead of calling out.
func NewInsightService(generator domain.Generator, aggregator *AggregationService) *InsightService {
	return &InsightService{
		generator:  generator,
		aggregator: aggregator,
		sleep:      sleepContext,
		now:        time.Now,
	}
}

// GenerateInsights runs one pipeline invocation over the given records.
// A nil result with no budgets or no expenses means "nothing to analyze
// yet" and is not an error. Each invocation carries its own retry
// counter; concurrent calls are independent.
func (s *InsightService) GenerateInsights(ctx context.Context, budgets []domain.Budget, expenses []domain.Expense) *domain.InsightResult {
	if len(budgets) == 0 || len(expenses) == 0 {
		return nil
	}

	agg := s.aggregator.Aggregate(budgets, expenses)
	if agg.Totals.TotalBudgeted.IsZero() || agg.Totals.TotalSpent.IsZero() {
		return s.errorResult(msgInsufficientData, "")
	}

	if s.generator == nil {
		log.Error().Msg("Insight generation requested but no API key is configured")
		return s.errorResult(msgMissingKey, "")
	}

	prompt := insight.BuildPrompt(agg.Summaries)
	log.Debug().Int("budget_count", len(budgets)).Int("expense_count", len(expenses)).Msg("Sending request to AI model")

	var lastErr error
	for attempt := 0; ; attempt++ {
		text, err := s.generator.Generate(ctx, prompt)
		if err == nil && strings.TrimSpace(text) == "" {
			err = errEmptyResponse
		}
		if err == nil {
			parsed := insight.Parse(text)
			log.Info().Int("sections", len(parsed.Sections)).Msg("Insights generated")
			return &domain.InsightResult{Insight: &domain.Insight{
				FullResponse:   parsed.Cleaned,
				FinancialScore: parsed.Score,
				Sections:       parsed.Sections,
				Timestamp:      s.now().UTC(),
			}}
		}

		lastErr = err
		if attempt >= maxRetries || !shouldRetry(err) {
			break
		}

		delay := backoffUnit * time.Duration(attempt+1)
		log.Warn().Err(err).Int("attempt", attempt+1).Dur("backoff", delay).Msg("Insight generation failed, retrying")
		if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
			lastErr = sleepErr
			break
		}
	}

	log.Error().Err(lastErr).Msg("Error generating AI insights")
	return s.errorResult(classifyError(lastErr), lastErr.Error())
}

func (s *InsightService) errorResult(message, detail string) *domain.InsightResult {
	return &domain.InsightResult{Err: &domain.InsightError{
		Message:       message,
		DetailedError: detail,
		Timestamp:     s.now().UTC(),
	}}
}

// shouldRetry decides whether a failed attempt is worth repeating.
// Today every failure class is retried, permanent provider errors
// included; the policy lives here so it can change in one place.
func shouldRetry(err error) bool {
	return true
}

// classifyError maps a raw generation error to a user-facing message.
// Checks run in priority order; the first marker that matches wins.
func classifyError(err error) string {
	if err == nil {
		return msgUnknown
	}
	msg := err.Error()

	switch {
	case strings.Contains(msg, "Invalid JSON payload"):
		return msgConfiguration
	case strings.Contains(msg, "403") || strings.Contains(msg, "PERMISSION_DENIED"):
		return msgAccessDenied
	case strings.Contains(msg, "404") || strings.Contains(msg, "NOT_FOUND"):
		return msgModelNotFound
	case strings.Contains(msg, "googleapi") || strings.Contains(msg, "generativelanguage"):
		return msgServiceError
	case strings.Contains(msg, "API key") || strings.Contains(msg, "API_KEY"):
		return msgAuthError
	case errors.Is(err, context.DeadlineExceeded) || strings.Contains(msg, "timeout"):
		return msgTimeout
	case errors.Is(err, errEmptyResponse):
		return msgEmptyResponse
	case errors.Is(err, context.Canceled) || strings.Contains(msg, "aborted"):
		return msgAborted
	case strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "network is unreachable"):
		return msgNetworkError
	default:
		return msgUnknown
	}
}

// sleepContext blocks for d or until ctx is done, whichever comes first
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
