package insight

import (
	"encoding/json"
	"fmt"

	"github.com/expensify-app/expensify-backend/internal/domain"
)

// Canonical section titles the model is instructed to emit
const (
	SectionAssessment  = "Overall Financial Assessment"
	SectionBudgets     = "Budget-Specific Insights"
	SectionSavings     = "Savings Opportunities"
	SectionInvestments = "Investment Suggestions"
	SectionScore       = "Financial Health Score"
)

const promptTemplate = `As a professional financial advisor in the Expensify personal budgeting app, provide specific, actionable insights based on the user's actual financial data:

Budget Utilization Data:
%s

Provide the following sections, with concise, personalized content that demonstrates deep analysis of patterns:

1. Overall Financial Assessment: A brief, data-driven assessment of the user's financial situation. Focus on specific patterns you observe (2-3 sentences).

2. Budget-Specific Insights: Provide targeted advice for each individual budget category. Focus on the categories with the highest spending or most concerning patterns. Be specific about what the data shows.

3. Savings Opportunities: Identify 2 very specific areas where the user could save money based on their actual spending patterns, not generic advice.

4. Investment Suggestions: If there are surplus funds, suggest practical investment approaches appropriate for their specific financial situation.

5. Financial Health Score: Rate the user's financial health on a scale of 1-10 based on their budget management, with clear justification for the score.

IMPORTANT FORMATTING INSTRUCTIONS:
- DO NOT use numbering (like "1.", "2.") before section titles
- Start each section with just the title followed by a colon (e.g., "Overall Financial Assessment:")
- Use short, direct sentences and avoid filler text
- Use bullet points (•) for lists, not asterisks
- Don't leave excessive space between bullet points - make the content compact
- When referring to specific budget categories, use bold text by placing the name between ** (e.g., **Groceries**)
- For Financial Health Score, just provide the number out of 10 and a brief explanation
- Don't end with ellipses or trailing comments`

// BuildPrompt renders the generation request for a set of per-budget
// summaries. The output is deterministic for a given summary ordering.
func BuildPrompt(summaries []domain.BudgetSummary) string {
	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		// BudgetSummary contains only marshalable fields; this cannot
		// happen with real data.
		data = []byte("[]")
	}
	return fmt.Sprintf(promptTemplate, string(data))
}
