package insight

import (
	"strings"
	"testing"
)

func TestExtractScore(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *float64
	}{
		{"colon and slash", "Financial Health Score: 7/10", f(7)},
		{"no colon", "Financial Health Score 6/10", f(6)},
		{"decimal score", "Financial Health Score: 8.5/10", f(8.5)},
		{"lowercase", "financial health score: 4/10", f(4)},
		{"space instead of slash", "Financial Health Score: 9 10", f(9)},
		{"embedded in sentence", "Overall I'd give a Financial Health Score of... Financial Health Score: 5/10 today.", f(5)},
		{"no score at all", "You are spending too much on dining.", nil},
		{"score without label", "I rate you 7/10.", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractScore(tt.raw)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil score, got %v", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected score %v, got nil", *tt.want)
			}
			if *got != *tt.want {
				t.Errorf("expected score %v, got %v", *tt.want, *got)
			}
		})
	}
}

func TestTruncateScoreTrailer(t *testing.T) {
	raw := "Financial Health Score: 7/10 because you overspend. The rest of this explanation rambles on. And on."
	got := truncateScoreTrailer(raw)
	want := "Financial Health Score: 7/10 because you overspend."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestTruncateScoreTrailerNoPeriod(t *testing.T) {
	raw := "Financial Health Score: 9/10"
	if got := truncateScoreTrailer(raw); got != raw {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestTruncateScoreTrailerPreservesPrecedingText(t *testing.T) {
	raw := "Savings Opportunities:\nCut dining out.\n\nFinancial Health Score: 6/10 overall. Extra commentary here."
	got := truncateScoreTrailer(raw)
	want := "Savings Opportunities:\nCut dining out.\n\nFinancial Health Score: 6/10 overall."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestStripEnumeration(t *testing.T) {
	raw := "1. Overall Financial Assessment: fine.\n2. Budget-Specific Insights: ok.\nNot 3. numbered mid-line."
	got := stripEnumeration(raw)
	if strings.HasPrefix(got, "1.") {
		t.Error("leading enumeration not stripped")
	}
	if strings.Contains(got, "\n2.") {
		t.Error("enumeration on later line not stripped")
	}
	if !strings.Contains(got, "Not 3. numbered mid-line.") {
		t.Error("mid-line number should be untouched")
	}
}

func TestNormalizeBullets(t *testing.T) {
	raw := "Budget-Specific Insights:\n* First point.\n\n* Second point."
	got := normalizeBullets(raw)
	want := "Budget-Specific Insights:\n• First point.\n• Second point."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestTrimEllipses(t *testing.T) {
	raw := "Reduce subscriptions...\nKeep going....."
	got := trimEllipses(raw)
	want := "Reduce subscriptions.\nKeep going."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestTerminateScoreSection(t *testing.T) {
	raw := "Financial Health Score: 8/10\n"
	got := terminateScoreSection(raw)
	want := "Financial Health Score: 8/10."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSplitSections(t *testing.T) {
	cleaned := "First block.\n\nSecond block\nwith two lines.\n\n\n  \n\nThird block."
	got := SplitSections(cleaned)
	if len(got) != 3 {
		t.Fatalf("expected 3 sections, got %d: %q", len(got), got)
	}
	if got[1] != "Second block\nwith two lines." {
		t.Errorf("unexpected second section: %q", got[1])
	}
}

func TestParseFullResponse(t *testing.T) {
	raw := "Overall Financial Assessment: Your spending is balanced. Budget-Specific Insights:\n" +
		"* Groceries is close to its limit.\n\n* Travel is underused.\n\n" +
		"Savings Opportunities:\nReduce subscriptions...\n\n" +
		"1. Financial Health Score: 7/10 because you overspend. Keep tracking."

	parsed := Parse(raw)

	if parsed.Score == nil || *parsed.Score != 7 {
		t.Fatalf("expected score 7, got %v", parsed.Score)
	}

	wantCleaned := "Overall Financial Assessment: Your spending is balanced.\n\n" +
		"Budget-Specific Insights:\n• Groceries is close to its limit.\n• Travel is underused.\n\n" +
		"Savings Opportunities:\nReduce subscriptions.\n\n" +
		"Financial Health Score: 7/10 because you overspend."
	if parsed.Cleaned != wantCleaned {
		t.Errorf("cleaned text mismatch:\nwant %q\ngot  %q", wantCleaned, parsed.Cleaned)
	}

	wantSections := []string{
		"Overall Financial Assessment: Your spending is balanced.",
		"Budget-Specific Insights:\n• Groceries is close to its limit.\n• Travel is underused.",
		"Savings Opportunities:\nReduce subscriptions.",
		"Financial Health Score: 7/10 because you overspend.",
	}
	if len(parsed.Sections) != len(wantSections) {
		t.Fatalf("expected %d sections, got %d: %q", len(wantSections), len(parsed.Sections), parsed.Sections)
	}
	for i, want := range wantSections {
		if parsed.Sections[i] != want {
			t.Errorf("section %d mismatch:\nwant %q\ngot  %q", i, want, parsed.Sections[i])
		}
	}
}

func TestParseScoreless(t *testing.T) {
	parsed := Parse("You should track your expenses more carefully.")
	if parsed.Score != nil {
		t.Errorf("expected nil score, got %v", *parsed.Score)
	}
	if len(parsed.Sections) != 1 {
		t.Errorf("expected 1 section, got %d", len(parsed.Sections))
	}
}

func f(v float64) *float64 { return &v }
