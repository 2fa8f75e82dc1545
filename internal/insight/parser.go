// Package insight turns the model's free-form advice text into a
// structured, renderable result. The model does not reliably follow
// formatting instructions, so cleaning runs as an ordered pipeline of
// named stages; stage order matters because later stages assume the
// normalization done by earlier ones.
package insight

import (
	"regexp"
	"strconv"
	"strings"
)

// Parsed is the structured form of one model response
type Parsed struct {
	Cleaned  string
	Score    *float64 // nil when the response carries no health score
	Sections []string
}

// Parse extracts the health score from the raw response, cleans the
// text, and splits it into sections.
func Parse(raw string) Parsed {
	score := ExtractScore(raw)
	cleaned := Clean(raw)
	return Parsed{
		Cleaned:  cleaned,
		Score:    score,
		Sections: SplitSections(cleaned),
	}
}

var scoreRe = regexp.MustCompile(`(?i)Financial Health Score:?\s*(\d+(?:\.\d+)?)[/\s]*10`)

// ExtractScore finds the "N/10" health score in the raw response.
// Returns nil, not zero, when no score is present.
func ExtractScore(raw string) *float64 {
	m := scoreRe.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	score, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &score
}

// stage is one named cleaning transformation
type stage struct {
	name string
	fn   func(string) string
}

var cleaningStages = []stage{
	{"truncate-score-trailer", truncateScoreTrailer},
	{"strip-enumeration", stripEnumeration},
	{"separate-sections", separateSections},
	{"normalize-bullets", normalizeBullets},
	{"collapse-newlines", collapseNewlines},
	{"trim-ellipses", trimEllipses},
	{"tighten-section-titles", tightenSectionTitles},
	{"terminate-score-section", terminateScoreSection},
}

// Clean applies every cleaning stage in order
func Clean(raw string) string {
	text := raw
	for _, s := range cleaningStages {
		text = s.fn(text)
	}
	return text
}

var (
	scoreSectionRe = regexp.MustCompile(`(?s)Financial Health Score:?.*$`)
	scoreTokenRe   = regexp.MustCompile(`\d+(?:\.\d+)?\s*/\s*10|\d+\s*out of\s*10`)
)

// truncateScoreTrailer discards commentary the model appends after the
// health-score sentence: everything past the first period following the
// "N/10" token is cut, and the section is re-terminated with a period.
func truncateScoreTrailer(text string) string {
	loc := scoreSectionRe.FindStringIndex(text)
	if loc == nil {
		return text
	}
	section := text[loc[0]:]
	tok := scoreTokenRe.FindStringIndex(section)
	if tok == nil {
		return text
	}
	rest := section[tok[1]:]
	dot := strings.Index(rest, ".")
	if dot < 0 {
		return text
	}
	return text[:loc[0]] + section[:tok[1]] + rest[:dot] + "."
}

var enumRe = regexp.MustCompile(`(?m)^\s*\d+\.\s*`)

// stripEnumeration drops "1.", "2." style markers at line starts; the
// model sometimes numbers sections despite being told not to.
func stripEnumeration(text string) string {
	return enumRe.ReplaceAllString(text, "")
}

var sectionBreakRe = regexp.MustCompile(
	`([.!?])\s*(` + sectionTitleAlternation + `):`)

const sectionTitleAlternation = SectionAssessment + "|" +
	SectionBudgets + "|" +
	SectionSavings + "|" +
	SectionInvestments + "|" +
	SectionScore

// separateSections guarantees a blank line before each canonical
// section title so the final split finds section boundaries.
func separateSections(text string) string {
	return sectionBreakRe.ReplaceAllString(text, "${1}\n\n${2}:")
}

var (
	asteriskBulletRe = regexp.MustCompile(`(?m)^\s*\*\s*(.+)$`)
	bulletGapRe      = regexp.MustCompile(`\n\s*•`)
)

// normalizeBullets converts asterisk-style bullets to the • glyph and
// removes blank lines between consecutive bullets.
func normalizeBullets(text string) string {
	text = asteriskBulletRe.ReplaceAllString(text, "• ${1}")
	return bulletGapRe.ReplaceAllString(text, "\n•")
}

var excessNewlinesRe = regexp.MustCompile(`\n{3,}`)

// collapseNewlines reduces runs of three or more newlines to exactly two
func collapseNewlines(text string) string {
	return excessNewlinesRe.ReplaceAllString(text, "\n\n")
}

var ellipsisRe = regexp.MustCompile(`(?m)\.{3,}$`)

// trimEllipses replaces trailing ellipsis runs at line ends with a period
func trimEllipses(text string) string {
	return ellipsisRe.ReplaceAllString(text, ".")
}

var titleSpacingRe = regexp.MustCompile(
	`(` + sectionTitleAlternation + `):\s*\n+`)

// tightenSectionTitles leaves exactly one newline after each canonical
// section title.
func tightenSectionTitles(text string) string {
	return titleSpacingRe.ReplaceAllString(text, "${1}:\n")
}

var scorePeriodRe = regexp.MustCompile(`(\d+/10)([^.])([^.]*)$`)

// terminateScoreSection makes sure the health-score section ends with a
// period when the response trails off right after the "N/10" token.
func terminateScoreSection(text string) string {
	return scorePeriodRe.ReplaceAllString(text, "${1}.${3}")
}

var sectionSplitRe = regexp.MustCompile(`\n\s*\n`)

// SplitSections splits cleaned text on blank-line boundaries into
// trimmed, non-empty blocks, preserving the order the model produced.
func SplitSections(cleaned string) []string {
	parts := sectionSplitRe.Split(cleaned, -1)
	sections := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sections = append(sections, p)
		}
	}
	return sections
}
