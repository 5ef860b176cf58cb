package engine

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jackzampolin/outline/internal/layout"
)

// ClassifiedLine is a text line plus the two derived classification flags
// the rest of the pipeline branches on.
type ClassifiedLine struct {
	layout.TextLine
	IsParagraph bool // reads as body text
	HeadingLike bool // has the structural shape of a heading
}

// paragraphIndicators are independent textual signals of body text. A
// line is a paragraph when a majority (paragraphVoteMin) hold; no single
// signal is authoritative.
var paragraphIndicators = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z][a-z].*[.!?]$`), // capitalized sentence with terminal punctuation
	regexp.MustCompile(`\b[a-z]{3,}\b`),       // contains a real lowercase word
	regexp.MustCompile(`,\s[a-z]`),            // mid-sentence comma
	regexp.MustCompile(`\b(and|the|of|in|to)\b`),
	regexp.MustCompile(`.{50,}`),
}

const paragraphVoteMin = 3

// headingIndicators are structural heading patterns with their point
// contributions. All are anchored at the start of the line.
var headingIndicators = []struct {
	pattern *regexp.Regexp
	points  int
}{
	{regexp.MustCompile(`^([A-Z][a-z]*)(\s+[A-Z][a-z]*)*$`), 2}, // every word capitalized
	{regexp.MustCompile(`^[A-Z][a-z][^.!?]*$`), 1},              // capitalized, no terminal punctuation
	{regexp.MustCompile(`^[A-Z][^?.]*\?$`), 2},                  // capitalized question
	{regexp.MustCompile(`^\d+\.\s+[A-Z]`), 2},                   // numbered section ("3. Results")
	{regexp.MustCompile(`^[A-Z]\w*(:\s+[A-Z][a-z][^.!?]*)?$`), 1}, // "Word" or "Word: Continuation"
}

var endsInStop = regexp.MustCompile(`[.!]$`)

const headingLikeMin = 2

// Classify computes the paragraph and heading-likeness flags for each
// surviving line.
func Classify(cfg Config, lines []layout.TextLine) []ClassifiedLine {
	classified := make([]ClassifiedLine, 0, len(lines))
	for _, l := range lines {
		classified = append(classified, ClassifiedLine{
			TextLine:    l,
			IsParagraph: isParagraph(cfg, l),
			HeadingLike: isHeadingLike(cfg, l),
		})
	}
	return classified
}

// isParagraph is a majority vote over the paragraph indicators. Lines
// shorter than the minimum paragraph length never qualify.
func isParagraph(cfg Config, line layout.TextLine) bool {
	text := strings.TrimSpace(line.Text)
	if text == "" || line.Words < cfg.MinParagraphWords {
		return false
	}

	votes := 0
	for _, p := range paragraphIndicators {
		if p.MatchString(text) {
			votes++
		}
	}
	return votes >= paragraphVoteMin
}

// isHeadingLike scores the structural heading patterns and applies the
// sentence penalties. The result feeds the candidate scorer as a single
// boolean; the numeric score is internal.
func isHeadingLike(cfg Config, line layout.TextLine) bool {
	text := strings.TrimSpace(line.Text)
	if text == "" || line.Words > cfg.MaxHeadingWords {
		return false
	}
	return headingLikeScore(text, line.Words) >= headingLikeMin
}

// headingLikeScore evaluates every indicator independently so each
// pattern's contribution stays individually testable.
func headingLikeScore(text string, words int) int {
	score := 0
	for _, ind := range headingIndicators {
		if ind.pattern.MatchString(text) {
			score += ind.points
		}
	}

	if endsInStop.MatchString(text) {
		score -= 2
	}
	if startsLower(text) && words > 3 {
		score--
	}
	return score
}

func startsLower(text string) bool {
	for _, r := range text {
		return unicode.IsLower(r)
	}
	return false
}
