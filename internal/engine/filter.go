package engine

import (
	"regexp"
	"strings"

	"github.com/jackzampolin/outline/internal/layout"
)

// blocklist drops boilerplate that never belongs in an outline: bare page
// numbers, roman-numeral folios, structural section words, figure/table
// captions, and date stamps. Anchored patterns must match from the start
// of the line; the date patterns match anywhere, since running headers
// often embed a date mid-line. Order matches evaluation order.
var blocklist = []*regexp.Regexp{
	regexp.MustCompile(`^\d+$`),
	regexp.MustCompile(`(?i)^[ivxlcdm]+$`),
	regexp.MustCompile(`(?i)^[a-z]$`),
	regexp.MustCompile(`(?i)^Table of Contents$`),
	regexp.MustCompile(`(?i)^Appendix$`),
	regexp.MustCompile(`(?i)^Index$`),
	regexp.MustCompile(`(?i)^References$`),
	regexp.MustCompile(`(?i)^Bibliography$`),
	regexp.MustCompile(`^\s*$`),
	regexp.MustCompile(`^[^a-zA-Z0-9]+$`),
	regexp.MustCompile(`(?i)^(Chapter|Section|Fig|Figure|Table)\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}(st|nd|rd|th)?\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\b`),
	regexp.MustCompile(`(?i)\b(Mon|Tue|Wed|Thu|Fri|Sat|Sun)\w*\b`),
	regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`),
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
}

// IsBlocked reports whether a line is noise that must never reach the
// classifier or the output.
func IsBlocked(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return true
	}
	for _, p := range blocklist {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// FilterLines removes blocked lines, preserving order.
func FilterLines(lines []layout.TextLine) []layout.TextLine {
	kept := make([]layout.TextLine, 0, len(lines))
	for _, l := range lines {
		if !IsBlocked(l.Text) {
			kept = append(kept, l)
		}
	}
	return kept
}
