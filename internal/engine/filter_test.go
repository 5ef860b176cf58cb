package engine

import (
	"testing"

	"github.com/jackzampolin/outline/internal/layout"
)

func TestIsBlocked(t *testing.T) {
	blocked := []string{
		"",
		"   ",
		"42",
		"xiv",
		"IV",
		"a",
		"Table of Contents",
		"table of contents",
		"Appendix",
		"INDEX",
		"References",
		"Bibliography",
		"***",
		"- - -",
		"Chapter 4",
		"Section 2.1",
		"Figure 3: Throughput",
		"Fig 12",
		"Table 7",
		"21st March 2024",
		"3 Jan",
		"Monday briefing",
		"Released on Friday afternoon",
		"12/31/2024",
		"1/1/99",
		"2024-06-30",
	}
	for _, text := range blocked {
		if !IsBlocked(text) {
			t.Errorf("IsBlocked(%q) = false, want true", text)
		}
	}

	allowed := []string{
		"Introduction",
		"Results and Discussion",
		"1. Overview",
		"What Is Structure Inference?",
		"Background",
		"A Brief History of Typesetting",
		"Performance Considerations",
	}
	for _, text := range allowed {
		if IsBlocked(text) {
			t.Errorf("IsBlocked(%q) = true, want false", text)
		}
	}
}

func TestFilterLines(t *testing.T) {
	lines := []layout.TextLine{
		{Page: 1, Text: "Introduction"},
		{Page: 1, Text: "42"},
		{Page: 2, Text: "Results"},
		{Page: 2, Text: "Table of Contents"},
		{Page: 3, Text: "Conclusion"},
	}

	kept := FilterLines(lines)
	if len(kept) != 3 {
		t.Fatalf("expected 3 surviving lines, got %d", len(kept))
	}
	want := []string{"Introduction", "Results", "Conclusion"}
	for i, text := range want {
		if kept[i].Text != text {
			t.Errorf("kept[%d].Text = %q, want %q", i, kept[i].Text, text)
		}
	}
}

// Blocked lines must never survive into the outline, whatever their style.
func TestBlocklistIdempotence(t *testing.T) {
	eng := New(DefaultConfig(), nil)

	lines := []layout.TextLine{
		{Page: 1, Text: "Chapter 1", FontSize: 30, Bold: true, Centered: true, Words: 2, Density: 0.1},
		{Page: 1, Text: "Real Heading", FontSize: 20, Bold: true, Words: 2, Density: 0.1},
		{Page: 2, Text: "17", FontSize: 30, Bold: true, Centered: true, Words: 1, Density: 0.1},
	}

	doc := eng.Extract(lines)
	for _, h := range doc.Outline {
		if h.Text == "Chapter 1" || h.Text == "17" {
			t.Errorf("blocked line %q appeared in outline", h.Text)
		}
	}
	if doc.Title == "Chapter 1" {
		t.Errorf("blocked line used as title")
	}
}
