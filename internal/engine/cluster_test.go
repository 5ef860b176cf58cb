package engine

import (
	"testing"

	"github.com/jackzampolin/outline/internal/layout"
)

func clusterCandidate(page int, text string, size float64, y, score float64) HeadingCandidate {
	return HeadingCandidate{
		ClassifiedLine: ClassifiedLine{
			TextLine: layout.TextLine{
				Page:     page,
				Text:     text,
				FontSize: size,
				BBox:     layout.BBox{Y0: y, Y1: y + size},
			},
		},
		Score: score,
	}
}

func TestAssignLevels(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("empty candidates yield nil", func(t *testing.T) {
		if out := AssignLevels(cfg, nil); out != nil {
			t.Errorf("expected nil outline, got %d entries", len(out))
		}
	})

	t.Run("largest font becomes H1", func(t *testing.T) {
		out := AssignLevels(cfg, []HeadingCandidate{
			clusterCandidate(1, "Sub", 14, 40, 6),
			clusterCandidate(1, "Top", 24, 10, 8),
		})
		if len(out) != 2 {
			t.Fatalf("expected 2 headings, got %d", len(out))
		}
		if out[0].Text != "Top" || out[0].Level != "H1" {
			t.Errorf("out[0] = %+v, want Top/H1", out[0])
		}
		if out[1].Text != "Sub" || out[1].Level != "H2" {
			t.Errorf("out[1] = %+v, want Sub/H2", out[1])
		}
	})

	t.Run("levels clamp at H6", func(t *testing.T) {
		var cands []HeadingCandidate
		for i := 0; i < 8; i++ {
			size := 30 - float64(i)*2
			cands = append(cands, clusterCandidate(1, "h", size, float64(10*i), 6))
		}
		out := AssignLevels(cfg, cands)
		if len(out) != 8 {
			t.Fatalf("expected 8 headings, got %d", len(out))
		}
		for _, h := range out {
			if h.Level > "H6" {
				t.Errorf("level %s exceeds H6", h.Level)
			}
		}
		// 7th and 8th clusters both clamp to H6.
		if out[6].Level != "H6" || out[7].Level != "H6" {
			t.Errorf("deep clusters = %s/%s, want H6/H6", out[6].Level, out[7].Level)
		}
	})

	t.Run("identical style means identical level", func(t *testing.T) {
		out := AssignLevels(cfg, []HeadingCandidate{
			clusterCandidate(1, "First", 18, 10, 9),
			clusterCandidate(3, "Second", 18, 10, 5), // same style, lower score
			clusterCandidate(2, "Other", 24, 10, 6),
		})
		levels := map[string]string{}
		for _, h := range out {
			levels[h.Text] = h.Level
		}
		if levels["First"] != levels["Second"] {
			t.Errorf("same-signature lines got levels %s and %s", levels["First"], levels["Second"])
		}
	})

	t.Run("mean score breaks font-size ties", func(t *testing.T) {
		// Same rounded size, different style (bold), different scores.
		strong := clusterCandidate(2, "Strong", 18, 10, 9)
		strong.Bold = true
		weak := clusterCandidate(1, "Weak", 18, 10, 5)

		out := AssignLevels(cfg, []HeadingCandidate{weak, strong})
		levels := map[string]string{}
		for _, h := range out {
			levels[h.Text] = h.Level
		}
		if levels["Strong"] != "H1" || levels["Weak"] != "H2" {
			t.Errorf("levels = %v, want Strong:H1 Weak:H2", levels)
		}
	})

	t.Run("outline is restored to reading order", func(t *testing.T) {
		out := AssignLevels(cfg, []HeadingCandidate{
			clusterCandidate(2, "C", 14, 5, 6),
			clusterCandidate(1, "B", 14, 90, 6),
			clusterCandidate(1, "A", 24, 10, 8),
			clusterCandidate(2, "D", 14, 50, 6),
		})
		wantOrder := []string{"A", "B", "C", "D"}
		if len(out) != len(wantOrder) {
			t.Fatalf("expected %d headings, got %d", len(wantOrder), len(out))
		}
		lastPage := 0
		for i, h := range out {
			if h.Text != wantOrder[i] {
				t.Errorf("out[%d].Text = %s, want %s", i, h.Text, wantOrder[i])
			}
			if h.Page < lastPage {
				t.Errorf("pages out of order at index %d", i)
			}
			lastPage = h.Page
		}
	})

	t.Run("half-point rounding merges near sizes", func(t *testing.T) {
		out := AssignLevels(cfg, []HeadingCandidate{
			clusterCandidate(1, "A", 18.1, 10, 6),
			clusterCandidate(1, "B", 17.9, 30, 6), // both round to 18.0
		})
		if out[0].Level != out[1].Level {
			t.Errorf("near-size lines split into levels %s and %s", out[0].Level, out[1].Level)
		}
	})
}
