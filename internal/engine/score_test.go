package engine

import (
	"testing"

	"github.com/jackzampolin/outline/internal/layout"
)

// candidateLine builds a non-paragraph line with every scoring signal off
// except those the caller switches on.
func candidateLine(text string, words int, size float64) ClassifiedLine {
	return ClassifiedLine{
		TextLine: layout.TextLine{
			Page:     1,
			Text:     text,
			FontSize: size,
			Words:    words,
			Density:  0.9, // dense: no sparse credit
		},
	}
}

// scoreOne scores a single-line population with the threshold lowered so
// the candidate always survives, and returns its score.
func scoreOne(t *testing.T, line ClassifiedLine) float64 {
	t.Helper()
	cfg := DefaultConfig()
	cfg.ScoreThreshold = -100
	cands := ScoreCandidates(cfg, []ClassifiedLine{line})
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}
	return cands[0].Score
}

func TestScoreCandidates(t *testing.T) {
	t.Run("no non-paragraph lines yields empty", func(t *testing.T) {
		line := candidateLine("body text", 9, 10)
		line.IsParagraph = true
		if cands := ScoreCandidates(DefaultConfig(), []ClassifiedLine{line}); cands != nil {
			t.Errorf("expected nil candidates, got %d", len(cands))
		}
	})

	t.Run("paragraphs are excluded from candidates", func(t *testing.T) {
		para := candidateLine("long body text", 12, 10)
		para.IsParagraph = true
		heading := candidateLine("Heading", 1, 20)
		heading.Bold = true
		heading.Centered = true
		heading.HeadingLike = true

		cands := ScoreCandidates(DefaultConfig(), []ClassifiedLine{para, heading})
		for _, c := range cands {
			if c.IsParagraph {
				t.Errorf("paragraph line %q scored as candidate", c.Text)
			}
		}
	})
}

// A candidate engineered to score exactly one point under the threshold
// must be excluded; raising any single signal to reach the threshold must
// include it.
func TestThresholdBoundary(t *testing.T) {
	cfg := DefaultConfig()

	// Single-line population: size ratio is 0, so the size rule gives 0.
	// bold (+2) + centered (+1) + short (+1) = 4.
	line := candidateLine("Borderline Candidate Line Here", 4, 12)
	line.Bold = true
	line.Centered = true

	if got := scoreOne(t, line); got != 4 {
		t.Fatalf("engineered score = %v, want 4", got)
	}
	if cands := ScoreCandidates(cfg, []ClassifiedLine{line}); len(cands) != 0 {
		t.Errorf("score-4 candidate survived threshold %v", cfg.ScoreThreshold)
	}

	// Sparse density adds the fifth point.
	line.Density = 0.3
	if got := scoreOne(t, line); got != 5 {
		t.Fatalf("engineered score = %v, want 5", got)
	}
	if cands := ScoreCandidates(cfg, []ClassifiedLine{line}); len(cands) != 1 {
		t.Errorf("score-5 candidate excluded at threshold %v", cfg.ScoreThreshold)
	}
}

// Adding bold to an otherwise-fixed candidate never decreases its score.
func TestScoreMonotonicity(t *testing.T) {
	t.Run("bold", func(t *testing.T) {
		plain := candidateLine("Some Candidate", 2, 12)
		bold := plain
		bold.Bold = true

		ps, bs := scoreOne(t, plain), scoreOne(t, bold)
		if bs < ps {
			t.Errorf("bold score %v < plain score %v", bs, ps)
		}
		if bs-ps != DefaultConfig().Weights.Bold {
			t.Errorf("bold delta = %v, want %v", bs-ps, DefaultConfig().Weights.Bold)
		}
	})

	t.Run("length credit never increases with word count", func(t *testing.T) {
		short := candidateLine("short", 10, 12)
		medium := candidateLine("medium", 12, 12)
		long := candidateLine("long", 16, 12)

		ss, ms, ls := scoreOne(t, short), scoreOne(t, medium), scoreOne(t, long)
		if !(ss >= ms && ms >= ls) {
			t.Errorf("length sub-score increased with word count: %v, %v, %v", ss, ms, ls)
		}
		if ss-ms != 0.5 || ms-ls != 0.5 {
			t.Errorf("length credits = %v/%v/%v, want 1/0.5/0 steps", ss, ms, ls)
		}
	})
}

// Size buckets use strict greater-than boundaries.
func TestSizeBuckets(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScoreThreshold = -100

	// Population spans sizes 10..20: avg 15, range 10.
	mk := func(size float64) ClassifiedLine {
		return candidateLine("x", 1, size)
	}
	population := []ClassifiedLine{mk(10), mk(12), mk(14), mk(16), mk(18), mk(20)}

	cands := ScoreCandidates(cfg, population)
	if len(cands) != len(population) {
		t.Fatalf("expected %d candidates, got %d", len(population), len(cands))
	}

	// Every line gets the short-length credit (+1); the size rule adds
	// its bucket on top. Ratio for size 20 is 5/(10+eps), a hair under
	// 0.5, so the strict > boundary keeps it in the middle bucket.
	for _, c := range cands {
		base := c.Score - 1 // remove the short-length credit
		var want float64
		switch c.FontSize {
		case 10, 12, 14:
			want = 0
		case 16:
			want = 1
		case 18, 20:
			want = 2
		}
		if base != want {
			t.Errorf("size %v: size-rule points = %v, want %v", c.FontSize, base, want)
		}
	}
}
