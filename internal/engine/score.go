package engine

// HeadingCandidate is a classified line that scored at or above the
// heading threshold.
type HeadingCandidate struct {
	ClassifiedLine
	Score float64
}

// sizeEpsilon keeps the size-ratio division defined when every
// non-paragraph line shares one font size.
const sizeEpsilon = 1e-6

// sizeStats summarizes font sizes over the non-paragraph population.
type sizeStats struct {
	avg float64
	rng float64 // max - min
}

// scoreRule is one independently evaluated signal of the linear scorer.
// Rules never short-circuit each other, so each contribution can be
// tested on its own.
type scoreRule struct {
	name   string
	points func(cfg Config, line ClassifiedLine, stats sizeStats) float64
}

var scoreRules = []scoreRule{
	{
		name: "font-size",
		points: func(cfg Config, line ClassifiedLine, stats sizeStats) float64 {
			ratio := (line.FontSize - stats.avg) / (stats.rng + sizeEpsilon)
			w := cfg.Weights
			switch {
			case ratio > w.SizeLargeCutoff:
				return w.SizeLarge
			case ratio > w.SizeMediumCutoff:
				return w.SizeMedium
			case ratio > 0:
				return w.SizeSmall
			default:
				return 0
			}
		},
	},
	{
		name: "bold",
		points: func(cfg Config, line ClassifiedLine, stats sizeStats) float64 {
			if line.Bold {
				return cfg.Weights.Bold
			}
			return 0
		},
	},
	{
		name: "all-caps",
		points: func(cfg Config, line ClassifiedLine, stats sizeStats) float64 {
			if line.Caps && line.Words <= cfg.Weights.AllCapsMaxWords {
				return cfg.Weights.AllCaps
			}
			return 0
		},
	},
	{
		name: "centered",
		points: func(cfg Config, line ClassifiedLine, stats sizeStats) float64 {
			if line.Centered {
				return cfg.Weights.Centered
			}
			return 0
		},
	},
	{
		name: "length",
		points: func(cfg Config, line ClassifiedLine, stats sizeStats) float64 {
			w := cfg.Weights
			switch {
			case line.Words <= w.ShortMaxWords:
				return w.Short
			case line.Words <= w.MediumMaxWords:
				return w.Medium
			default:
				return 0
			}
		},
	},
	{
		name: "sparse",
		points: func(cfg Config, line ClassifiedLine, stats sizeStats) float64 {
			if line.Density < cfg.MaxHeadingDensity {
				return cfg.Weights.Sparse
			}
			return 0
		},
	},
	{
		name: "heading-like",
		points: func(cfg Config, line ClassifiedLine, stats sizeStats) float64 {
			if line.HeadingLike {
				return cfg.Weights.HeadingLike
			}
			return 0
		},
	},
}

// ScoreCandidates scores every non-paragraph line against the rule table
// and keeps those at or above the threshold. Returns nil when no
// non-paragraph lines exist.
func ScoreCandidates(cfg Config, lines []ClassifiedLine) []HeadingCandidate {
	var nonPara []ClassifiedLine
	for _, l := range lines {
		if !l.IsParagraph {
			nonPara = append(nonPara, l)
		}
	}
	if len(nonPara) == 0 {
		return nil
	}

	stats := computeSizeStats(nonPara)

	var candidates []HeadingCandidate
	for _, l := range nonPara {
		score := 0.0
		for _, rule := range scoreRules {
			score += rule.points(cfg, l, stats)
		}
		if score >= cfg.ScoreThreshold {
			candidates = append(candidates, HeadingCandidate{ClassifiedLine: l, Score: score})
		}
	}
	return candidates
}

func computeSizeStats(lines []ClassifiedLine) sizeStats {
	min, max, sum := lines[0].FontSize, lines[0].FontSize, 0.0
	for _, l := range lines {
		sum += l.FontSize
		if l.FontSize < min {
			min = l.FontSize
		}
		if l.FontSize > max {
			max = l.FontSize
		}
	}
	return sizeStats{
		avg: sum / float64(len(lines)),
		rng: max - min,
	}
}
