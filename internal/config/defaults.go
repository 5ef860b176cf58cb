package config

import "github.com/jackzampolin/outline/internal/engine"

// DefaultConfig returns the configuration the tool runs with when no
// config file is present. Engine values come from the engine's own
// defaults so the two never drift.
func DefaultConfig() *Config {
	e := engine.DefaultConfig()
	return &Config{
		Engine: EngineConfig{
			MinParagraphWords:  e.MinParagraphWords,
			MaxHeadingWords:    e.MaxHeadingWords,
			MaxHeadingDensity:  e.MaxHeadingDensity,
			ScoreThreshold:     e.ScoreThreshold,
			TitleMaxLines:      e.TitleMaxLines,
			TitleSizeTolerance: e.TitleSizeTolerance,
			Weights: WeightConfig{
				SizeLarge:        e.Weights.SizeLarge,
				SizeMedium:       e.Weights.SizeMedium,
				SizeSmall:        e.Weights.SizeSmall,
				SizeLargeCutoff:  e.Weights.SizeLargeCutoff,
				SizeMediumCutoff: e.Weights.SizeMediumCutoff,
				Bold:             e.Weights.Bold,
				AllCaps:          e.Weights.AllCaps,
				AllCapsMaxWords:  e.Weights.AllCapsMaxWords,
				Centered:         e.Weights.Centered,
				Short:            e.Weights.Short,
				ShortMaxWords:    e.Weights.ShortMaxWords,
				Medium:           e.Weights.Medium,
				MediumMaxWords:   e.Weights.MediumMaxWords,
				Sparse:           e.Weights.Sparse,
				HeadingLike:      e.Weights.HeadingLike,
			},
		},
		Batch: BatchConfig{
			Workers:  0, // runtime.NumCPU() at run time
			Validate: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
