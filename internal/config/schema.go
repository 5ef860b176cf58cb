package config

import (
	"log/slog"

	"github.com/jackzampolin/outline/internal/engine"
)

// Config is the full tool configuration.
type Config struct {
	Engine EngineConfig `mapstructure:"engine" yaml:"engine"`
	Batch  BatchConfig  `mapstructure:"batch" yaml:"batch"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

// EngineConfig exposes every engine threshold and scorer weight. The
// defaults reproduce the calibrated contract constants; overriding them
// changes which lines make the outline.
type EngineConfig struct {
	MinParagraphWords  int          `mapstructure:"min_paragraph_words" yaml:"min_paragraph_words"`
	MaxHeadingWords    int          `mapstructure:"max_heading_words" yaml:"max_heading_words"`
	MaxHeadingDensity  float64      `mapstructure:"max_heading_density" yaml:"max_heading_density"`
	ScoreThreshold     float64      `mapstructure:"score_threshold" yaml:"score_threshold"`
	TitleMaxLines      int          `mapstructure:"title_max_lines" yaml:"title_max_lines"`
	TitleSizeTolerance float64      `mapstructure:"title_size_tolerance" yaml:"title_size_tolerance"`
	Weights            WeightConfig `mapstructure:"weights" yaml:"weights"`
}

// WeightConfig mirrors engine.Weights field by field.
type WeightConfig struct {
	SizeLarge        float64 `mapstructure:"size_large" yaml:"size_large"`
	SizeMedium       float64 `mapstructure:"size_medium" yaml:"size_medium"`
	SizeSmall        float64 `mapstructure:"size_small" yaml:"size_small"`
	SizeLargeCutoff  float64 `mapstructure:"size_large_cutoff" yaml:"size_large_cutoff"`
	SizeMediumCutoff float64 `mapstructure:"size_medium_cutoff" yaml:"size_medium_cutoff"`
	Bold             float64 `mapstructure:"bold" yaml:"bold"`
	AllCaps          float64 `mapstructure:"all_caps" yaml:"all_caps"`
	AllCapsMaxWords  int     `mapstructure:"all_caps_max_words" yaml:"all_caps_max_words"`
	Centered         float64 `mapstructure:"centered" yaml:"centered"`
	Short            float64 `mapstructure:"short" yaml:"short"`
	ShortMaxWords    int     `mapstructure:"short_max_words" yaml:"short_max_words"`
	Medium           float64 `mapstructure:"medium" yaml:"medium"`
	MediumMaxWords   int     `mapstructure:"medium_max_words" yaml:"medium_max_words"`
	Sparse           float64 `mapstructure:"sparse" yaml:"sparse"`
	HeadingLike      float64 `mapstructure:"heading_like" yaml:"heading_like"`
}

// BatchConfig controls the batch surface.
type BatchConfig struct {
	Workers  int  `mapstructure:"workers" yaml:"workers"`   // 0 = runtime.NumCPU()
	Validate bool `mapstructure:"validate" yaml:"validate"` // schema-check records before writing
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // debug, info, warn, error
}

// ToEngineConfig converts the configuration into the engine's immutable
// config value.
func (c *Config) ToEngineConfig() engine.Config {
	e := c.Engine
	return engine.Config{
		MinParagraphWords:  e.MinParagraphWords,
		MaxHeadingWords:    e.MaxHeadingWords,
		MaxHeadingDensity:  e.MaxHeadingDensity,
		ScoreThreshold:     e.ScoreThreshold,
		TitleMaxLines:      e.TitleMaxLines,
		TitleSizeTolerance: e.TitleSizeTolerance,
		Weights: engine.Weights{
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
	}
}

// LogLevel parses the configured log level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
