// Package engine infers a hierarchical document outline (title plus
// nested headings) from per-line text and typographic metadata. It is a
// pure, synchronous pipeline: filter noise lines, classify the rest,
// detect the title on the first page, score heading candidates, and
// cluster candidates by shared style into H1..H6 levels.
package engine

// Config holds every threshold and weight the pipeline uses. It is an
// immutable value passed in at construction; tests override individual
// fields instead of reaching into package state.
type Config struct {
	// MinParagraphWords is the minimum word count for a line to be
	// considered paragraph text at all.
	MinParagraphWords int

	// MaxHeadingWords is the word count above which a line can never be
	// heading-like.
	MaxHeadingWords int

	// MaxHeadingDensity is the rune-per-width density below which a line
	// reads as a sparse heading rather than dense paragraph text.
	MaxHeadingDensity float64

	// ScoreThreshold is the minimum candidate score for a line to enter
	// the outline.
	ScoreThreshold float64

	// TitleMaxLines bounds how many first-page lines are concatenated
	// into the title.
	TitleMaxLines int

	// TitleSizeTolerance is the font-size slack, in points, for a
	// first-page line to join the max-size title cluster.
	TitleSizeTolerance float64

	Weights Weights
}

// Weights are the fixed constants of the linear heading scorer. They are
// part of the output contract: changing them changes which lines make the
// outline, so they live here as named fields rather than inline literals.
type Weights struct {
	// Font size relative to the non-paragraph average, bucketed by
	// normalized size ratio with strict greater-than boundaries.
	SizeLarge        float64 // ratio > SizeLargeCutoff
	SizeMedium       float64 // ratio > SizeMediumCutoff
	SizeSmall        float64 // ratio > 0
	SizeLargeCutoff  float64
	SizeMediumCutoff float64

	// Bold is added for bold lines.
	Bold float64

	// AllCaps is added for fully uppercase lines of at most
	// AllCapsMaxWords words.
	AllCaps         float64
	AllCapsMaxWords int

	// Centered is added for horizontally centered lines.
	Centered float64

	// Short applies up to ShortMaxWords words, Medium up to
	// MediumMaxWords; longer lines get no length credit.
	Short          float64
	ShortMaxWords  int
	Medium         float64
	MediumMaxWords int

	// Sparse is added when text density is below MaxHeadingDensity.
	Sparse float64

	// HeadingLike is added when the structural heading-likeness check
	// passes.
	HeadingLike float64
}

// DefaultConfig returns the contract constants the scorer was calibrated
// with.
func DefaultConfig() Config {
	return Config{
		MinParagraphWords:  8,
		MaxHeadingWords:    15,
		MaxHeadingDensity:  0.6,
		ScoreThreshold:     5,
		TitleMaxLines:      3,
		TitleSizeTolerance: 0.5,
		Weights: Weights{
			SizeLarge:        3,
			SizeMedium:       2,
			SizeSmall:        1,
			SizeLargeCutoff:  0.5,
			SizeMediumCutoff: 0.2,
			Bold:             2,
			AllCaps:          1,
			AllCapsMaxWords:  8,
			Centered:         1,
			Short:            1,
			ShortMaxWords:    10,
			Medium:           0.5,
			MediumMaxWords:   15,
			Sparse:           1,
			HeadingLike:      2,
		},
	}
}
