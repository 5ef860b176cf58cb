// Package layout provides the text-line data model consumed by the
// structure inference engine, plus providers that produce those lines
// from concrete document formats. The engine never opens documents
// itself; everything it sees comes through this boundary.
package layout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Style flag bits carried by layout extractors (bit 1 = bold, bit 2 = italic).
const (
	FlagBold   = 1 << 1
	FlagItalic = 1 << 2
)

// CenterTolerance is the maximum difference, in layout units, between the
// left and right margins of a line for it to count as centered.
const CenterTolerance = 20.0

// ErrUnsupported is returned by Open for file types no provider handles.
var ErrUnsupported = errors.New("unsupported document type")

// BBox is a bounding box in page coordinates, Y increasing downward.
type BBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// TextLine is one line of text with its typographic metadata, as produced
// by a provider. The derived fields (Caps, Words, Centered, Density) are
// computed by NewTextLine so every provider reports them identically.
type TextLine struct {
	Page     int     // 1-based page number
	Text     string  // line text, whitespace-trimmed
	FontSize float64 // maximum run font size on the line
	Bold     bool
	Italic   bool
	Caps     bool    // whole line is uppercase
	Words    int     // whitespace-delimited token count
	Centered bool    // left and right margins within CenterTolerance
	Density  float64 // rune count / bbox width, 0 if width <= 0
	BBox     BBox
}

// NewTextLine builds a TextLine and fills in the derived fields.
func NewTextLine(page int, text string, fontSize float64, bold, italic bool, bbox BBox, pageWidth float64) TextLine {
	text = strings.TrimSpace(text)
	return TextLine{
		Page:     page,
		Text:     text,
		FontSize: fontSize,
		Bold:     bold,
		Italic:   italic,
		Caps:     isUpperText(text),
		Words:    len(strings.Fields(text)),
		Centered: math.Abs(bbox.X0-(pageWidth-bbox.X1)) < CenterTolerance,
		Density:  textDensity(text, bbox),
		BBox:     bbox,
	}
}

// OpenFunc opens one document and yields its complete line sequence.
// The sequence is fully materialized before the engine runs; providers
// own any underlying resources for the duration of the call only.
type OpenFunc func(ctx context.Context, path string) ([]TextLine, error)

// Open routes a path to the provider for its file extension.
func Open(ctx context.Context, path string) ([]TextLine, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return OpenPDF(ctx, path)
	case ".jsonl":
		return OpenLineDump(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))
	}
}

// Supported reports whether Open has a provider for the path.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".jsonl":
		return true
	}
	return false
}

// isUpperText reports whether the text contains at least one cased rune
// and no lowercase runes. Digits and punctuation alone never count as
// all-caps.
func isUpperText(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

// textDensity returns runes per layout unit of line width.
func textDensity(text string, bbox BBox) float64 {
	w := bbox.Width()
	if w <= 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(text)) / w
}
