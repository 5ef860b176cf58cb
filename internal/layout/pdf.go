package layout

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/api"
)

// Fallback page dimensions (US Letter in points) when a page carries no
// usable MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// OpenPDF extracts styled text lines from a PDF.
//
// Text runs are grouped by row, so each returned TextLine corresponds to
// one visual line. Font size is the maximum run size on the line; bold and
// italic are derived from the font name of the first run, which is how the
// style survives into most PDF generators' embedded font names. PDF page
// coordinates grow upward, so row positions are flipped to the top-down
// convention the engine sorts by.
func OpenPDF(ctx context.Context, path string) ([]TextLine, error) {
	// Validate the file up front; a corrupt PDF should fail here with a
	// useful error rather than partway through text extraction.
	if _, err := pdfPageCount(path); err != nil {
		return nil, fmt.Errorf("invalid PDF %s: %w", path, err)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var lines []TextLine
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := r.Page(pageNum)
		if p.V.IsNull() {
			continue
		}

		pageWidth, pageHeight := pageDimensions(p)

		rows, err := p.GetTextByRow()
		if err != nil {
			// A single malformed page should not sink the document.
			continue
		}

		for _, row := range rows {
			line, ok := lineFromRow(pageNum, row, pageWidth, pageHeight)
			if ok {
				lines = append(lines, line)
			}
		}
	}

	return lines, nil
}

// pdfPageCount validates the document with pdfcpu and returns its page count.
func pdfPageCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return pdfcpu.PageCount(f, nil)
}

// lineFromRow assembles one TextLine from a row of text runs.
func lineFromRow(pageNum int, row *pdf.Row, pageWidth, pageHeight float64) (TextLine, bool) {
	if row == nil || len(row.Content) == 0 {
		return TextLine{}, false
	}

	var sb strings.Builder
	maxSize := 0.0
	x0, x1 := 0.0, 0.0
	for i, run := range row.Content {
		sb.WriteString(run.S)
		if run.FontSize > maxSize {
			maxSize = run.FontSize
		}
		if i == 0 || run.X < x0 {
			x0 = run.X
		}
		if right := run.X + run.W; i == 0 || right > x1 {
			x1 = right
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return TextLine{}, false
	}

	// Row position is the baseline Y in bottom-up PDF coordinates. The top
	// of the line sits roughly one font size above the baseline.
	y1 := pageHeight - float64(row.Position)
	y0 := y1 - maxSize
	if y0 < 0 {
		y0 = 0
	}

	bold, italic := styleFromFont(row.Content[0].Font)
	bbox := BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}
	return NewTextLine(pageNum, text, maxSize, bold, italic, bbox, pageWidth), true
}

// styleFromFont derives bold/italic flags from an embedded font name
// (e.g. "Helvetica-BoldOblique", "TimesNewRomanPS-ItalicMT").
func styleFromFont(name string) (bold, italic bool) {
	lower := strings.ToLower(name)
	bold = strings.Contains(lower, "bold") || strings.Contains(lower, "black") || strings.Contains(lower, "heavy")
	italic = strings.Contains(lower, "italic") || strings.Contains(lower, "oblique")
	return bold, italic
}

// pageDimensions reads the page MediaBox, falling back to US Letter.
func pageDimensions(p pdf.Page) (width, height float64) {
	box := p.V.Key("MediaBox")
	if box.IsNull() || box.Kind() != pdf.Array || box.Len() != 4 {
		return defaultPageWidth, defaultPageHeight
	}

	coords := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v := box.Index(i)
		switch v.Kind() {
		case pdf.Integer:
			coords[i] = float64(v.Int64())
		case pdf.Real:
			coords[i] = v.Float64()
		default:
			return defaultPageWidth, defaultPageHeight
		}
	}

	width = coords[2] - coords[0]
	height = coords[3] - coords[1]
	if width <= 0 || height <= 0 {
		return defaultPageWidth, defaultPageHeight
	}
	return width, height
}
