package layout

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// lineRecord is one JSONL record of pre-extracted layout data. The style
// flags use the extractor bitmask convention: value 2 = bold, value 4 =
// italic (FlagBold/FlagItalic).
type lineRecord struct {
	Page      int        `json:"page"`
	Text      string     `json:"text"`
	FontSize  float64    `json:"font_size"`
	Flags     int        `json:"flags"`
	BBox      [4]float64 `json:"bbox"`
	PageWidth float64    `json:"page_width"`
}

// OpenLineDump reads styled text lines from a JSONL line dump, one record
// per line. This is the provider for callers that already ran their own
// layout extraction and only want structure inference.
func OpenLineDump(ctx context.Context, path string) ([]TextLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open line dump: %w", err)
	}
	defer f.Close()

	var lines []TextLine
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		var rec lineRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("line %d: invalid record: %w", lineNum, err)
		}
		if rec.Page < 1 {
			return nil, fmt.Errorf("line %d: page must be >= 1, got %d", lineNum, rec.Page)
		}

		bbox := BBox{X0: rec.BBox[0], Y0: rec.BBox[1], X1: rec.BBox[2], Y1: rec.BBox[3]}
		lines = append(lines, NewTextLine(
			rec.Page,
			rec.Text,
			rec.FontSize,
			rec.Flags&FlagBold != 0,
			rec.Flags&FlagItalic != 0,
			bbox,
			rec.PageWidth,
		))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read line dump: %w", err)
	}

	return lines, nil
}
