package engine

import (
	"sort"
	"strings"
)

// FindTitle selects the document title from the first page: the cluster
// of lines sharing (within tolerance) the page's largest font size, read
// top to bottom, capped at TitleMaxLines. Multi-line titles are common
// and usually share the document's largest font; the cap bounds runaway
// concatenation when many lines share the max size.
func FindTitle(cfg Config, lines []ClassifiedLine) string {
	var firstPage []ClassifiedLine
	for _, l := range lines {
		if l.Page == 1 {
			firstPage = append(firstPage, l)
		}
	}
	if len(firstPage) == 0 {
		return ""
	}

	maxFont := firstPage[0].FontSize
	for _, l := range firstPage[1:] {
		if l.FontSize > maxFont {
			maxFont = l.FontSize
		}
	}

	var candidates []ClassifiedLine
	for _, l := range firstPage {
		if maxFont-l.FontSize < cfg.TitleSizeTolerance {
			candidates = append(candidates, l)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].BBox.Y0 < candidates[j].BBox.Y0
	})

	if len(candidates) > cfg.TitleMaxLines {
		candidates = candidates[:cfg.TitleMaxLines]
	}

	parts := make([]string, 0, len(candidates))
	for _, c := range candidates {
		parts = append(parts, c.Text)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
