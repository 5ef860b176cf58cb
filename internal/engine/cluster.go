package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/jackzampolin/outline/internal/types"
)

// maxHeadingLevel clamps the deepest emitted outline level (H6).
const maxHeadingLevel = 6

// StyleSignature is the clustering key: candidates that look the same get
// the same outline level. Two lines share a signature iff all five fields
// match exactly. The signature is never persisted.
type StyleSignature struct {
	FontSize float64 // rounded to the nearest 0.5 point
	Bold     bool
	Italic   bool
	Caps     bool
	Centered bool
}

func signatureOf(c HeadingCandidate) StyleSignature {
	return StyleSignature{
		FontSize: math.Round(c.FontSize*2) / 2,
		Bold:     c.Bold,
		Italic:   c.Italic,
		Caps:     c.Caps,
		Centered: c.Centered,
	}
}

// styleCluster is one signature group with its level-ranking keys.
type styleCluster struct {
	sig       StyleSignature
	items     []HeadingCandidate
	meanScore float64
}

// AssignLevels groups candidates by style signature, ranks the groups
// (largest rounded font first, mean candidate score as tie-break), maps
// rank to level clamped at H6, and returns the outline restored to
// reading order (page ascending, then vertical position ascending). Font
// size alone is an unreliable level signal; the composite signature plus
// score-weighted tie-break gives a more stable hierarchy, at the cost of
// sensitivity to inconsistent styling within a document.
func AssignLevels(cfg Config, candidates []HeadingCandidate) []types.Heading {
	if len(candidates) == 0 {
		return nil
	}

	// Group by signature, remembering first-appearance order so the
	// ranking sort below has a deterministic input order.
	groups := make(map[StyleSignature][]HeadingCandidate)
	var order []StyleSignature
	for _, c := range candidates {
		sig := signatureOf(c)
		if _, seen := groups[sig]; !seen {
			order = append(order, sig)
		}
		groups[sig] = append(groups[sig], c)
	}

	clusters := make([]styleCluster, 0, len(order))
	for _, sig := range order {
		items := groups[sig]
		sum := 0.0
		for _, c := range items {
			sum += c.Score
		}
		clusters = append(clusters, styleCluster{
			sig:       sig,
			items:     items,
			meanScore: sum / float64(len(items)),
		})
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		if clusters[i].sig.FontSize != clusters[j].sig.FontSize {
			return clusters[i].sig.FontSize > clusters[j].sig.FontSize
		}
		return clusters[i].meanScore > clusters[j].meanScore
	})

	type placed struct {
		heading types.Heading
		y       float64
	}
	var leveled []placed
	for rank, cluster := range clusters {
		level := rank + 1
		if level > maxHeadingLevel {
			level = maxHeadingLevel
		}
		for _, item := range cluster.items {
			leveled = append(leveled, placed{
				heading: types.Heading{
					Level: fmt.Sprintf("H%d", level),
					Text:  item.Text,
					Page:  item.Page,
				},
				y: item.BBox.Y0,
			})
		}
	}

	sort.SliceStable(leveled, func(i, j int) bool {
		if leveled[i].heading.Page != leveled[j].heading.Page {
			return leveled[i].heading.Page < leveled[j].heading.Page
		}
		return leveled[i].y < leveled[j].y
	})

	outline := make([]types.Heading, 0, len(leveled))
	for _, p := range leveled {
		outline = append(outline, p.heading)
	}
	return outline
}
