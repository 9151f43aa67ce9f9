package extract

import (
	"sort"
	"strings"

	"github.com/termtrack/termtrack/internal/dates"
	"github.com/termtrack/termtrack/internal/textnorm"
)

// Anchor is an absolute date enriched with the semantic labels found in its
// immediate neighborhood. Labels default to ["generic"] when no keyword hits.
type Anchor struct {
	ISODate string
	Index   int
	Line    int
	Labels  []string
}

const (
	anchorLabelWindow = 130  // Context radius used when labeling an anchor
	anchorMaxDistance = 2600 // Relative clauses never pair with anchors farther than this
)

// extractAnchors labels every absolute date by scanning the text around it
func (v *Vocabulary) extractAnchors(text string, absolute []dates.AbsoluteMatch) []Anchor {
	anchors := make([]Anchor, 0, len(absolute))
	for _, d := range absolute {
		local := strings.ToLower(textnorm.SnippetAround(text, d.Index, anchorLabelWindow))
		var labels []string
		for _, entry := range v.anchorKeywords {
			if containsAny(local, entry.Keywords) {
				labels = append(labels, entry.Label)
			}
		}
		if len(labels) == 0 {
			labels = []string{"generic"}
		}
		anchors = append(anchors, Anchor{
			ISODate: d.ISODate,
			Index:   d.Index,
			Line:    d.Line,
			Labels:  labels,
		})
	}
	return anchors
}

// labelsFromContext collects every anchor label suggested by the clause's
// surrounding text, seeded with the clause's own hint.
func (v *Vocabulary) labelsFromContext(context, hint string) []string {
	c := strings.ToLower(context)
	var out []string
	seen := make(map[string]bool)
	add := func(label string) {
		if label != "" && !seen[label] {
			seen[label] = true
			out = append(out, label)
		}
	}
	add(hint)
	for _, entry := range v.anchorKeywords {
		if containsAny(c, entry.Keywords) {
			add(entry.Label)
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// nearestAbsolute returns the absolute date closest to the given offset,
// regardless of direction. Returns false when the text has none.
func nearestAbsolute(absolute []dates.AbsoluteMatch, idx int) (dates.AbsoluteMatch, bool) {
	var best dates.AbsoluteMatch
	bestDist := -1
	for _, d := range absolute {
		dist := abs(d.Index - idx)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	return best, bestDist >= 0
}

// resolveAnchor converts a relative clause into the ISO date of the anchor
// it refers to, or "" when no anchor can be matched.
//
// Preferred labels take precedence with no fallback on a miss: pairing a
// notice period with an unrelated date is worse than leaving it undated.
// Only the fully-unhinted case may fall back to the nearest absolute date,
// and then only when the clause's own context still signals a deadline.
func (v *Vocabulary) resolveAnchor(anchors []Anchor, absolute []dates.AbsoluteMatch, rel dates.RelativeMatch, relIndex int, context string) string {
	var preferred []string
	for _, label := range v.labelsFromContext(context, rel.AnchorHint) {
		if v.anchorLabelKnown(label) {
			preferred = append(preferred, label)
		}
	}

	near := make([]Anchor, 0, len(anchors))
	for _, a := range anchors {
		if abs(a.Index-relIndex) <= anchorMaxDistance {
			near = append(near, a)
		}
	}
	sort.SliceStable(near, func(i, j int) bool {
		return abs(near[i].Index-relIndex) < abs(near[j].Index-relIndex)
	})

	if len(preferred) > 0 {
		for _, a := range near {
			for _, label := range a.Labels {
				for _, want := range preferred {
					if label == want {
						return a.ISODate
					}
				}
			}
		}
		return ""
	}

	if rel.AnchorHint != "" && v.anchorLabelKnown(rel.AnchorHint) {
		for _, a := range near {
			for _, label := range a.Labels {
				if label == rel.AnchorHint {
					return a.ISODate
				}
			}
		}
		return ""
	}

	fallback, ok := nearestAbsolute(absolute, relIndex)
	if !ok {
		return ""
	}
	center := len(context) / 2
	fallbackWindow := strings.ToLower(textnorm.SnippetAround(context, center, 120))
	if !v.HasDeadlineSignal(fallbackWindow) {
		return ""
	}
	return fallback.ISODate
}
