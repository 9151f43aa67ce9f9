package extract

import (
	"fmt"

	"github.com/termtrack/termtrack/internal/dates"
	"github.com/termtrack/termtrack/internal/model"
	"github.com/termtrack/termtrack/internal/textnorm"
)

// Context window radii per layer. Relative clauses get a wider window than
// absolute dates because the obligation language usually sits farther from
// the duration phrase than from an explicit date.
const (
	absoluteWindow  = 140
	relativeWindow  = 230
	expansionWindow = 280
)

// layerContext carries the shared per-call inputs every layer reads
type layerContext struct {
	text        string
	source      string
	absolute    []dates.AbsoluteMatch
	relative    []dates.RelativeMatch
	anchors     []Anchor
	clauses     []Clause
	locationFor func(index, line int) string
}

// runBaselineAbsoluteLayer emits one candidate per absolute date whose
// surrounding window carries enough evidence.
func (e *Extractor) runBaselineAbsoluteLayer(lc layerContext) []model.Item {
	var out []model.Item
	for _, d := range lc.absolute {
		snip := normalizeSnippet(textnorm.SnippetAround(lc.text, d.Index, absoluteWindow))
		t := e.vocab.TypeFromWindow(snip, "")
		if !e.vocab.keepCandidate(t, snip) {
			continue
		}
		out = append(out, e.newItem(itemParams{
			Type:       t,
			Date:       d.ISODate,
			Confidence: e.vocab.confidenceForAbsolute(t, snip),
			Snippet:    snip,
			Notes:      fmt.Sprintf("Detected absolute date %q on line %d.", d.Original, d.Line+1),
			Source:     lc.source,
			Location:   lc.locationFor(d.Index, d.Line),
		}))
	}
	return out
}

// runBaselineRelativeLayer emits one candidate per relative clause. When
// anchor resolution fails the clause still surfaces as an undated item,
// provided its window passes admission.
func (e *Extractor) runBaselineRelativeLayer(lc layerContext) []model.Item {
	var out []model.Item
	for _, r := range lc.relative {
		snip := normalizeSnippet(textnorm.SnippetAround(lc.text, r.Index, relativeWindow))
		t := e.vocab.TypeFromWindow(snip, r.AnchorHint)
		anchor := e.vocab.resolveAnchor(lc.anchors, lc.absolute, r, r.Index, snip)
		if anchor == "" {
			if !e.vocab.keepCandidate(t, snip) {
				continue
			}
			out = append(out, e.newItem(itemParams{
				Type:       t,
				Confidence: e.vocab.confidenceForRelative(t, snip, false),
				Snippet:    snip,
				Notes:      fmt.Sprintf("Relative clause %q found but no anchor date detected nearby.", r.Snippet),
				Source:     lc.source,
				Location:   lc.locationFor(r.Index, r.Line),
			}))
			continue
		}
		if t == model.TypeOther && !e.vocab.keepCandidate(t, snip) {
			continue
		}
		out = append(out, e.newItem(itemParams{
			Type:       t,
			Date:       dates.AddDays(anchor, r.Direction*r.OffsetDays),
			Confidence: e.vocab.confidenceForRelative(t, snip, true),
			Snippet:    snip,
			Notes:      fmt.Sprintf("Derived from %q using anchor date %s.", r.Snippet, anchor),
			Source:     lc.source,
			Location:   lc.locationFor(r.Index, r.Line),
		}))
	}
	return out
}

// runClauseLayer re-runs both detectors inside each segmented clause, with
// offsets local to the clause. Locally dense clauses yield candidates that
// the global windows blur together. Clauses with neither obligation language
// nor contract context are skipped before any detection runs.
func (e *Extractor) runClauseLayer(lc layerContext) []model.Item {
	var out []model.Item
	for _, clause := range lc.clauses {
		clauseText := normalizeSnippet(clause.Text)
		if !e.vocab.HasObligationLanguage(clauseText) && !e.vocab.HasContractContext(clauseText) {
			continue
		}

		for _, d := range dates.DetectAbsolute(clauseText, []int{0}) {
			absoluteIndex := clause.Start + d.Index
			t := e.vocab.TypeFromWindow(clauseText, "")
			if !e.vocab.keepCandidate(t, clauseText) {
				continue
			}
			out = append(out, e.newItem(itemParams{
				Type:       t,
				Date:       d.ISODate,
				Confidence: e.vocab.confidenceForAbsolute(t, clauseText),
				Snippet:    clauseText,
				Notes:      fmt.Sprintf("Detected obligation-linked absolute date %q in clause context.", d.Original),
				Source:     lc.source,
				Location:   lc.locationFor(absoluteIndex, d.Line),
			}))
		}

		for _, r := range dates.DetectRelative(clauseText, []int{0}) {
			absoluteIndex := clause.Start + r.Index
			t := e.vocab.TypeFromWindow(clauseText, r.AnchorHint)
			anchor := e.vocab.resolveAnchor(lc.anchors, lc.absolute, r, absoluteIndex, clauseText)
			if anchor == "" {
				if !e.vocab.keepCandidate(t, clauseText) {
					continue
				}
				out = append(out, e.newItem(itemParams{
					Type:       t,
					Confidence: e.vocab.confidenceForRelative(t, clauseText, false),
					Snippet:    clauseText,
					Notes:      fmt.Sprintf("Relative clause %q found in obligation context but no anchor date resolved.", r.Snippet),
					Source:     lc.source,
					Location:   lc.locationFor(absoluteIndex, r.Line),
				}))
				continue
			}
			out = append(out, e.newItem(itemParams{
				Type:       t,
				Date:       dates.AddDays(anchor, r.Direction*r.OffsetDays),
				Confidence: e.vocab.confidenceForRelative(t, clauseText, true),
				Snippet:    clauseText,
				Notes:      fmt.Sprintf("Derived from clause-relative date %q using anchor %s.", r.Snippet, anchor),
				Source:     lc.source,
				Location:   lc.locationFor(absoluteIndex, r.Line),
			}))
		}
	}
	return out
}

// runAnchorExpansionLayer searches a wide window around every non-generic
// anchor for relative clauses. This recovers pairings where the anchor
// precedes the duration phrase by more text than the baseline window covers.
func (e *Extractor) runAnchorExpansionLayer(lc layerContext) []model.Item {
	var out []model.Item
	for _, anchor := range lc.anchors {
		if hasLabel(anchor.Labels, "generic") {
			continue
		}
		context := normalizeSnippet(textnorm.SnippetAround(lc.text, anchor.Index, expansionWindow))
		for _, r := range dates.DetectRelative(context, []int{0}) {
			hint := r.AnchorHint
			if hint == "" {
				hint = anchor.Labels[0]
			}
			t := e.vocab.TypeFromWindow(context, hint)
			if !e.vocab.keepCandidate(t, context) {
				continue
			}
			out = append(out, e.newItem(itemParams{
				Type:       t,
				Date:       dates.AddDays(anchor.ISODate, r.Direction*r.OffsetDays),
				Confidence: e.vocab.confidenceForRelative(t, context, true),
				Snippet:    context,
				Notes:      fmt.Sprintf("Anchor-expansion: %q resolved from anchor %s.", r.Snippet, anchor.ISODate),
				Source:     lc.source,
				Location:   lc.locationFor(anchor.Index, anchor.Line),
			}))
		}
	}
	return out
}

// runSentenceSweepLayer is the final high-recall pass: every obligation-
// bearing sentence is scanned for relative clauses, and only successful
// anchor resolutions emit items. No undated fallback at this layer.
func (e *Extractor) runSentenceSweepLayer(lc layerContext) []model.Item {
	var out []model.Item
	for _, loc := range sentenceSplitRe.FindAllStringIndex(lc.text, -1) {
		sentence := normalizeSnippet(lc.text[loc[0]:loc[1]])
		if sentence == "" || !e.vocab.HasObligationLanguage(sentence) {
			continue
		}
		for _, r := range dates.DetectRelative(sentence, []int{0}) {
			globalIndex := loc[0] + r.Index
			t := e.vocab.TypeFromWindow(sentence, r.AnchorHint)
			anchor := e.vocab.resolveAnchor(lc.anchors, lc.absolute, r, globalIndex, sentence)
			if anchor == "" {
				continue
			}
			out = append(out, e.newItem(itemParams{
				Type:       t,
				Date:       dates.AddDays(anchor, r.Direction*r.OffsetDays),
				Confidence: e.vocab.confidenceForRelative(t, sentence, true),
				Snippet:    sentence,
				Notes:      fmt.Sprintf("Sentence sweep derived from %q with anchor %s.", r.Snippet, anchor),
				Source:     lc.source,
				Location:   lc.locationFor(globalIndex, r.Line),
			}))
		}
	}
	return out
}

func hasLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
