// Package extract turns normalized contract text into an ordered register of
// dated obligations. Five independent layers generate candidates over the
// same text; a merge/rank/filter stage deduplicates them, and classification
// assigns priority and deadline-confidence labels. The whole pipeline is
// deterministic and purely lexical: same text in, same items out.
package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/termtrack/termtrack/internal/dates"
	"github.com/termtrack/termtrack/internal/model"
	"github.com/termtrack/termtrack/internal/textnorm"
)

var pageMarkerCaptureRe = regexp.MustCompile(`\[\[\[TT_PAGE_(\d+)\]\]\]`)

// Extractor runs the extraction pipeline. Safe for concurrent use: the
// vocabulary is read-only after construction and every call is independent.
type Extractor struct {
	vocab *Vocabulary
}

// New creates an extractor with the default keyword vocabulary
func New() *Extractor {
	return &Extractor{vocab: DefaultVocabulary()}
}

// itemParams collects the fields a layer supplies for a new item
type itemParams struct {
	Type       model.ItemType
	Date       string
	Confidence model.Confidence
	Snippet    string
	Notes      string
	Source     string
	Location   string
}

func (e *Extractor) newItem(p itemParams) model.Item {
	return model.Item{
		ID:                 uuid.NewString(),
		Type:               p.Type,
		Date:               p.Date,
		Confidence:         p.Confidence,
		Priority:           model.PriorityLow,
		DeadlineConfidence: model.DeadlineSoft,
		Label:              e.vocab.Label(p.Type),
		Snippet:            normalizeSnippet(p.Snippet),
		Notes:              p.Notes,
		Source:             p.Source,
		Location:           p.Location,
	}
}

type pageMarker struct {
	index int
	page  int
}

// Extract runs all five layers over rawText and returns the merged, ranked,
// classified item list. The source label is echoed into every item and
// decides whether locations are phrased per page (PDF sources carrying
// page markers) or per line.
func (e *Extractor) Extract(rawText, source string) []model.Item {
	norm := textnorm.Normalize(rawText)
	text := norm.Text
	isPDFSource := strings.HasSuffix(strings.ToLower(source), ".pdf")

	absolute := dates.DetectAbsolute(text, norm.LineStarts)
	relative := dates.DetectRelative(text, norm.LineStarts)

	var markers []pageMarker
	for _, loc := range pageMarkerCaptureRe.FindAllStringSubmatchIndex(text, -1) {
		page, _ := strconv.Atoi(text[loc[2]:loc[3]])
		markers = append(markers, pageMarker{index: loc[0], page: page})
	}

	locationFor := func(index, line int) string {
		if isPDFSource && len(markers) > 0 {
			page := 1
			for _, m := range markers {
				if m.index <= index {
					page = m.page
				}
			}
			return fmt.Sprintf("Page %d", page)
		}
		return fmt.Sprintf("Line %d", line+1)
	}

	lc := layerContext{
		text:        text,
		source:      source,
		absolute:    absolute,
		relative:    relative,
		anchors:     e.vocab.extractAnchors(text, absolute),
		clauses:     splitClauses(text),
		locationFor: locationFor,
	}

	// The baseline and clause layers are the most locally-grounded evidence;
	// their keys are locked so filtering can never drop them.
	baseline := mergeItems(nil, append(
		append(e.runBaselineAbsoluteLayer(lc), e.runBaselineRelativeLayer(lc)...),
		e.runClauseLayer(lc)...,
	))

	lockedKeys := make(map[string]bool, len(baseline))
	for _, it := range baseline {
		lockedKeys[itemKey(it)] = true
	}

	merged := mergeItems(baseline, e.runAnchorExpansionLayer(lc))
	merged = mergeItems(merged, e.runSentenceSweepLayer(lc))

	return e.vocab.withDeadlineConfidence(
		e.vocab.withPriority(
			e.vocab.rankAndFilter(merged, lockedKeys)))
}
