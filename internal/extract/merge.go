package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/termtrack/termtrack/internal/model"
)

const maxItems = 240

const maxKeyTokens = 24

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9\s]`)

// itemKey derives the composite identity used to merge candidates across
// layers: date, type, location, and a sorted token-set digest of the snippet
// (tokens longer than two characters, capped at 24). Layers producing the
// same evidence with slightly different window boundaries collapse to one
// item through this key.
func itemKey(it model.Item) string {
	normalized := nonAlnumRe.ReplaceAllString(strings.ToLower(normalizeSnippet(it.Snippet)), " ")
	seen := make(map[string]bool)
	var tokens []string
	for _, tok := range strings.Fields(normalized) {
		if len(tok) > 2 && !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}
	sort.Strings(tokens)
	if len(tokens) > maxKeyTokens {
		tokens = tokens[:maxKeyTokens]
	}
	date := it.Date
	if date == "" {
		date = "null"
	}
	return date + "|" + string(it.Type) + "|" + it.Location + "|" + strings.Join(tokens, " ")
}

// mergeItems folds incoming items into existing ones by item key, keeping
// the higher-confidence duplicate and breaking ties toward the longer notes.
// Insertion order is preserved so output is deterministic.
func mergeItems(existing, incoming []model.Item) []model.Item {
	order := make([]string, 0, len(existing)+len(incoming))
	byKey := make(map[string]model.Item, len(existing)+len(incoming))

	add := func(it model.Item) {
		key := itemKey(it)
		prev, ok := byKey[key]
		if !ok {
			order = append(order, key)
			byKey[key] = it
			return
		}
		prevScore := model.ConfidenceRank(prev.Confidence)
		nextScore := model.ConfidenceRank(it.Confidence)
		if nextScore > prevScore {
			byKey[key] = it
			return
		}
		if nextScore == prevScore && len(it.Notes) > len(prev.Notes) {
			byKey[key] = it
		}
	}

	for _, it := range existing {
		add(it)
	}
	for _, it := range incoming {
		add(it)
	}

	out := make([]model.Item, 0, len(order))
	for _, key := range order {
		out = append(out, byKey[key])
	}
	return out
}

// relevance scores an item for final ranking
func (v *Vocabulary) relevance(it model.Item) int {
	r := 0
	if it.Type != model.TypeOther {
		r += 3
	}
	if it.Date != "" {
		r += 2
	}
	if v.HasObligationLanguage(it.Snippet) {
		r += 2
	}
	if v.HasContractContext(it.Snippet) {
		r += 1
	}
	if v.LooksLikeRegulatoryReference(it.Snippet) && it.Type == model.TypeOther {
		r -= 3
	}
	return r
}

// promoteConfidence upgrades dated, typed items whose snippet carries both
// obligation language and a deadline signal.
func (v *Vocabulary) promoteConfidence(it model.Item) model.Item {
	if it.Date == "" {
		return it
	}
	if it.Type != model.TypeOther && v.HasStrongObligationLanguage(it.Snippet) && v.HasDeadlineSignal(it.Snippet) {
		it.Confidence = model.ConfidenceHigh
		return it
	}
	if it.Type != model.TypeOther && v.HasObligationLanguage(it.Snippet) && v.HasDeadlineSignal(it.Snippet) &&
		it.Confidence == model.ConfidenceLow {
		it.Confidence = model.ConfidenceMedium
	}
	return it
}

// rankAndFilter promotes confidence, discards low-value noise, and returns
// the survivors ordered by relevance then confidence, capped to maxItems.
// Locked keys (the baseline and clause layers) always survive.
func (v *Vocabulary) rankAndFilter(items []model.Item, lockedKeys map[string]bool) []model.Item {
	promoted := make([]model.Item, 0, len(items))
	for _, it := range items {
		promoted = append(promoted, v.promoteConfidence(it))
	}

	kept := promoted[:0]
	for _, it := range promoted {
		switch {
		case lockedKeys[itemKey(it)]:
		case it.Type != model.TypeOther:
		case it.Date != "" && v.HasDeadlineSignal(it.Snippet) && !v.LooksLikeRegulatoryReference(it.Snippet):
		case it.Confidence == model.ConfidenceHigh && v.HasContractContext(it.Snippet):
		default:
			continue
		}
		kept = append(kept, it)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		ri, rj := v.relevance(kept[i]), v.relevance(kept[j])
		if ri != rj {
			return ri > rj
		}
		return model.ConfidenceRank(kept[i].Confidence) > model.ConfidenceRank(kept[j].Confidence)
	})

	if len(kept) > maxItems {
		kept = kept[:maxItems]
	}
	return kept
}
