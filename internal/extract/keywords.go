package extract

import (
	"strings"

	"github.com/termtrack/termtrack/internal/model"
)

// typeEntry pairs an item type with its keyword list. Slice order is the
// tie-break order for classification, so it is fixed here.
type typeEntry struct {
	Type     model.ItemType
	Keywords []string
}

// anchorEntry pairs an anchor label with its keyword list
type anchorEntry struct {
	Label    string
	Keywords []string
}

// Vocabulary holds every keyword table the pipeline consults. It is built
// once and shared read-only across calls.
type Vocabulary struct {
	typeKeywords    []typeEntry
	typeLabels      map[model.ItemType]string
	anchorKeywords  []anchorEntry
	obligation      []string
	strongTerms     []string
	deadlineSignals []string
	contractContext []string
	regulatoryNoise []string
}

// DefaultVocabulary returns the built-in keyword tables
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		typeKeywords: []typeEntry{
			{model.TypeRenewal, []string{"renew", "renewal", "auto-renew", "extend", "extension", "successive term"}},
			{model.TypeNotice, []string{
				"notice", "notify", "termination", "cancel", "approval", "request",
				"deliver", "provided", "written notice", "promptly",
			}},
			{model.TypePayment, []string{
				"payment due", "invoice", "billed", "fee due", "payable", "fees",
				"compensation", "paid", "payment",
			}},
			{model.TypeTermEnd, []string{"expiration", "expires", "end of term", "expire", "termination date", "term ends"}},
			{model.TypeTrialEnd, []string{"trial", "free trial", "trial period"}},
		},
		typeLabels: map[model.ItemType]string{
			model.TypeRenewal:  "Renewal",
			model.TypeNotice:   "Notice Deadline",
			model.TypePayment:  "Payment Due",
			model.TypeTermEnd:  "Term End",
			model.TypeTrialEnd: "Trial End",
			model.TypeOther:    "Other",
		},
		anchorKeywords: []anchorEntry{
			{"renewal", []string{"renew", "renewal", "auto-renew", "extension", "successive term"}},
			{"term_end", []string{"end of term", "term end", "expires", "expiration", "termination date"}},
			{"effective", []string{"effective date", "commencement", "start date"}},
			{"invoice", []string{"invoice", "billing date", "billed", "statement date"}},
			{"execution", []string{"execution", "executed"}},
			{"receipt", []string{"receipt", "received"}},
		},
		obligation: []string{
			"must", "shall", "required", "due", "no later than", "prior to",
			"before", "after", "within", "at least", "not less than",
			"terminate", "cancellation", "cancel", "notice", "renewal",
			"auto-renew", "expires", "expiration", "invoice", "payment due",
			"fee due", "trial", "provide", "deliver", "submit", "furnish", "payable",
		},
		strongTerms: []string{
			"must", "shall", "required", "no later than", "prior to", "within", "due", "at least",
		},
		deadlineSignals: []string{
			"within", "no later than", "prior to", "before", "after", "by ",
			"due", "deadline", "renewal", "renew", "auto-renew", "expiration",
			"expires", "end of term", "term end", "termination date", "invoice",
			"payment due", "written notice", "business days", "calendar days",
			"days of", "days from", "days following",
		},
		contractContext: []string{
			"agreement", "contract", "term", "effective date", "services",
			"party", "parties", "statement of work", "renewal", "notice",
			"invoice", "payment", "vendor", "contractor", "client",
		},
		regulatoryNoise: []string{
			"federal register", "guidance", "regulation", "regulations", "nist",
			"u.s.c.", "cfr", "public law", "statute", "promulgated",
		},
	}
}

// Label returns the display label for a type
func (v *Vocabulary) Label(t model.ItemType) string {
	if label, ok := v.typeLabels[t]; ok {
		return label
	}
	return v.typeLabels[model.TypeOther]
}

func containsAny(text string, terms []string) bool {
	t := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(t, term) {
			return true
		}
	}
	return false
}

// HasObligationLanguage reports whether the text carries any obligation term
func (v *Vocabulary) HasObligationLanguage(text string) bool {
	return containsAny(text, v.obligation)
}

// HasStrongObligationLanguage reports whether the text carries a
// strongly-binding obligation term ("shall", "must", "no later than", ...)
func (v *Vocabulary) HasStrongObligationLanguage(text string) bool {
	return containsAny(text, v.strongTerms)
}

// HasDeadlineSignal reports whether the text carries a time-bound phrase
func (v *Vocabulary) HasDeadlineSignal(text string) bool {
	return containsAny(text, v.deadlineSignals)
}

// HasContractContext reports whether the text reads like contract prose
func (v *Vocabulary) HasContractContext(text string) bool {
	return containsAny(text, v.contractContext)
}

// LooksLikeRegulatoryReference flags text that cites statutes rather than
// stating contract obligations. Two or more noise terms are required so that
// a lone "regulation" mention does not suppress a real deadline.
func (v *Vocabulary) LooksLikeRegulatoryReference(text string) bool {
	t := strings.ToLower(text)
	hits := 0
	for _, term := range v.regulatoryNoise {
		if strings.Contains(t, term) {
			hits++
		}
	}
	return hits >= 2
}

// TypeFromWindow scores every type's keywords against the window text
// (multi-word keywords count double) and returns the best match. When
// nothing scores, a recognized anchor-label hint maps directly to a type.
func (v *Vocabulary) TypeFromWindow(windowText, fallbackHint string) model.ItemType {
	t := strings.ToLower(windowText)
	bestType := model.TypeOther
	bestScore := 0
	for _, entry := range v.typeKeywords {
		score := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(t, kw) {
				if strings.Contains(kw, " ") {
					score += 2
				} else {
					score++
				}
			}
		}
		if score > bestScore {
			bestScore = score
			bestType = entry.Type
		}
	}
	if bestType != model.TypeOther {
		return bestType
	}
	switch fallbackHint {
	case "invoice":
		return model.TypePayment
	case "renewal":
		return model.TypeRenewal
	case "term_end":
		return model.TypeTermEnd
	case "notice", "request", "approval":
		return model.TypeNotice
	}
	return model.TypeOther
}

// anchorLabelKnown reports whether the label belongs to the anchor vocabulary
func (v *Vocabulary) anchorLabelKnown(label string) bool {
	for _, entry := range v.anchorKeywords {
		if entry.Label == label {
			return true
		}
	}
	return false
}
