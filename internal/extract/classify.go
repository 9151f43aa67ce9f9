package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/termtrack/termtrack/internal/model"
)

const maxHighPriority = 3 // Distinct signatures promoted to high priority

var (
	renewalCriticalRe   = regexp.MustCompile(`auto[- ]?renew|renewal term|notice of non[- ]?renewal|non[- ]?renewal|successive one`)
	noticeTimingRe      = regexp.MustCompile(`notice|prior|before|at least|no later than`)
	termBoundaryRe      = regexp.MustCompile(`end of term|term ends?|expires?|expiration|termination date`)
	terminationFirstRe  = regexp.MustCompile(`(terminate|termination|cancel|cancellation).{0,90}(prior notice|written notice|at least|no later than|before)`)
	noticeFirstRe       = regexp.MustCompile(`(prior notice|written notice).{0,90}(terminate|termination|cancel|cancellation)`)
	renewalLanguageRe   = regexp.MustCompile(`non[- ]?renewal|auto[- ]?renew|renewal term`)
	terminationWordsRe  = regexp.MustCompile(`terminate|termination|cancel|cancellation`)
	noticeWordsRe       = regexp.MustCompile(`notice|prior|before|at least`)
	insurancePolicyRe   = regexp.MustCompile(`insurance|policy`)
	cancellationWordsRe = regexp.MustCompile(`notice|cancel|cancellation`)
	paymentDueRe        = regexp.MustCompile(`payment due|invoice|fee due|payable`)
	retentionRe         = regexp.MustCompile(`retain|retention|records|audit period`)
	retentionTimingRe   = regexp.MustCompile(`years?\s+after|after`)

	autoRenewSignalRe    = regexp.MustCompile(`auto[- ]?renew|renewal term|non[- ]?renewal|notice of non[- ]?renewal|successive term`)
	penaltySignalRe      = regexp.MustCompile(`late fee|penalty|penalties|interest|default|breach|liquidated damages|service charge`)
	suspendTerminateRe   = regexp.MustCompile(`suspend|termination|terminate|cancellation|cancel`)
	nonPaymentRe         = regexp.MustCompile(`non[- ]?payment|failure to pay|past due|overdue`)
	hardDeadlineSignalRe = regexp.MustCompile(`no later than|prior to|at least|not less than|within|before|due|deadline|must|shall|required`)
)

// itemText is the combined lowercase snippet+notes the classifiers match on
func itemText(it model.Item) string {
	return strings.ToLower(it.Snippet + " " + it.Notes)
}

// looksLikeHighPriorityClause flags dated items whose language marks a
// renewal-critical window, a term boundary, or a termination-notice pairing.
func looksLikeHighPriorityClause(it model.Item) bool {
	if it.Date == "" {
		return false
	}
	text := itemText(it)
	renewalCritical := renewalCriticalRe.MatchString(text) && noticeTimingRe.MatchString(text)
	termBoundary := termBoundaryRe.MatchString(text)
	terminationNotice := terminationFirstRe.MatchString(text) || noticeFirstRe.MatchString(text)
	return renewalCritical || termBoundary || terminationNotice
}

// looksLikeMediumPriorityClause flags dated items worth tracking but not
// urgent: insurance cancellation notices, payment dues, retention periods.
func looksLikeMediumPriorityClause(it model.Item) bool {
	if it.Date == "" {
		return false
	}
	text := itemText(it)
	insuranceNotice := insurancePolicyRe.MatchString(text) && cancellationWordsRe.MatchString(text)
	paymentDue := it.Type == model.TypePayment && paymentDueRe.MatchString(text)
	retentionDeadline := retentionRe.MatchString(text) && retentionTimingRe.MatchString(text)
	if insuranceNotice || paymentDue || retentionDeadline {
		return true
	}
	return it.Type != model.TypeOther && it.Confidence != model.ConfidenceLow
}

// sortDate substitutes a far-future date so undated items sort last
func sortDate(it model.Item) string {
	if it.Date == "" {
		return "9999-12-31"
	}
	return it.Date
}

// withPriority scores every item, promotes the top three distinct
// (type, date, location) signatures to high priority, marks recognizable
// medium-priority clauses, and orders the final list by priority, date,
// then confidence.
func (v *Vocabulary) withPriority(items []model.Item) []model.Item {
	type scoredItem struct {
		item      model.Item
		highScore int
	}

	scored := make([]scoredItem, 0, len(items))
	for _, it := range items {
		text := itemText(it)
		highScore := 0
		if looksLikeHighPriorityClause(it) {
			highScore += 4
		}
		if it.Type == model.TypeRenewal || it.Type == model.TypeTermEnd {
			highScore += 2
		}
		if renewalLanguageRe.MatchString(text) {
			highScore += 2
		}
		if terminationWordsRe.MatchString(text) && noticeWordsRe.MatchString(text) {
			highScore += 2
		}
		if it.Confidence == model.ConfidenceHigh {
			highScore++
		}
		it.Priority = model.PriorityLow
		scored = append(scored, scoredItem{item: it, highScore: highScore})
	}

	highCandidates := make([]scoredItem, 0, len(scored))
	for _, s := range scored {
		if s.highScore > 0 {
			highCandidates = append(highCandidates, s)
		}
	}
	sort.SliceStable(highCandidates, func(i, j int) bool {
		if highCandidates[i].highScore != highCandidates[j].highScore {
			return highCandidates[i].highScore > highCandidates[j].highScore
		}
		di, dj := sortDate(highCandidates[i].item), sortDate(highCandidates[j].item)
		if di != dj {
			return di < dj
		}
		return model.ConfidenceRank(highCandidates[i].item.Confidence) > model.ConfidenceRank(highCandidates[j].item.Confidence)
	})

	highKeys := make(map[string]bool)
	highSignatures := make(map[string]bool)
	for _, c := range highCandidates {
		date := c.item.Date
		if date == "" {
			date = "null"
		}
		signature := string(c.item.Type) + "|" + date + "|" + c.item.Location
		if highSignatures[signature] {
			continue
		}
		highSignatures[signature] = true
		highKeys[itemKey(c.item)] = true
		if len(highKeys) >= maxHighPriority {
			break
		}
	}

	out := make([]model.Item, 0, len(scored))
	for _, s := range scored {
		it := s.item
		switch {
		case highKeys[itemKey(it)]:
			it.Priority = model.PriorityHigh
		case looksLikeMediumPriorityClause(it):
			it.Priority = model.PriorityMedium
		}
		out = append(out, it)
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := model.PriorityRank(out[i].Priority), model.PriorityRank(out[j].Priority)
		if pi != pj {
			return pi > pj
		}
		di, dj := sortDate(out[i]), sortDate(out[j])
		if di != dj {
			return di < dj
		}
		return model.ConfidenceRank(out[i].Confidence) > model.ConfidenceRank(out[j].Confidence)
	})
	return out
}

// withDeadlineConfidence classifies each item in fixed precedence:
// auto-renewal language, then penalty-backed language, then hard-deadline
// evidence, else soft/implied.
func (v *Vocabulary) withDeadlineConfidence(items []model.Item) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		text := itemText(it)
		switch {
		case autoRenewSignalRe.MatchString(text):
			it.DeadlineConfidence = model.DeadlineAutoRenewal
		case penaltySignalRe.MatchString(text) ||
			(suspendTerminateRe.MatchString(text) && nonPaymentRe.MatchString(text)):
			it.DeadlineConfidence = model.DeadlinePenaltyBacked
		case it.Date != "" && (hardDeadlineSignalRe.MatchString(text) ||
			it.Priority == model.PriorityHigh ||
			(it.Type != model.TypeOther && it.Confidence != model.ConfidenceLow)):
			it.DeadlineConfidence = model.DeadlineHard
		default:
			it.DeadlineConfidence = model.DeadlineSoft
		}
		out = append(out, it)
	}
	return out
}
