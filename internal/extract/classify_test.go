package extract

import (
	"testing"

	"github.com/termtrack/termtrack/internal/model"
)

func TestWithDeadlineConfidence_Precedence(t *testing.T) {
	v := DefaultVocabulary()

	tests := []struct {
		name string
		item model.Item
		want model.DeadlineConfidence
	}{
		{
			name: "auto-renewal beats penalty",
			item: model.Item{
				Type: model.TypeRenewal, Date: "2025-12-31",
				Snippet: "auto-renews unless notice of non-renewal is given; a late fee applies",
			},
			want: model.DeadlineAutoRenewal,
		},
		{
			name: "penalty-backed",
			item: model.Item{
				Type: model.TypePayment, Date: "2026-03-25",
				Snippet: "a late fee of 1.5% accrues on overdue balances",
			},
			want: model.DeadlinePenaltyBacked,
		},
		{
			name: "suspension on non-payment is penalty-backed",
			item: model.Item{
				Type: model.TypePayment, Date: "2026-03-25",
				Snippet: "vendor may suspend services upon non-payment of undisputed amounts",
			},
			want: model.DeadlinePenaltyBacked,
		},
		{
			name: "hard deadline from binding language",
			item: model.Item{
				Type: model.TypeNotice, Date: "2026-10-02",
				Snippet: "tenant gives word no later than the stated day",
			},
			want: model.DeadlineHard,
		},
		{
			name: "undated stays soft",
			item: model.Item{
				Type: model.TypeNotice, Date: "",
				Snippet: "tenant gives word no later than the stated day",
			},
			want: model.DeadlineSoft,
		},
		{
			name: "vague dated clause stays soft",
			item: model.Item{
				Type: model.TypeOther, Date: "2026-06-01",
				Snippet:    "the parties anticipate a review around June",
				Confidence: model.ConfidenceLow,
			},
			want: model.DeadlineSoft,
		},
	}

	for _, tt := range tests {
		out := v.withDeadlineConfidence([]model.Item{tt.item})
		if out[0].DeadlineConfidence != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, out[0].DeadlineConfidence, tt.want)
		}
	}
}

func TestWithPriority_TopThreeDistinctSignatures(t *testing.T) {
	v := DefaultVocabulary()

	mk := func(typ model.ItemType, date, location, snippet string) model.Item {
		return model.Item{
			Type: typ, Date: date, Location: location, Snippet: snippet,
			Confidence: model.ConfidenceHigh,
		}
	}

	items := []model.Item{
		mk(model.TypeRenewal, "2025-12-31", "Line 1", "auto-renew unless non-renewal notice at least 60 days before the term expires"),
		mk(model.TypeTermEnd, "2026-03-01", "Line 1", "the current term expires on the stated day"),
		mk(model.TypeNotice, "2026-10-02", "Line 2", "termination requires written notice no later than ninety days prior"),
		mk(model.TypeNotice, "2026-11-15", "Line 3", "termination on at least thirty days prior written notice"),
		mk(model.TypePayment, "2026-03-25", "Line 4", "invoice payment due within fifteen days"),
	}

	out := v.withPriority(items)

	high := 0
	for _, it := range out {
		if it.Priority == model.PriorityHigh {
			high++
		}
	}
	if high != 3 {
		t.Errorf("Expected exactly 3 high-priority items, got %d: %+v", high, out)
	}

	// Payment-due clause should land at medium, not high
	for _, it := range out {
		if it.Type == model.TypePayment && it.Priority != model.PriorityMedium {
			t.Errorf("Expected payment item at medium priority, got %q", it.Priority)
		}
	}

	// High before lower priorities, dates ascending within the same priority
	lastRank := 4
	lastDate := ""
	for _, it := range out {
		r := model.PriorityRank(it.Priority)
		if r > lastRank {
			t.Errorf("Priority order violated: %+v", out)
		}
		if r == lastRank && lastDate != "" && sortDate(it) < lastDate {
			t.Errorf("Date order violated within priority: %+v", out)
		}
		if r != lastRank {
			lastDate = ""
		}
		lastRank = r
		lastDate = sortDate(it)
	}
}

func TestWithPriority_DuplicateSignatureCountsOnce(t *testing.T) {
	v := DefaultVocabulary()
	base := model.Item{
		Type: model.TypeRenewal, Date: "2025-12-31", Location: "Line 1",
		Snippet:    "auto-renew unless non-renewal notice at least 60 days before the term expires",
		Confidence: model.ConfidenceHigh,
	}
	variant := base
	variant.Snippet = base.Snippet + " of the agreement"

	other := model.Item{
		Type: model.TypeTermEnd, Date: "2026-03-01", Location: "Line 2",
		Snippet:    "the term expires on the stated day",
		Confidence: model.ConfidenceMedium,
	}

	out := v.withPriority([]model.Item{base, variant, other})
	high := 0
	for _, it := range out {
		if it.Priority == model.PriorityHigh {
			high++
		}
	}
	// base and variant share a signature, so only one of them is promoted
	if high != 2 {
		t.Errorf("Expected 2 high-priority items, got %d: %+v", high, out)
	}
}

func TestLooksLikePriorityClauses(t *testing.T) {
	high := model.Item{
		Type: model.TypeNotice, Date: "2026-10-02",
		Snippet: "either party may terminate upon written notice before the stated day",
	}
	if !looksLikeHighPriorityClause(high) {
		t.Error("Termination-with-notice pairing should read high priority")
	}

	undated := high
	undated.Date = ""
	if looksLikeHighPriorityClause(undated) {
		t.Error("Undated items can never be high-priority clauses")
	}

	insurance := model.Item{
		Type: model.TypeOther, Date: "2026-07-01",
		Snippet:    "the insurance policy requires notice of cancellation",
		Confidence: model.ConfidenceLow,
	}
	if !looksLikeMediumPriorityClause(insurance) {
		t.Error("Insurance cancellation notice should read medium priority")
	}

	retention := model.Item{
		Type: model.TypeOther, Date: "2029-01-01",
		Snippet:    "contractor will retain records for three years after final payment",
		Confidence: model.ConfidenceLow,
	}
	if !looksLikeMediumPriorityClause(retention) {
		t.Error("Records retention period should read medium priority")
	}
}
