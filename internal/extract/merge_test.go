package extract

import (
	"testing"

	"github.com/termtrack/termtrack/internal/model"
)

func TestItemKey_TokenSetIdentity(t *testing.T) {
	a := model.Item{
		Type:     model.TypeNotice,
		Date:     "2026-10-02",
		Location: "Line 1",
		Snippet:  "written notice no later than ninety days",
	}
	b := a
	// Punctuation and token order do not change identity
	b.Snippet = "Notice, written: days ninety -- than later no!"
	if itemKey(a) != itemKey(b) {
		t.Errorf("Expected equal keys, got %q vs %q", itemKey(a), itemKey(b))
	}

	c := a
	c.Date = ""
	if itemKey(a) == itemKey(c) {
		t.Error("Dated and undated items must not share a key")
	}

	d := a
	d.Type = model.TypeTermEnd
	if itemKey(a) == itemKey(d) {
		t.Error("Differently typed items must not share a key")
	}
}

func TestItemKey_ShortTokensIgnored(t *testing.T) {
	a := model.Item{Type: model.TypePayment, Date: "2026-03-25", Location: "Line 2", Snippet: "payment due within days"}
	b := a
	b.Snippet = "payment due within 15 days of it"
	if itemKey(a) != itemKey(b) {
		t.Errorf("Tokens of length <= 2 should not affect identity: %q vs %q", itemKey(a), itemKey(b))
	}
}

func TestMergeItems_KeepsHigherConfidence(t *testing.T) {
	low := model.Item{
		Type: model.TypeRenewal, Date: "2026-06-01", Location: "Line 1",
		Snippet: "renewal notice due", Confidence: model.ConfidenceLow, Notes: "first",
	}
	high := low
	high.Confidence = model.ConfidenceHigh
	high.Notes = "second"

	out := mergeItems([]model.Item{low}, []model.Item{high})
	if len(out) != 1 {
		t.Fatalf("Expected 1 merged item, got %d", len(out))
	}
	if out[0].Confidence != model.ConfidenceHigh || out[0].Notes != "second" {
		t.Errorf("Expected the high-confidence duplicate to win, got %+v", out[0])
	}
}

func TestMergeItems_TieBreaksOnLongerNotes(t *testing.T) {
	short := model.Item{
		Type: model.TypePayment, Date: "2026-03-25", Location: "Line 2",
		Snippet: "payment due within days", Confidence: model.ConfidenceMedium, Notes: "n",
	}
	long := short
	long.Notes = "much longer note with derivation detail"

	out := mergeItems([]model.Item{short}, []model.Item{long})
	if len(out) != 1 || out[0].Notes != long.Notes {
		t.Errorf("Expected longer notes to win the tie, got %+v", out)
	}
}

func TestMergeItems_PreservesInsertionOrder(t *testing.T) {
	items := []model.Item{
		{Type: model.TypeNotice, Date: "2026-01-01", Location: "Line 1", Snippet: "alpha notice clause"},
		{Type: model.TypePayment, Date: "2026-02-01", Location: "Line 2", Snippet: "beta payment clause"},
		{Type: model.TypeRenewal, Date: "2026-03-01", Location: "Line 3", Snippet: "gamma renewal clause"},
	}
	out := mergeItems(nil, items)
	if len(out) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(out))
	}
	for i := range items {
		if out[i].Type != items[i].Type {
			t.Errorf("Order changed at %d: got %q, want %q", i, out[i].Type, items[i].Type)
		}
	}
}

func TestRankAndFilter_LockedKeysSurvive(t *testing.T) {
	v := DefaultVocabulary()
	// Untyped, undated, no deadline signal: would be filtered without a lock
	weak := model.Item{
		Type: model.TypeOther, Location: "Line 5",
		Snippet: "miscellaneous provisions apply generally", Confidence: model.ConfidenceLow,
	}
	locked := map[string]bool{itemKey(weak): true}

	out := v.rankAndFilter([]model.Item{weak}, locked)
	if len(out) != 1 {
		t.Fatalf("Locked item was filtered: %+v", out)
	}
	out = v.rankAndFilter([]model.Item{weak}, map[string]bool{})
	if len(out) != 0 {
		t.Errorf("Unlocked weak item should be filtered, got %+v", out)
	}
}

func TestRankAndFilter_RegulatoryNoiseDropped(t *testing.T) {
	v := DefaultVocabulary()
	noise := model.Item{
		Type: model.TypeOther, Date: "2026-04-01", Location: "Line 9",
		Snippet:    "as promulgated under the federal register and 12 cfr guidance due before April",
		Confidence: model.ConfidenceLow,
	}
	out := v.rankAndFilter([]model.Item{noise}, map[string]bool{})
	if len(out) != 0 {
		t.Errorf("Regulatory citation should be filtered, got %+v", out)
	}
}

func TestPromoteConfidence(t *testing.T) {
	v := DefaultVocabulary()

	it := model.Item{
		Type: model.TypeNotice, Date: "2026-05-01",
		Snippet:    "tenant shall deliver written notice no later than the renewal date",
		Confidence: model.ConfidenceLow,
	}
	if got := v.promoteConfidence(it); got.Confidence != model.ConfidenceHigh {
		t.Errorf("Strong obligation plus deadline signal should promote to high, got %q", got.Confidence)
	}

	undated := it
	undated.Date = ""
	if got := v.promoteConfidence(undated); got.Confidence != model.ConfidenceLow {
		t.Errorf("Undated items must never be promoted, got %q", got.Confidence)
	}

	mild := model.Item{
		Type: model.TypePayment, Date: "2026-05-01",
		Snippet:    "invoice payable before month end",
		Confidence: model.ConfidenceLow,
	}
	if got := v.promoteConfidence(mild); got.Confidence != model.ConfidenceMedium {
		t.Errorf("Obligation plus deadline signal should lift low to medium, got %q", got.Confidence)
	}
}
