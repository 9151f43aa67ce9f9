package model

// ItemType categorizes the obligation an extracted item represents
type ItemType string

const (
	TypeRenewal  ItemType = "renewal"
	TypeNotice   ItemType = "notice"
	TypePayment  ItemType = "payment"
	TypeTermEnd  ItemType = "term_end"
	TypeTrialEnd ItemType = "trial_end"
	TypeOther    ItemType = "other"
)

// Confidence expresses how well the surrounding text supports the item
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ConfidenceRank maps confidence to a comparable score (high > medium > low)
func ConfidenceRank(c Confidence) int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	default:
		return 1
	}
}

// Priority expresses how urgently an item deserves attention
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PriorityRank maps priority to a comparable score (high > medium > low)
func PriorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// DeadlineConfidence classifies how binding the extracted deadline is
type DeadlineConfidence string

const (
	DeadlineHard          DeadlineConfidence = "Hard deadline"
	DeadlineAutoRenewal   DeadlineConfidence = "Auto-renewal"
	DeadlineSoft          DeadlineConfidence = "Soft / implied"
	DeadlinePenaltyBacked DeadlineConfidence = "Penalty-backed"
)

// Item represents one dated (or undated) obligation extracted from a document.
// Date is an ISO YYYY-MM-DD string; empty means the obligation could not be
// anchored to a concrete calendar date.
type Item struct {
	ID                 string             `json:"id"`
	Type               ItemType           `json:"type"`
	Date               string             `json:"date,omitempty"`
	Confidence         Confidence         `json:"confidence"`
	Priority           Priority           `json:"priority"`
	DeadlineConfidence DeadlineConfidence `json:"deadlineConfidence"`
	Label              string             `json:"item"`     // Display label for the type (e.g. "Notice Deadline")
	Snippet            string             `json:"snippet"`  // Whitespace-normalized evidence text
	Notes              string             `json:"notes"`    // How the item was derived
	Source             string             `json:"source"`   // Source label echoed from the caller
	Location           string             `json:"location"` // "Page N" or "Line N"
}
