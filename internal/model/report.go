package model

import "time"

// Report is the envelope written for each processed source
type Report struct {
	Source      string    `json:"source"`       // Source label (usually the file name)
	ExtractedAt time.Time `json:"extracted_at"` // When extraction ran
	ItemCount   int       `json:"item_count"`   // len(Items), for quick inspection
	Warning     string    `json:"warning,omitempty"`
	Items       []Item    `json:"items"`
}

// CountByPriority tallies items per priority level for summaries
func (r *Report) CountByPriority() map[Priority]int {
	counts := make(map[Priority]int, 3)
	for _, it := range r.Items {
		counts[it.Priority]++
	}
	return counts
}
