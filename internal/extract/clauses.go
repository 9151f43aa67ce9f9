package extract

import (
	"regexp"
	"strings"
)

// Clause is a bounded slice of the source text used for locality-scoped
// detection. Start is the character offset of the clause in the full text.
type Clause struct {
	Text  string
	Start int
}

const (
	maxClauseLen   = 650 // Clauses longer than this are chunked
	clauseChunkLen = 520
	clauseStride   = 300
)

var (
	clauseSplitRe   = regexp.MustCompile(`[^.;\n]+[.;\n]?`)
	sentenceSplitRe = regexp.MustCompile(`[^.?!;\n]+[.?!;\n]?`)
	pageMarkerRe    = regexp.MustCompile(`\[\[\[TT_PAGE_\d+\]\]\]`)
	wsRun           = regexp.MustCompile(`\s+`)
)

// normalizeSnippet strips embedded page markers and collapses whitespace
func normalizeSnippet(text string) string {
	s := pageMarkerRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(wsRun.ReplaceAllString(s, " "))
}

// splitClauses segments text into sentence-like units. Abnormally long
// clauses (dense PDF paragraphs with no punctuation) are re-cut into
// overlapping fixed-size windows so local anchor/date proximity survives.
func splitClauses(text string) []Clause {
	var clauses []Clause
	for _, loc := range clauseSplitRe.FindAllStringIndex(text, -1) {
		cleaned := normalizeSnippet(text[loc[0]:loc[1]])
		if cleaned == "" {
			continue
		}
		if len(cleaned) <= maxClauseLen {
			clauses = append(clauses, Clause{Text: cleaned, Start: loc[0]})
			continue
		}
		for i := 0; i < len(cleaned); i += clauseStride {
			end := i + clauseChunkLen
			if end > len(cleaned) {
				end = len(cleaned)
			}
			slice := strings.TrimSpace(cleaned[i:end])
			if slice != "" {
				clauses = append(clauses, Clause{Text: slice, Start: loc[0] + i})
			}
		}
	}
	return clauses
}
