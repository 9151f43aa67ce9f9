package dates

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/termtrack/termtrack/internal/textnorm"
)

// AbsoluteMatch is a calendar date written explicitly in the text
type AbsoluteMatch struct {
	ISODate  string // Validated YYYY-MM-DD
	Original string // Matched surface text
	Index    int    // Character offset in the scanned text
	Line     int    // 0-based line number
}

const monthNames = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec`

var monthNumbers = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may":  5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9, "sept": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

func monthNameToNumber(name string) int {
	return monthNumbers[strings.ToLower(name)]
}

type absolutePattern struct {
	re    *regexp.Regexp
	parse func(groups []string) string
}

// Four surface forms: "March 1, 2026", "1 March 2026", ISO, and M/D/YY[YY].
// Each produces an ISO date only when strict calendar validation passes.
var absolutePatterns = []absolutePattern{
	{
		re: regexp.MustCompile(`(?i)\b(` + monthNames + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{2,4})\b`),
		parse: func(g []string) string {
			month := monthNameToNumber(g[1])
			day, _ := strconv.Atoi(g[2])
			return ToISODate(normalizeYear(g[3]), month, day)
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthNames + `)\.?,?\s+(\d{2,4})\b`),
		parse: func(g []string) string {
			day, _ := strconv.Atoi(g[1])
			month := monthNameToNumber(g[2])
			return ToISODate(normalizeYear(g[3]), month, day)
		},
	},
	{
		re: regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`),
		parse: func(g []string) string {
			year, _ := strconv.Atoi(g[1])
			month, _ := strconv.Atoi(g[2])
			day, _ := strconv.Atoi(g[3])
			return ToISODate(year, month, day)
		},
	},
	{
		re: regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`),
		parse: func(g []string) string {
			month, _ := strconv.Atoi(g[1])
			day, _ := strconv.Atoi(g[2])
			return ToISODate(normalizeYear(g[3]), month, day)
		},
	},
}

// DetectAbsolute scans text with every pattern and returns validated matches
// sorted by character offset. Duplicates are not removed here; dedup happens
// later at the item level.
func DetectAbsolute(text string, lineStarts []int) []AbsoluteMatch {
	var matches []AbsoluteMatch
	for _, p := range absolutePatterns {
		for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
			groups := submatchStrings(text, loc)
			iso := p.parse(groups)
			if iso == "" {
				continue
			}
			matches = append(matches, AbsoluteMatch{
				ISODate:  iso,
				Original: groups[0],
				Index:    loc[0],
				Line:     textnorm.PositionToLine(loc[0], lineStarts),
			})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Index < matches[j].Index })
	return matches
}

// submatchStrings expands a FindAllStringSubmatchIndex location into the
// matched text per group ("" for non-participating groups).
func submatchStrings(text string, loc []int) []string {
	groups := make([]string, len(loc)/2)
	for i := range groups {
		start, end := loc[2*i], loc[2*i+1]
		if start >= 0 && end >= 0 {
			groups[i] = text[start:end]
		}
	}
	return groups
}
