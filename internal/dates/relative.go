package dates

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/termtrack/termtrack/internal/textnorm"
)

// RelativeMatch is a duration phrase expressing an offset from an implicit
// anchor date ("ninety (90) days prior to ...").
type RelativeMatch struct {
	OffsetDays int    // Duration converted to days (weeks x7, months x30, years x365)
	Direction  int    // +1 after the anchor, -1 before it
	Snippet    string // Matched surface text
	Index      int    // Character offset in the scanned text
	Line       int    // 0-based line number
	AnchorHint string // Label vocabulary inferred from the snippet, "" if none
}

// directionFromToken resolves a directional word to a sign. Defaults to the
// pattern's own direction when the token is ambiguous.
func directionFromToken(token string, fallback int) int {
	t := strings.ToLower(token)
	if strings.Contains(t, "after") || strings.Contains(t, "following") ||
		strings.Contains(t, "of") || strings.Contains(t, "from") {
		return 1
	}
	if strings.Contains(t, "before") || strings.Contains(t, "prior") {
		return -1
	}
	return fallback
}

// inferAnchorHint reads the snippet's own vocabulary to bias later anchor
// resolution. First match wins.
func inferAnchorHint(snippet string) string {
	s := strings.ToLower(snippet)
	switch {
	case strings.Contains(s, "renewal") || strings.Contains(s, "renew"):
		return "renewal"
	case strings.Contains(s, "term end") || strings.Contains(s, "end of term") ||
		strings.Contains(s, "expiration") || strings.Contains(s, "expires"):
		return "term_end"
	case strings.Contains(s, "effective date") || strings.Contains(s, "commencement") ||
		strings.Contains(s, "start date"):
		return "effective"
	case strings.Contains(s, "invoice") || strings.Contains(s, "billing"):
		return "invoice"
	case strings.Contains(s, "execution"):
		return "execution"
	case strings.Contains(s, "receipt"):
		return "receipt"
	case strings.Contains(s, "notice"):
		return "notice"
	case strings.Contains(s, "request"):
		return "request"
	case strings.Contains(s, "approval"):
		return "approval"
	}
	return ""
}

// Plain numeric family: direction is fixed by the phrasing itself.
var numericRelativePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bwithin\s+(\d{1,3})\s+days\b`),
	regexp.MustCompile(`(?i)\bwithin\s+(\d{1,3})\s+business\s+days\b`),
	regexp.MustCompile(`(?i)\b(\d{1,3})\s+days?\s+prior\b`),
	regexp.MustCompile(`(?i)\b(\d{1,3})\s+business\s+days?\s+prior\b`),
	regexp.MustCompile(`(?i)\bno\s+later\s+than\s+(\d{1,3})\s+days?\s+after\b`),
	regexp.MustCompile(`(?i)\bno\s+later\s+than\s+(\d{1,3})\s+days?\s+prior\s+to\b`),
	regexp.MustCompile(`(?i)\b(\d{1,3})\s+days?\s+before\s+the\s+end\s+of\s+the\s+term\b`),
	regexp.MustCompile(`(?i)\b(\d{1,3})\s+days?\s+prior\s+to\s+renewal\b`),
	regexp.MustCompile(`(?i)\b(\d{1,3})\s+days?\s+after\s+invoice\b`),
	regexp.MustCompile(`(?i)\b(\d{1,3})\s+days?\s+of\s+execution\b`),
}

// relativePattern captures the legal-parenthetical and spelled-out families,
// where the unit and directional token come from submatch groups.
type relativePattern struct {
	re          *regexp.Regexp
	amountIndex int
	unitIndex   int
	tokenIndex  int // 0 when the pattern has no directional token group
	direction   int // default sign when no token resolves
}

const unitPattern = `(business\s+|calendar\s+)?(days?|weeks?|months?|years?)`

var parenRelativePatterns = []relativePattern{
	{
		re:          regexp.MustCompile(`(?i)\bwithin\s+\w+\s*\((\d{1,3})\)\s*` + unitPattern + `\b`),
		amountIndex: 1, unitIndex: 3, direction: 1,
	},
	{
		re:          regexp.MustCompile(`(?i)\bno\s+later\s+than\s+\w+\s*\((\d{1,3})\)\s*` + unitPattern + `\s+(after|following|before|prior\s+to)\b`),
		amountIndex: 1, unitIndex: 3, tokenIndex: 4, direction: -1,
	},
	{
		re:          regexp.MustCompile(`(?i)\b\w+\s*\((\d{1,3})\)\s*` + unitPattern + `(?:['’]s?)?\s+(prior\s+to|before|after|following|of|from)\b`),
		amountIndex: 1, unitIndex: 3, tokenIndex: 4, direction: -1,
	},
	{
		re:          regexp.MustCompile(`(?i)\b\w+\s*\((\d{1,3})\)\s*` + unitPattern + `(?:['’]s?)?\s+(?:written\s+)?notice\b`),
		amountIndex: 1, unitIndex: 3, direction: -1,
	},
	{
		re:          regexp.MustCompile(`(?i)\b(?:at\s+least|not\s+less\s+than)\s+(\d{1,3})\s*` + unitPattern + `\s+(before|prior\s+to|after|following)\b`),
		amountIndex: 1, unitIndex: 3, tokenIndex: 4, direction: -1,
	},
	{
		re:          regexp.MustCompile(`(?i)\b(\d{1,3})\s*` + unitPattern + `\s+(before|prior\s+to|after|following|of|from)\b`),
		amountIndex: 1, unitIndex: 3, tokenIndex: 4, direction: -1,
	},
	{
		re:          regexp.MustCompile(`(?i)\b\((\d{1,3})\)\s*` + unitPattern + `\s+(before|prior\s+to|after|following|of|from)\b`),
		amountIndex: 1, unitIndex: 3, tokenIndex: 4, direction: -1,
	},
}

var wordRelativePatterns = []relativePattern{
	{
		re:          regexp.MustCompile(`(?i)\bwithin\s+(` + numberWordPattern + `)\s+` + unitPattern + `\b`),
		amountIndex: 1, unitIndex: 3, direction: 1,
	},
	{
		re:          regexp.MustCompile(`(?i)\bno\s+later\s+than\s+(` + numberWordPattern + `)\s+` + unitPattern + `\s+(before|prior\s+to|after|following|from|of)\b`),
		amountIndex: 1, unitIndex: 3, tokenIndex: 4, direction: -1,
	},
	{
		re:          regexp.MustCompile(`(?i)\b(` + numberWordPattern + `)\s+` + unitPattern + `(?:['’]s?)?\s+(prior\s+to|before|after|following|from|of)\b`),
		amountIndex: 1, unitIndex: 3, tokenIndex: 4, direction: -1,
	},
	{
		re:          regexp.MustCompile(`(?i)\b(` + numberWordPattern + `)\s+` + unitPattern + `(?:['’]s?)?\s+(?:written\s+)?notice\b`),
		amountIndex: 1, unitIndex: 3, direction: -1,
	},
}

// DetectRelative scans text with all three pattern families and returns the
// deduplicated matches sorted by character offset.
func DetectRelative(text string, lineStarts []int) []RelativeMatch {
	var rel []RelativeMatch

	push := func(amount int, unit string, direction int, snippet string, index int) {
		if amount <= 0 {
			return
		}
		rel = append(rel, RelativeMatch{
			OffsetDays: toDays(amount, unit),
			Direction:  direction,
			Snippet:    snippet,
			Index:      index,
			Line:       textnorm.PositionToLine(index, lineStarts),
			AnchorHint: inferAnchorHint(snippet),
		})
	}

	for _, re := range numericRelativePatterns {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			groups := submatchStrings(text, loc)
			snippet := groups[0]
			lower := strings.ToLower(snippet)
			direction := -1
			if strings.Contains(lower, "after") || strings.Contains(lower, "within") ||
				strings.Contains(lower, "of execution") {
				direction = 1
			}
			amount, _ := strconv.Atoi(groups[1])
			push(amount, "days", direction, snippet, loc[0])
		}
	}

	runFamily := func(patterns []relativePattern, parseAmount func(string) int) {
		for _, p := range patterns {
			for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
				groups := submatchStrings(text, loc)
				amount := parseAmount(groups[p.amountIndex])
				if amount <= 0 {
					continue
				}
				unit := groups[p.unitIndex]
				if unit == "" {
					unit = "days"
				}
				direction := p.direction
				if p.tokenIndex > 0 {
					direction = directionFromToken(groups[p.tokenIndex], p.direction)
				}
				push(amount, unit, direction, groups[0], loc[0])
			}
		}
	}

	runFamily(parenRelativePatterns, func(raw string) int {
		n, _ := strconv.Atoi(raw)
		return n
	})
	runFamily(wordRelativePatterns, ParseNumberToken)

	// Collapse duplicates produced by overlapping pattern families.
	seen := make(map[string]bool, len(rel))
	deduped := rel[:0]
	for _, r := range rel {
		key := fmt.Sprintf("%d|%d|%d|%s", r.Index, r.OffsetDays, r.Direction, strings.ToLower(r.Snippet))
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, r)
	}
	sort.SliceStable(deduped, func(i, j int) bool { return deduped[i].Index < deduped[j].Index })
	return deduped
}
