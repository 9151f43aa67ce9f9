package dates

import (
	"regexp"
	"strconv"
	"strings"
)

var numberWordUnits = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
}

var numberWordTens = map[string]int{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// numberWordPattern matches a spelled-out quantity, including hyphenated
// compounds like "twenty-five". Shared by the relative-date patterns.
const numberWordPattern = `(?:one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty|thirty|forty|fifty|sixty|seventy|eighty|ninety)(?:[-\s](?:one|two|three|four|five|six|seven|eight|nine))?`

var (
	numberTokenPunct = regexp.MustCompile(`[,'".]`)
	numberTokenAnd   = regexp.MustCompile(`\band\b`)
	numberTokenSpace = regexp.MustCompile(`\s+`)
)

// ParseNumberToken parses a digit string or a spelled-out number ("ninety",
// "twenty-five", "one hundred and eighty") into its integer value. Returns
// 0 when the token is not a recognizable number.
func ParseNumberToken(raw string) int {
	normalized := strings.ToLower(raw)
	normalized = numberTokenPunct.ReplaceAllString(normalized, "")
	normalized = numberTokenAnd.ReplaceAllString(normalized, " ")
	normalized = strings.ReplaceAll(normalized, "-", " ")
	normalized = strings.TrimSpace(numberTokenSpace.ReplaceAllString(normalized, " "))
	if normalized == "" {
		return 0
	}
	if n, err := strconv.Atoi(normalized); err == nil {
		return n
	}

	total := 0
	current := 0
	for _, token := range strings.Split(normalized, " ") {
		if v, ok := numberWordUnits[token]; ok {
			current += v
		} else if v, ok := numberWordTens[token]; ok {
			current += v
		} else if token == "hundred" {
			if current < 1 {
				current = 1
			}
			current *= 100
		} else if token == "thousand" {
			if current < 1 {
				current = 1
			}
			total += current * 1000
			current = 0
		} else {
			return 0
		}
	}
	return total + current
}
