// Package dates implements calendar-date parsing and arithmetic plus the
// absolute and relative date detectors used by the extraction layers.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ToISODate builds a YYYY-MM-DD string from numeric components. The date is
// reconstructed through the calendar and round-trip checked, so impossible
// dates (2025-02-30) return the empty string.
func ToISODate(year, month, day int) string {
	if month < 1 || month > 12 {
		return ""
	}
	dt := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if dt.Year() != year || int(dt.Month()) != month || dt.Day() != day {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// AddDays shifts an ISO date by offsetDays, rolling over month, year and
// leap-year boundaries. Returns "" for an empty or malformed input.
func AddDays(isoDate string, offsetDays int) string {
	if isoDate == "" {
		return ""
	}
	parts := strings.Split(isoDate, "-")
	if len(parts) != 3 {
		return ""
	}
	y, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	d, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return ""
	}
	dt := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offsetDays)
	return fmt.Sprintf("%04d-%02d-%02d", dt.Year(), int(dt.Month()), dt.Day())
}

// normalizeYear expands two-digit years into the 2000s
func normalizeYear(raw string) int {
	year, _ := strconv.Atoi(raw)
	if len(raw) == 2 {
		return 2000 + year
	}
	return year
}

// toDays converts an amount in the given unit into whole days. Months and
// years use flat 30/365-day approximations rather than calendar lengths;
// downstream consumers depend on the flat-day offsets.
func toDays(amount int, unit string) int {
	u := strings.ToLower(unit)
	switch {
	case strings.HasPrefix(u, "week"):
		return amount * 7
	case strings.HasPrefix(u, "month"):
		return amount * 30
	case strings.HasPrefix(u, "year"):
		return amount * 365
	default:
		return amount
	}
}
