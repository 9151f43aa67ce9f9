// Package textnorm normalizes raw document text line by line and provides
// offset-based lookups over the normalized form. All downstream detectors
// operate on the normalized text, so character offsets observed here are
// stable for the rest of the pipeline.
package textnorm

import (
	"regexp"
	"strings"
)

var spaceTabRun = regexp.MustCompile(`[ \t]+`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalized is the result of normalizing a raw text blob
type Normalized struct {
	Text       string   // Normalized text, lines joined by \n
	Lines      []string // Individual normalized lines
	LineStarts []int    // Character offset of each line's first character
}

// Normalize converts line breaks to \n and collapses runs of spaces/tabs on
// each line. Only spaces and tabs are trimmed at line edges so that form-feed
// page markers coming out of PDF decoding survive intact.
func Normalize(raw string) Normalized {
	safe := strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(safe, "\n")
	for i, l := range lines {
		l = spaceTabRun.ReplaceAllString(l, " ")
		lines[i] = strings.Trim(l, " \t")
	}

	lineStarts := make([]int, len(lines))
	cursor := 0
	for i, l := range lines {
		lineStarts[i] = cursor
		cursor += len(l) + 1
	}

	return Normalized{
		Text:       strings.Join(lines, "\n"),
		Lines:      lines,
		LineStarts: lineStarts,
	}
}

// SnippetAround returns a whitespace-collapsed window of text centered on
// index, clamped to the text bounds.
func SnippetAround(text string, index, radius int) string {
	start := index - radius
	if start < 0 {
		start = 0
	}
	end := index + radius
	if end > len(text) {
		end = len(text)
	}
	if start > len(text) {
		start = len(text)
	}
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text[start:end], " "))
}

// PositionToLine maps a character offset to its 0-based line number via
// binary search over the sorted line-start offsets.
func PositionToLine(pos int, lineStarts []int) int {
	lo, hi := 0, len(lineStarts)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		if lineStarts[mid] <= pos {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if hi < 0 {
		return 0
	}
	return hi
}
