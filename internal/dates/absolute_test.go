package dates

import "testing"

func TestDetectAbsolute_SurfaceForms(t *testing.T) {
	text := "Signed on March 1, 2026. Delivery by 15 April 2026. Report 2026-05-20 and 6/30/26."
	matches := DetectAbsolute(text, []int{0})

	if len(matches) != 4 {
		t.Fatalf("Expected 4 matches, got %d: %+v", len(matches), matches)
	}

	want := []string{"2026-03-01", "2026-04-15", "2026-05-20", "2026-06-30"}
	for i, w := range want {
		if matches[i].ISODate != w {
			t.Errorf("Match %d: expected %s, got %s (%q)", i, w, matches[i].ISODate, matches[i].Original)
		}
	}

	// Sorted by offset
	for i := 1; i < len(matches); i++ {
		if matches[i].Index < matches[i-1].Index {
			t.Errorf("Matches not sorted by offset: %d before %d", matches[i].Index, matches[i-1].Index)
		}
	}
}

func TestDetectAbsolute_OrdinalsAndAbbreviations(t *testing.T) {
	text := "Due on the 3rd January 2026, revised Sept. 14th, 2026."
	matches := DetectAbsolute(text, []int{0})
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d: %+v", len(matches), matches)
	}
	if matches[0].ISODate != "2026-01-03" {
		t.Errorf("Expected 2026-01-03, got %s", matches[0].ISODate)
	}
	if matches[1].ISODate != "2026-09-14" {
		t.Errorf("Expected 2026-09-14, got %s", matches[1].ISODate)
	}
}

func TestDetectAbsolute_TwoDigitYear(t *testing.T) {
	matches := DetectAbsolute("Invoice due 1/15/27.", []int{0})
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}
	if matches[0].ISODate != "2027-01-15" {
		t.Errorf("Expected 2027-01-15, got %s", matches[0].ISODate)
	}
}

func TestDetectAbsolute_RejectsInvalidCalendarDates(t *testing.T) {
	matches := DetectAbsolute("Due February 30, 2025 or 2025-04-31 or 13/45/2025.", []int{0})
	if len(matches) != 0 {
		t.Errorf("Expected no matches for impossible dates, got %+v", matches)
	}
}

func TestDetectAbsolute_LineNumbers(t *testing.T) {
	text := "first line\nterm ends March 1, 2026"
	matches := DetectAbsolute(text, []int{0, 11})
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}
	if matches[0].Line != 1 {
		t.Errorf("Expected line 1, got %d", matches[0].Line)
	}
}
