package dates

import "testing"

func TestParseNumberToken(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"90", 90},
		{"ninety", 90},
		{"sixty", 60},
		{"twenty-five", 25},
		{"twenty five", 25},
		{"Thirty", 30},
		{"one hundred", 100},
		{"one hundred and eighty", 180},
		{"two thousand", 2000},
		{"seven", 7},
		{"fifteen", 15},
	}
	for _, c := range cases {
		if got := ParseNumberToken(c.raw); got != c.want {
			t.Errorf("ParseNumberToken(%q): expected %d, got %d", c.raw, c.want, got)
		}
	}
}

func TestParseNumberToken_Invalid(t *testing.T) {
	for _, raw := range []string{"", "banana", "ninety bananas", "   "} {
		if got := ParseNumberToken(raw); got != 0 {
			t.Errorf("ParseNumberToken(%q): expected 0, got %d", raw, got)
		}
	}
}
