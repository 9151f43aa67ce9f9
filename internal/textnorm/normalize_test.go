package textnorm

import "testing"

func TestNormalize_LineEndingsAndWhitespace(t *testing.T) {
	norm := Normalize("First  line\t here\r\nSecond\t\tline \r\n  Third ")

	if len(norm.Lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(norm.Lines))
	}
	if norm.Lines[0] != "First line here" {
		t.Errorf("Expected collapsed first line, got %q", norm.Lines[0])
	}
	if norm.Lines[1] != "Second line" {
		t.Errorf("Expected collapsed second line, got %q", norm.Lines[1])
	}
	if norm.Lines[2] != "Third" {
		t.Errorf("Expected trimmed third line, got %q", norm.Lines[2])
	}
	if norm.Text != "First line here\nSecond line\nThird" {
		t.Errorf("Unexpected joined text: %q", norm.Text)
	}
}

func TestNormalize_PreservesFormFeed(t *testing.T) {
	norm := Normalize("page one\fpage two")
	if norm.Lines[0] != "page one\fpage two" {
		t.Errorf("Form feed should survive normalization, got %q", norm.Lines[0])
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	norm := Normalize("")
	if len(norm.Lines) != 1 || norm.Lines[0] != "" {
		t.Errorf("Empty input should yield one empty line, got %v", norm.Lines)
	}
	if len(norm.LineStarts) != 1 || norm.LineStarts[0] != 0 {
		t.Errorf("Expected single line start at 0, got %v", norm.LineStarts)
	}
}

func TestNormalize_LineStarts(t *testing.T) {
	norm := Normalize("ab\ncdef\ng")
	want := []int{0, 3, 8}
	for i, w := range want {
		if norm.LineStarts[i] != w {
			t.Errorf("LineStarts[%d]: expected %d, got %d", i, w, norm.LineStarts[i])
		}
	}
}

func TestPositionToLine(t *testing.T) {
	lineStarts := []int{0, 3, 8}
	cases := []struct {
		pos  int
		line int
	}{
		{0, 0}, {2, 0}, {3, 1}, {7, 1}, {8, 2}, {100, 2},
	}
	for _, c := range cases {
		if got := PositionToLine(c.pos, lineStarts); got != c.line {
			t.Errorf("PositionToLine(%d): expected %d, got %d", c.pos, c.line, got)
		}
	}
}

func TestSnippetAround(t *testing.T) {
	text := "aaaa bbbb\ncccc  dddd eeee"
	snip := SnippetAround(text, 10, 8)
	if snip != "aa bbbb cccc dd" {
		t.Errorf("Unexpected snippet: %q", snip)
	}

	// Clamped at the edges
	if SnippetAround(text, 0, 4) != "aaaa" {
		t.Errorf("Expected clamped start snippet, got %q", SnippetAround(text, 0, 4))
	}
}
