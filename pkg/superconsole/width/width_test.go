// ABOUTME: Tests for grapheme counting, display width, ANSI stripping, truncation
// ABOUTME: Table-driven; covers ASCII, CJK, emoji, combining marks, and escapes

package width

import "testing"

func TestVisibleWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty string", input: "", want: 0},
		{name: "ascii", input: "hello", want: 5},
		{name: "ansi colored", input: "\x1b[31mred\x1b[0m", want: 3},
		{name: "cjk", input: "你好", want: 4},
		{name: "emoji", input: "👋", want: 2},
		{name: "only ansi", input: "\x1b[31m\x1b[0m", want: 0},
		{name: "combining accent", input: "é", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := VisibleWidth(tt.input); got != tt.want {
				t.Errorf("VisibleWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestGraphemeCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "ascii", input: "line 1", want: 6},
		{name: "cjk counts once per character", input: "你好", want: 2},
		{name: "combining accent is one grapheme", input: "é", want: 1},
		{name: "flag emoji is one grapheme", input: "🇮🇹", want: 1},
		{name: "escapes ignored", input: "\x1b[1mab\x1b[0m", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := GraphemeCount(tt.input); got != tt.want {
				t.Errorf("GraphemeCount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no escapes", input: "plain", want: "plain"},
		{name: "sgr", input: "\x1b[1;32mok\x1b[0m", want: "ok"},
		{name: "osc hyperlink", input: "\x1b]8;;http://x\x07link\x1b]8;;\x07", want: "link"},
		{name: "erase line", input: "a\x1b[Kb", want: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		cols  int
		want  string
	}{
		{name: "fits", input: "hello", cols: 10, want: "hello"},
		{name: "cut ascii", input: "hello", cols: 3, want: "hel"},
		{name: "zero columns", input: "hello", cols: 0, want: ""},
		{name: "wide char straddles boundary", input: "ab你c", cols: 3, want: "ab"},
		{name: "keeps trailing reset", input: "\x1b[31mhello\x1b[0m", cols: 2, want: "\x1b[31mhe\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Truncate(tt.input, tt.cols); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.cols, got, tt.want)
			}
		})
	}
}

func TestCacheGenerations(t *testing.T) {
	t.Parallel()

	c := newCache(2)
	c.put("a", metrics{graphemes: 1, width: 1})
	c.put("b", metrics{graphemes: 2, width: 2})
	c.put("c", metrics{graphemes: 3, width: 3}) // a, b move to the old generation

	if m, ok := c.get("a"); !ok || m.graphemes != 1 {
		t.Errorf("get(a) = (%+v, %v), want old generation hit", m, ok)
	}
	c.put("d", metrics{graphemes: 4, width: 4}) // c, a old; b dropped

	if _, ok := c.get("b"); ok {
		t.Error("expected entry unused for two generations to be evicted")
	}
	if _, ok := c.get("a"); !ok {
		t.Error("expected promoted entry to survive a generation flip")
	}
}

func TestMeasure_CountsAndWidthAgree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input     string
		graphemes int
		width     int
	}{
		{input: "e\u0301", graphemes: 1, width: 1},
		{input: "你好", graphemes: 2, width: 4},
		{input: "\x1b[31mé\x1b[0m!", graphemes: 2, width: 2},
	}
	for _, tt := range tests {
		if got := GraphemeCount(tt.input); got != tt.graphemes {
			t.Errorf("GraphemeCount(%q) = %d, want %d", tt.input, got, tt.graphemes)
		}
		if got := VisibleWidth(tt.input); got != tt.width {
			t.Errorf("VisibleWidth(%q) = %d, want %d", tt.input, got, tt.width)
		}
	}
}
