// ABOUTME: Span is a run of text with a single lipgloss style
// ABOUTME: Text is NFC-normalized; control characters are rejected or sanitized

package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/superconsole/pkg/superconsole/width"
)

// ErrControlChar is returned when span text contains a control character
// that would move the cursor behind the renderer's back.
var ErrControlChar = errors.New("control character in span text")

// tabWidth is the number of spaces a tab expands to in sanitized text.
const tabWidth = 4

// Span is styled text that occupies part of a single terminal line.
type Span struct {
	text  string
	style *lipgloss.Style
}

// NewSpan returns an unstyled span, failing on control characters other
// than tab. Tabs are expanded to spaces.
func NewSpan(text string) (Span, error) {
	for i := 0; i < len(text); i++ {
		if isControl(text[i]) && text[i] != '\t' {
			return Span{}, fmt.Errorf("%w: %q at byte %d", ErrControlChar, text[i], i)
		}
	}
	return Span{text: norm.NFC.String(sanitize(text, false))}, nil
}

// Plain returns an unstyled span. Control characters are replaced so the
// call never fails.
func Plain(text string) Span {
	return Span{text: norm.NFC.String(sanitize(text, false))}
}

// Styled returns a span rendered through style. Control characters are
// replaced as in Plain.
func Styled(text string, style lipgloss.Style) Span {
	return Span{text: norm.NFC.String(sanitize(text, false)), style: &style}
}

// FromANSI returns a span for text that already carries SGR color codes,
// such as the output of a child process running under a pty. SGR
// sequences are kept; every other escape or control character is dropped.
func FromANSI(text string) Span {
	return Span{text: norm.NFC.String(sanitize(text, true))}
}

// Text returns the raw span text without styling.
func (s Span) Text() string {
	return s.text
}

// Len returns the grapheme count of the span text.
func (s Span) Len() int {
	return width.GraphemeCount(s.text)
}

// Width returns the number of cells the span occupies.
func (s Span) Width() int {
	return width.VisibleWidth(s.text)
}

// String returns the styled text ready to be written to a terminal.
func (s Span) String() string {
	if s.style == nil {
		return s.text
	}
	return s.style.Render(s.text)
}

// truncate cuts the span text to cols cells, keeping the style.
func (s Span) truncate(cols int) Span {
	s.text = width.Truncate(s.text, cols)
	return s
}

func indexControl(s string) int {
	for i := 0; i < len(s); i++ {
		if isControl(s[i]) {
			return i
		}
	}
	return -1
}

func isControl(b byte) bool {
	return b < 0x20 || b == 0x7f
}

// sanitize expands tabs and replaces control characters with U+FFFD.
// With keepSGR set, SGR escape sequences survive and other escapes are
// removed entirely.
func sanitize(s string, keepSGR bool) string {
	if indexControl(s) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '\t':
			b.WriteString(strings.Repeat(" ", tabWidth))
			i++
		case c == '\x1b' && keepSGR:
			end := skipEscape(s, i)
			if seq := s[i:end]; isSGR(seq) {
				b.WriteString(seq)
			}
			i = end
		case c == '\r' && keepSGR:
			i++
		case isControl(c):
			b.WriteRune('\uFFFD')
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// skipEscape returns the index just past a CSI sequence at s[i], or past
// the two-byte escape when the sequence is not CSI.
func skipEscape(s string, i int) int {
	if i+1 >= len(s) {
		return len(s)
	}
	if s[i+1] != '[' {
		return i + 2
	}
	for j := i + 2; j < len(s); j++ {
		if s[j] >= 0x40 && s[j] <= 0x7E {
			return j + 1
		}
	}
	return len(s)
}

func isSGR(seq string) bool {
	return len(seq) >= 3 && seq[1] == '[' && seq[len(seq)-1] == 'm'
}
