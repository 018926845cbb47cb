// ABOUTME: Line and Lines: ordered styled text used for both log output and frames
// ABOUTME: Lines render into a byte buffer with erase-to-EOL; Drain removes from the head

package content

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Line is one terminal row made of styled spans.
type Line []Span

// Lines is an ordered sequence of rows. Insertion order is significant.
type Lines []Line

// LinesProvider is implemented by state values that can be shown as lines.
type LinesProvider interface {
	Lines() Lines
}

// PlainLine builds a single-span unstyled line.
func PlainLine(text string) Line {
	return Line{Plain(text)}
}

// FromString splits s on newlines into plain lines. A trailing newline
// does not produce an empty final line.
func FromString(s string) Lines {
	s = strings.TrimSuffix(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	parts := strings.Split(s, "\n")
	out := make(Lines, 0, len(parts))
	for _, p := range parts {
		out = append(out, PlainLine(p))
	}
	return out
}

// Len returns the number of graphemes in the line.
func (l Line) Len() int {
	n := 0
	for _, s := range l {
		n += s.Len()
	}
	return n
}

// Width returns the number of cells the line occupies.
func (l Line) Width() int {
	n := 0
	for _, s := range l {
		n += s.Width()
	}
	return n
}

// String returns the unstyled text of the line.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.text)
	}
	return b.String()
}

// Truncate returns the line cut to at most cols cells.
func (l Line) Truncate(cols int) Line {
	if l.Width() <= cols {
		return l
	}
	out := make(Line, 0, len(l))
	remaining := cols
	for _, s := range l {
		if remaining <= 0 {
			break
		}
		w := s.Width()
		if w > remaining {
			out = append(out, s.truncate(remaining))
			break
		}
		out = append(out, s)
		remaining -= w
	}
	return out
}

// PadRight extends the line with spaces up to cols cells.
func (l Line) PadRight(cols int) Line {
	if w := l.Width(); w < cols {
		return append(l[:len(l):len(l)], Plain(strings.Repeat(" ", cols-w)))
	}
	return l
}

// render writes the styled line followed by erase-to-EOL and a newline,
// so residue from a longer previous row never survives.
func (l Line) render(buf *bytes.Buffer) {
	for _, s := range l {
		buf.WriteString(s.String())
	}
	buf.WriteString(ansi.EraseLineRight)
	buf.WriteByte('\n')
}

// GraphemeLen sums the grapheme length of every line.
func (ls Lines) GraphemeLen() int {
	n := 0
	for _, l := range ls {
		n += l.Len()
	}
	return n
}

// Render writes up to limit lines into buf. A negative limit writes all.
func (ls Lines) Render(buf *bytes.Buffer, limit int) {
	n := clampLimit(len(ls), limit)
	for _, l := range ls[:n] {
		l.render(buf)
	}
}

// Drain renders up to limit lines from the head into buf and removes them.
// A negative limit drains everything. Returns the number drained.
func (ls *Lines) Drain(buf *bytes.Buffer, limit int) int {
	n := clampLimit(len(*ls), limit)
	(*ls)[:n].Render(buf, -1)
	if n == len(*ls) {
		*ls = nil
		return n
	}
	// Drained slots are zeroed so their spans can be collected; the next
	// append that outgrows the array drops the dead prefix.
	clear((*ls)[:n])
	*ls = (*ls)[n:]
	return n
}

// Shrink truncates every line to cols cells. The number of lines is kept.
func (ls Lines) Shrink(cols int) Lines {
	out := make(Lines, len(ls))
	for i, l := range ls {
		out[i] = l.Truncate(cols)
	}
	return out
}

// Strings returns the unstyled text of each line.
func (ls Lines) Strings() []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.String()
	}
	return out
}

func clampLimit(n, limit int) int {
	if limit < 0 || limit > n {
		return n
	}
	return limit
}
