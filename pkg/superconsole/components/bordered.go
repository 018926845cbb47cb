// ABOUTME: Bordered draws a lipgloss border around a child widget
// ABOUTME: The child is drawn two cells narrower and two rows shorter than the border

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/superconsole/pkg/superconsole"
	"github.com/mauromedda/superconsole/pkg/superconsole/content"
)

// Bordered frames a child with a border.
type Bordered struct {
	child  superconsole.Component
	border lipgloss.Border
	style  lipgloss.Style
}

// NewBordered frames child with a rounded border drawn in style.
func NewBordered(child superconsole.Component, style lipgloss.Style) *Bordered {
	return &Bordered{child: child, border: lipgloss.RoundedBorder(), style: style}
}

// WithBorder replaces the border characters and returns b.
func (b *Bordered) WithBorder(border lipgloss.Border) *Bordered {
	b.border = border
	return b
}

// Draw draws the child inside the border. An empty child draws nothing,
// so a collapsed status area leaves no empty box behind.
func (b *Bordered) Draw(state *superconsole.State, dims superconsole.Dimensions, mode superconsole.DrawMode) (content.Lines, error) {
	inner := dims.Contract(superconsole.NewDimensions(2, 2))
	lines, err := b.child.Draw(state, inner, mode)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}
	lines = lines.Shrink(inner.Width)

	w := 0
	for _, l := range lines {
		w = max(w, l.Width())
	}

	edge := func(left, fill, right string) content.Line {
		return content.Line{content.Styled(left+strings.Repeat(fill, w)+right, b.style)}
	}

	out := make(content.Lines, 0, len(lines)+2)
	out = append(out, edge(b.border.TopLeft, b.border.Top, b.border.TopRight))
	for _, l := range lines {
		row := content.Line{content.Styled(b.border.Left, b.style)}
		row = append(row, l.PadRight(w)...)
		row = append(row, content.Styled(b.border.Right, b.style))
		out = append(out, row)
	}
	out = append(out, edge(b.border.BottomLeft, b.border.Bottom, b.border.BottomRight))
	return out, nil
}
