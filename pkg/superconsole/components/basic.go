// ABOUTME: Leaf widgets: Echo shows lines from state, Text shows fixed lines, Blank shows nothing
// ABOUTME: Echo can collapse on the final draw so a status area disappears at shutdown

package components

import (
	"github.com/mauromedda/superconsole/pkg/superconsole"
	"github.com/mauromedda/superconsole/pkg/superconsole/content"
)

// Echo draws the lines of the T value found in state. T must be the
// concrete type stored in the State.
type Echo[T content.LinesProvider] struct {
	collapse bool
}

// NewEcho returns an Echo widget. With collapse set it draws nothing in
// DrawFinal mode.
func NewEcho[T content.LinesProvider](collapse bool) *Echo[T] {
	return &Echo[T]{collapse: collapse}
}

// Draw looks T up in state and returns its lines.
func (e *Echo[T]) Draw(state *superconsole.State, _ superconsole.Dimensions, mode superconsole.DrawMode) (content.Lines, error) {
	if e.collapse && mode == superconsole.DrawFinal {
		return nil, nil
	}
	v, err := superconsole.StateGet[T](state)
	if err != nil {
		return nil, err
	}
	return v.Lines(), nil
}

// Blank draws nothing.
type Blank struct{}

// Draw returns no lines.
func (Blank) Draw(*superconsole.State, superconsole.Dimensions, superconsole.DrawMode) (content.Lines, error) {
	return nil, nil
}

// Text draws a fixed set of lines.
type Text struct {
	lines content.Lines
}

// NewText splits s on newlines into a Text widget.
func NewText(s string) *Text {
	return &Text{lines: content.FromString(s)}
}

// NewTextLines returns a Text widget showing lines.
func NewTextLines(lines content.Lines) *Text {
	return &Text{lines: lines}
}

// SetLines replaces the displayed lines.
func (t *Text) SetLines(lines content.Lines) {
	t.lines = lines
}

// Draw returns the fixed lines.
func (t *Text) Draw(*superconsole.State, superconsole.Dimensions, superconsole.DrawMode) (content.Lines, error) {
	return t.lines, nil
}
