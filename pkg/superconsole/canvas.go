// ABOUTME: Canvas is the frame source: draws the root component and tracks its height
// ABOUTME: Knows how to move the cursor back to its top and erase what it drew

package superconsole

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/mauromedda/superconsole/pkg/superconsole/content"
)

// FrameSource produces frames and the cursor movements needed to repaint
// them in place.
type FrameSource interface {
	// MoveUp writes the bytes that put the cursor on the first row of the
	// previously drawn frame.
	MoveUp(buf *bytes.Buffer)
	// Draw produces a new frame.
	Draw(state *State, dims Dimensions, mode DrawMode) (content.Lines, error)
	// Clear writes the bytes that erase the previously drawn frame.
	Clear(buf *bytes.Buffer) error
}

// Canvas wraps the root component. Every frame ends with a newline, so
// after a frame is written the cursor sits one row below it.
type Canvas struct {
	root   Component
	height int
}

// NewCanvas returns a Canvas drawing root.
func NewCanvas(root Component) *Canvas {
	return &Canvas{root: root}
}

// Height returns the number of rows of the last drawn frame.
func (c *Canvas) Height() int {
	return c.height
}

// MoveUp writes a carriage return followed by cursor-up over the last frame.
func (c *Canvas) MoveUp(buf *bytes.Buffer) {
	if c.height == 0 {
		return
	}
	buf.WriteByte('\r')
	buf.WriteString(ansi.CursorUp(c.height))
}

// Draw draws the root component and truncates its lines to dims.Width.
func (c *Canvas) Draw(state *State, dims Dimensions, mode DrawMode) (content.Lines, error) {
	lines, err := c.root.Draw(state, dims, mode)
	if err != nil {
		return nil, fmt.Errorf("drawing canvas: %w", err)
	}
	lines = lines.Shrink(dims.Width)
	c.height = len(lines)
	return lines, nil
}

// Clear moves to the top of the last frame and erases everything below.
func (c *Canvas) Clear(buf *bytes.Buffer) error {
	c.MoveUp(buf)
	buf.WriteString(ansi.EraseScreenBelow)
	c.height = 0
	return nil
}
