// ABOUTME: Layout widgets: Split stacks children, Padded adds margins, Bounded caps size
// ABOUTME: Children receive contracted dimensions so nested layouts fit their parent

package components

import (
	"fmt"
	"strings"

	"github.com/mauromedda/superconsole/pkg/superconsole"
	"github.com/mauromedda/superconsole/pkg/superconsole/content"
)

// Direction is the axis along which Split lays out children.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

// Split lays children out one after another.
type Split struct {
	children  []superconsole.Component
	direction Direction
}

// NewSplit returns a Split of children along direction.
func NewSplit(direction Direction, children ...superconsole.Component) *Split {
	return &Split{children: children, direction: direction}
}

// Draw draws every child. Vertically, each child gets the rows left over
// by the ones above it. Horizontally, the width is shared evenly and rows
// are joined side by side.
func (s *Split) Draw(state *superconsole.State, dims superconsole.Dimensions, mode superconsole.DrawMode) (content.Lines, error) {
	if s.direction == Horizontal {
		return s.drawHorizontal(state, dims, mode)
	}

	var out content.Lines
	for i, child := range s.children {
		remaining := superconsole.NewDimensions(dims.Width, max(dims.Height-len(out), 0))
		lines, err := child.Draw(state, remaining, mode)
		if err != nil {
			return nil, fmt.Errorf("drawing split child %d: %w", i, err)
		}
		out = append(out, lines...)
	}
	return out, nil
}

func (s *Split) drawHorizontal(state *superconsole.State, dims superconsole.Dimensions, mode superconsole.DrawMode) (content.Lines, error) {
	if len(s.children) == 0 {
		return nil, nil
	}
	share := dims.Width / len(s.children)
	columns := make([]content.Lines, len(s.children))
	rows := 0
	for i, child := range s.children {
		lines, err := child.Draw(state, superconsole.NewDimensions(share, dims.Height), mode)
		if err != nil {
			return nil, fmt.Errorf("drawing split child %d: %w", i, err)
		}
		columns[i] = lines.Shrink(share)
		rows = max(rows, len(lines))
	}

	out := make(content.Lines, rows)
	for r := range rows {
		var row content.Line
		for i, col := range columns {
			var cell content.Line
			if r < len(col) {
				cell = col[r]
			}
			if i < len(columns)-1 {
				cell = cell.PadRight(share)
			}
			row = append(row, cell...)
		}
		out[r] = row
	}
	return out, nil
}

// Padded surrounds a child with blank margins.
type Padded struct {
	child                    superconsole.Component
	left, right, top, bottom int
}

// NewPadded wraps child with the given margins.
func NewPadded(child superconsole.Component, left, right, top, bottom int) *Padded {
	return &Padded{child: child, left: left, right: right, top: top, bottom: bottom}
}

// Draw draws the child in the contracted area and adds the margins.
func (p *Padded) Draw(state *superconsole.State, dims superconsole.Dimensions, mode superconsole.DrawMode) (content.Lines, error) {
	inner := dims.Contract(superconsole.NewDimensions(p.left+p.right, p.top+p.bottom))
	lines, err := p.child.Draw(state, inner, mode)
	if err != nil {
		return nil, err
	}

	out := make(content.Lines, 0, len(lines)+p.top+p.bottom)
	for range p.top {
		out = append(out, content.Line{})
	}
	pad := content.Plain(strings.Repeat(" ", p.left))
	for _, l := range lines.Shrink(inner.Width) {
		row := make(content.Line, 0, len(l)+2)
		if p.left > 0 {
			row = append(row, pad)
		}
		row = append(row, l...)
		if p.right > 0 {
			row = row.PadRight(p.left + inner.Width + p.right)
		}
		out = append(out, row)
	}
	for range p.bottom {
		out = append(out, content.Line{})
	}
	return out, nil
}

// Bounded caps a child to at most maxHeight rows, keeping the newest
// (bottom) rows. A non-positive bound means no limit on that axis.
type Bounded struct {
	child     superconsole.Component
	maxWidth  int
	maxHeight int
}

// NewBounded wraps child with size limits.
func NewBounded(child superconsole.Component, maxWidth, maxHeight int) *Bounded {
	return &Bounded{child: child, maxWidth: maxWidth, maxHeight: maxHeight}
}

// Draw draws the child in the smaller of dims and the bounds.
func (b *Bounded) Draw(state *superconsole.State, dims superconsole.Dimensions, mode superconsole.DrawMode) (content.Lines, error) {
	if b.maxWidth > 0 {
		dims.Width = min(dims.Width, b.maxWidth)
	}
	if b.maxHeight > 0 {
		dims.Height = min(dims.Height, b.maxHeight)
	}
	lines, err := b.child.Draw(state, dims, mode)
	if err != nil {
		return nil, err
	}
	if b.maxHeight > 0 && len(lines) > b.maxHeight {
		lines = lines[len(lines)-b.maxHeight:]
	}
	return lines.Shrink(dims.Width), nil
}
