// ABOUTME: Dimensions of the drawable terminal area and the DrawMode enum
// ABOUTME: DrawFinal is used once at shutdown so components can settle

package superconsole

import "fmt"

// Dimensions is a terminal geometry in character cells.
type Dimensions struct {
	Width  int
	Height int
}

// NewDimensions returns Dimensions of w columns by h rows.
func NewDimensions(w, h int) Dimensions {
	return Dimensions{Width: w, Height: h}
}

// Contract shrinks d by other, saturating each axis at zero.
func (d Dimensions) Contract(other Dimensions) Dimensions {
	return Dimensions{
		Width:  max(d.Width-other.Width, 0),
		Height: max(d.Height-other.Height, 0),
	}
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// DrawMode tells components whether more frames will follow.
type DrawMode int

const (
	// DrawNormal is used for every in-flight tick.
	DrawNormal DrawMode = iota
	// DrawFinal is used exactly once, when the console is finalized.
	DrawFinal
)

func (m DrawMode) String() string {
	switch m {
	case DrawNormal:
		return "normal"
	case DrawFinal:
		return "final"
	default:
		return fmt.Sprintf("DrawMode(%d)", int(m))
	}
}
