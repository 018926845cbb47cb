// ABOUTME: Component is the contract for everything drawn inside the canvas
// ABOUTME: ComponentFunc adapts a plain function into a Component

package superconsole

import "github.com/mauromedda/superconsole/pkg/superconsole/content"

// Component draws lines for the given state and available dimensions.
// Returned lines wider than dims.Width are truncated by the canvas.
type Component interface {
	Draw(state *State, dims Dimensions, mode DrawMode) (content.Lines, error)
}

// ComponentFunc is a Component implemented by a function.
type ComponentFunc func(state *State, dims Dimensions, mode DrawMode) (content.Lines, error)

// Draw calls f.
func (f ComponentFunc) Draw(state *State, dims Dimensions, mode DrawMode) (content.Lines, error) {
	return f(state, dims, mode)
}
