// ABOUTME: Spinner animation widget; advances one frame per normal draw
// ABOUTME: On the final draw it collapses into a done label

package components

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/superconsole/pkg/superconsole"
	"github.com/mauromedda/superconsole/pkg/superconsole/content"
)

var defaultFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner displays a spinner with a label. The label may be updated from
// another goroutine.
type Spinner struct {
	mu        sync.Mutex
	frames    []string
	frame     int
	label     string
	doneLabel string
	style     lipgloss.Style
}

// NewSpinner creates a Spinner with the given label.
func NewSpinner(label string) *Spinner {
	return &Spinner{
		frames: defaultFrames,
		label:  label,
		style:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

// SetLabel updates the spinner label.
func (s *Spinner) SetLabel(label string) {
	s.mu.Lock()
	s.label = label
	s.mu.Unlock()
}

// SetDoneLabel sets what is shown on the final draw. Empty means the
// spinner disappears.
func (s *Spinner) SetDoneLabel(label string) {
	s.mu.Lock()
	s.doneLabel = label
	s.mu.Unlock()
}

// Draw returns the current frame and advances the animation.
func (s *Spinner) Draw(_ *superconsole.State, _ superconsole.Dimensions, mode superconsole.DrawMode) (content.Lines, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if mode == superconsole.DrawFinal {
		if s.doneLabel == "" {
			return nil, nil
		}
		return content.Lines{content.PlainLine(s.doneLabel)}, nil
	}

	glyph := s.frames[s.frame]
	s.frame = (s.frame + 1) % len(s.frames)

	line := content.Line{content.Styled(glyph, s.style)}
	if s.label != "" {
		line = append(line, content.Plain(" "+s.label))
	}
	return content.Lines{line}, nil
}
