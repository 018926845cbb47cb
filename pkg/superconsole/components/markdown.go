// ABOUTME: Markdown widget rendering through glamour, wrapped at the canvas width
// ABOUTME: Caches rendered results keyed by content hash + width

package components

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/superconsole/pkg/superconsole"
	"github.com/mauromedda/superconsole/pkg/superconsole/content"
)

// Markdown renders a markdown document.
type Markdown struct {
	source string
	style  string
	cache  map[string]content.Lines
}

// NewMarkdown creates a Markdown widget using a glamour standard style
// such as "dark", "light" or "notty".
func NewMarkdown(source, style string) *Markdown {
	if style == "" {
		style = "dark"
	}
	return &Markdown{
		source: source,
		style:  style,
		cache:  make(map[string]content.Lines),
	}
}

// SetSource replaces the document.
func (m *Markdown) SetSource(source string) {
	m.source = source
}

// Draw renders the document wrapped to dims.Width.
func (m *Markdown) Draw(_ *superconsole.State, dims superconsole.Dimensions, _ superconsole.DrawMode) (content.Lines, error) {
	if m.source == "" {
		return nil, nil
	}

	key := cacheKey(m.source, dims.Width)
	if cached, ok := m.cache[key]; ok {
		return cached, nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.style),
		glamour.WithWordWrap(dims.Width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(m.source)
	if err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	// glamour adds blank lines around the document.
	rendered = strings.Trim(rendered, "\n")
	var lines content.Lines
	for _, row := range strings.Split(rendered, "\n") {
		lines = append(lines, content.Line{content.FromANSI(strings.TrimRight(row, " "))})
	}

	m.cache[key] = lines
	return lines, nil
}

func cacheKey(s string, width int) string {
	h := sha256.Sum256([]byte(s))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
