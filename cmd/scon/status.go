// ABOUTME: Status widget state for the scon canvas: command, counters, elapsed time
// ABOUTME: runStatus is stored in the render State and drawn through an Echo widget

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/superconsole/pkg/superconsole/content"
	"github.com/mauromedda/superconsole/pkg/superconsole/width"
)

var (
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	logStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cmdStyle = lipgloss.NewStyle().Bold(true)
)

const tailLines = 3

type runStatus struct {
	command []string
	started time.Time
	now     time.Time
	stdout  int
	stderr  int
	last    []string
}

func (s runStatus) elapsed() time.Duration {
	return s.now.Sub(s.started).Truncate(100 * time.Millisecond)
}

// Lines implements content.LinesProvider.
func (s runStatus) Lines() content.Lines {
	summary := content.Line{
		content.Styled("$ "+strings.Join(s.command, " "), cmdStyle),
		content.Styled(fmt.Sprintf("  %d lines", s.stdout+s.stderr), dimStyle),
	}
	if s.stderr > 0 {
		summary = append(summary, content.Styled(fmt.Sprintf(" (%d stderr)", s.stderr), errStyle))
	}
	summary = append(summary, content.Styled("  "+s.elapsed().String(), dimStyle))

	lines := content.Lines{summary}
	for _, l := range s.last {
		lines = append(lines, content.Line{content.Styled("  "+l, dimStyle)})
	}
	return lines
}

// record counts one output line and keeps it in the tail preview.
func (s *runStatus) record(text string, stderr bool) {
	if stderr {
		s.stderr++
	} else {
		s.stdout++
	}
	s.last = append(s.last, plainText(text))
	if len(s.last) > tailLines {
		s.last = s.last[len(s.last)-tailLines:]
	}
}

func doneLabel(code int, elapsed time.Duration) string {
	if code == 0 {
		return fmt.Sprintf("✓ done in %s", elapsed)
	}
	return fmt.Sprintf("✗ exit %d after %s", code, elapsed)
}

// plainText drops every escape sequence and control character from child
// output so it can be restyled.
func plainText(s string) string {
	return width.StripANSI(content.FromANSI(s).Text())
}
