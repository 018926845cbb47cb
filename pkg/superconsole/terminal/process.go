// ABOUTME: ProcessTerminal implements Terminal on top of an *os.File and x/term
// ABOUTME: Defaults to stderr, which is where the canvas is drawn

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by a file descriptor.
type ProcessTerminal struct {
	out *os.File
}

// NewProcessTerminal returns a ProcessTerminal writing to stderr.
func NewProcessTerminal() *ProcessTerminal {
	return &ProcessTerminal{out: os.Stderr}
}

// NewProcessTerminalFor returns a ProcessTerminal writing to f.
func NewProcessTerminalFor(f *os.File) *ProcessTerminal {
	return &ProcessTerminal{out: f}
}

// Size returns the current terminal dimensions in cells.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends bytes to the underlying file.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to %s: %w", t.out.Name(), err)
	}
	return n, nil
}

// IsTerminal reports whether the underlying file is an interactive tty.
func (t *ProcessTerminal) IsTerminal() bool {
	return term.IsTerminal(int(t.out.Fd()))
}

// Interactive reports whether both stdout and stderr are attached to a
// terminal.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}
