// ABOUTME: Console keeps a repainted canvas at the bottom of the terminal below a log stream
// ABOUTME: Drains queued log lines per pass within a budget; full repaint via cursor moves

package superconsole

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/mauromedda/superconsole/internal/log"
	"github.com/mauromedda/superconsole/pkg/superconsole/content"
	"github.com/mauromedda/superconsole/pkg/superconsole/terminal"
)

const (
	// MinimumEmit is the number of log lines drained per normal pass even
	// when the canvas alone fills the terminal, so logging never starves.
	MinimumEmit = 5
	// MaxGraphemeBuffer is the backlog size, in graphemes, past which a
	// pass drains the whole queue instead of one screenful.
	MaxGraphemeBuffer = 1_000_000
)

// ErrFinalized is returned by every operation on a finalized Console.
var ErrFinalized = errors.New("console already finalized")

// Options configures a Console built with NewWithOptions.
type Options struct {
	// Terminal is used for size discovery. Defaults to stderr.
	Terminal terminal.Terminal
	// Output receives frames. Defaults to a BlockingOutput on Terminal.
	Output Output
	// Fallback is used when the terminal size cannot be discovered.
	Fallback *Dimensions
}

// Console renders a canvas of components at the bottom of the terminal and
// emits log lines above it. It must be the only writer to the terminal
// while active, and it is not safe for concurrent use.
type Console struct {
	root      FrameSource
	toEmit    content.Lines
	fallback  *Dimensions
	term      terminal.Terminal
	output    Output
	finalized bool
}

// New builds a Console drawing root to stderr. It returns false when
// stdout or stderr is not an interactive terminal.
func New(root Component) (*Console, bool) {
	if !Compatible() {
		return nil, false
	}
	return NewWithOptions(root, Options{}), true
}

// ForcedNew builds a Console regardless of whether the process is attached
// to a terminal. fallback is used whenever the size cannot be discovered.
func ForcedNew(root Component, fallback Dimensions) *Console {
	return NewWithOptions(root, Options{Fallback: &fallback})
}

// NewWithOptions builds a Console with explicit collaborators.
func NewWithOptions(root Component, opts Options) *Console {
	return newConsole(NewCanvas(root), opts)
}

func newConsole(root FrameSource, opts Options) *Console {
	term := opts.Terminal
	if term == nil {
		term = terminal.NewProcessTerminal()
	}
	out := opts.Output
	if out == nil {
		out = NewBlockingOutput(term)
	}
	return &Console{
		root:     root,
		fallback: opts.Fallback,
		term:     term,
		output:   out,
	}
}

// Compatible reports whether both stdout and stderr are terminals.
func Compatible() bool {
	return terminal.Interactive()
}

// Emit queues lines to be printed above the canvas on the next render.
// It never writes to the terminal.
func (c *Console) Emit(lines content.Lines) {
	if c.finalized {
		log.Debug("dropping %d lines emitted after finalize", len(lines))
		return
	}
	c.toEmit = append(c.toEmit, lines...)
}

// EmitNow queues lines and renders immediately.
func (c *Console) EmitNow(lines content.Lines, state *State) error {
	c.Emit(lines)
	return c.Render(state)
}

// Pending returns the number of queued log lines.
func (c *Console) Pending() int {
	return len(c.toEmit)
}

// Render draws the canvas and drains queued lines above it.
// A single pass drains at most roughly one screenful, so Render repeats
// passes while the previous pass left the queue length unchanged and the
// queue is not empty. A pass that drained lines ends the call; the rest
// waits for the next Render.
func (c *Console) Render(state *State) error {
	if c.finalized {
		return ErrFinalized
	}

	anythingEmitted := true
	hasRendered := false
	for !hasRendered || (anythingEmitted && len(c.toEmit) > 0) {
		if !c.output.ShouldRender() {
			break
		}

		lastLen := len(c.toEmit)
		if err := c.renderWithMode(state, DrawNormal); err != nil {
			return err
		}
		anythingEmitted = lastLen == len(c.toEmit)
		hasRendered = true
	}
	return nil
}

// Finalize performs one last render in DrawFinal mode, draining every
// queued line, then finalizes the output. The gate of the output is not
// consulted. The Console cannot be used afterwards.
func (c *Console) Finalize(state *State) error {
	if c.finalized {
		return ErrFinalized
	}
	c.finalized = true

	if err := c.renderWithMode(state, DrawFinal); err != nil {
		return err
	}
	if err := c.output.Finalize(); err != nil {
		return fmt.Errorf("finalizing output: %w", err)
	}
	return nil
}

// Clear erases the canvas. It ignores the output's gate so the screen can
// always be cleaned up before something else writes to the terminal.
// Queued lines are kept.
func (c *Console) Clear() error {
	if c.finalized {
		return ErrFinalized
	}
	var buf bytes.Buffer
	if err := c.root.Clear(&buf); err != nil {
		return fmt.Errorf("clearing canvas: %w", err)
	}
	return c.output.Output(buf.Bytes())
}

// size returns the live terminal size, or the fallback if discovery fails.
func (c *Console) size() (Dimensions, error) {
	w, h, err := c.term.Size()
	if err == nil {
		return NewDimensions(w, h), nil
	}
	if c.fallback != nil {
		return *c.fallback, nil
	}
	return Dimensions{}, err
}

func (c *Console) renderWithMode(state *State, mode DrawMode) error {
	dims, err := c.size()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := c.renderGeneral(&buf, state, mode, dims); err != nil {
		return err
	}
	return c.output.Output(buf.Bytes())
}

// renderGeneral composes one pass into buf: cursor to the top of the old
// frame, drained log lines, the new frame, and erase-below.
// Lines drained into buf are gone from the queue even if buf is never
// written.
func (c *Console) renderGeneral(buf *bytes.Buffer, state *State, mode DrawMode, dims Dimensions) error {
	c.root.MoveUp(buf)

	// The frame is drawn first because its height decides how many log
	// lines fit above it.
	frame, err := c.root.Draw(state, dims, mode)
	if err != nil {
		return err
	}

	limit := -1
	if mode == DrawNormal && !c.isOversized() {
		limit = max(max(dims.Height-len(frame), 0), MinimumEmit)
	}

	c.toEmit.Drain(buf, limit)
	frame.Render(buf, -1)

	buf.WriteString(ansi.EraseScreenBelow)
	return nil
}

// isOversized reports whether the backlog is too large to meter out one
// screenful at a time.
func (c *Console) isOversized() bool {
	n := 0
	for _, l := range c.toEmit {
		n += l.Len()
		if n > MaxGraphemeBuffer {
			return true
		}
	}
	return false
}
