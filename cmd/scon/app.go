// ABOUTME: app owns the Console for a scon run: emits child output, ticks the canvas
// ABOUTME: Everything draws from one goroutine; the log sink is drained before each render

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/superconsole/internal/log"
	"github.com/mauromedda/superconsole/internal/runner"
	"github.com/mauromedda/superconsole/pkg/superconsole"
	"github.com/mauromedda/superconsole/pkg/superconsole/components"
	"github.com/mauromedda/superconsole/pkg/superconsole/content"
)

type app struct {
	console *superconsole.Console
	spinner *components.Spinner
	logs    *logSink
	status  runStatus
	clock   func() time.Time
}

// newCanvas builds the status area: spinner on top, command summary and a
// short tail of output below, all inside a rounded border.
func newCanvas(spinner *components.Spinner) superconsole.Component {
	return components.NewBordered(
		components.NewSplit(components.Vertical,
			spinner,
			components.NewBounded(components.NewEcho[runStatus](true), 0, 1+tailLines),
		),
		lipgloss.NewStyle().BorderForeground(lipgloss.Color("8")),
	)
}

func newApp(console *superconsole.Console, spinner *components.Spinner, logs *logSink, command []string, clock func() time.Time) *app {
	now := clock()
	return &app{
		console: console,
		spinner: spinner,
		logs:    logs,
		status:  runStatus{command: command, started: now, now: now},
		clock:   clock,
	}
}

func (a *app) state() *superconsole.State {
	return superconsole.NewState(a.status)
}

// emit queues one child line above the canvas.
func (a *app) emit(l runner.Line) {
	stderr := l.Stream == runner.Stderr
	a.status.record(l.Text, stderr)

	span := content.FromANSI(l.Text)
	if stderr {
		span = content.Styled(plainText(l.Text), errStyle)
	}
	a.console.Emit(content.Lines{content.Line{span}})
}

func (a *app) render() error {
	a.console.Emit(a.logs.drain())
	a.status.now = a.clock()
	return a.console.Render(a.state())
}

// loop drains the child's output until it closes, rendering on every tick.
func (a *app) loop(ctx context.Context, proc *runner.Process, tick time.Duration, winch <-chan os.Signal, resize func()) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	done := ctx.Done()
	lines := proc.Lines()
	for lines != nil {
		select {
		case l, ok := <-lines:
			if !ok {
				lines = nil
				continue
			}
			a.emit(l)
		case <-ticker.C:
			if err := a.render(); err != nil {
				return fmt.Errorf("rendering: %w", err)
			}
		case <-winch:
			resize()
		case <-done:
			log.Warn("interrupted; waiting for %s to exit", a.status.command[0])
			done = nil
		}
	}
	return nil
}

// finish settles the canvas into its final summary.
func (a *app) finish(code int) error {
	a.status.now = a.clock()
	a.spinner.SetDoneLabel(doneLabel(code, a.status.elapsed()))
	a.console.Emit(a.logs.drain())
	if err := a.console.Finalize(a.state()); err != nil {
		return fmt.Errorf("finalizing console: %w", err)
	}
	return nil
}

// abort erases the canvas after a failed render and writes log lines that
// were still buffered to w, which is where logging goes once the console
// is gone.
func (a *app) abort(w io.Writer) {
	if err := a.console.Clear(); err != nil {
		fmt.Fprintf(w, "clearing console: %v\n", err)
	}
	for _, l := range a.logs.drain() {
		fmt.Fprintln(w, l.String())
	}
}
