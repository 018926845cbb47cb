// ABOUTME: Runs a child command and streams its stdout/stderr as lines
// ABOUTME: Pipe mode keeps the streams apart; PTY mode merges them on one terminal

package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/sync/errgroup"
)

const maxLineBytes = 1024 * 1024 // 1MB

// Stream identifies where a line came from.
type Stream int

const (
	Stdout Stream = iota
	Stderr
)

func (s Stream) String() string {
	if s == Stderr {
		return "stderr"
	}
	return "stdout"
}

// Line is one line of child output without its terminator.
type Line struct {
	Stream Stream
	Text   string
}

// Options configures how the child is started.
type Options struct {
	// PTY runs the child on a pseudo-terminal so it keeps colors and line
	// buffering. Stdout and stderr arrive merged as Stdout.
	PTY bool
	// Cols and Rows set the pseudo-terminal size. Zero leaves the default.
	Cols, Rows uint16
	Dir        string
	Env        []string
}

// Process is a started child command.
type Process struct {
	cmd   *exec.Cmd
	lines chan Line
	done  chan error
	tty   *os.File
}

// Start launches name with args. Output lines are delivered on Lines until
// the child closes its output; the channel is then closed.
func Start(ctx context.Context, name string, args []string, opts Options) (*Process, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	if opts.Env != nil {
		cmd.Env = opts.Env
	}

	p := &Process{
		cmd:   cmd,
		lines: make(chan Line, 64),
		done:  make(chan error, 1),
	}

	var g errgroup.Group
	if opts.PTY {
		var size *pty.Winsize
		if opts.Cols > 0 && opts.Rows > 0 {
			size = &pty.Winsize{Cols: opts.Cols, Rows: opts.Rows}
		}
		tty, err := pty.StartWithSize(cmd, size)
		if err != nil {
			return nil, fmt.Errorf("starting %s on pty: %w", name, err)
		}
		p.tty = tty
		g.Go(func() error { return p.scan(tty, Stdout) })
	} else {
		stdout, err := cmd.StdoutPipe()
		if err != nil {
			return nil, fmt.Errorf("stdout pipe: %w", err)
		}
		stderr, err := cmd.StderrPipe()
		if err != nil {
			return nil, fmt.Errorf("stderr pipe: %w", err)
		}
		if err := cmd.Start(); err != nil {
			return nil, fmt.Errorf("starting %s: %w", name, err)
		}
		g.Go(func() error { return p.scan(stdout, Stdout) })
		g.Go(func() error { return p.scan(stderr, Stderr) })
	}

	go func() {
		err := g.Wait()
		close(p.lines)
		p.done <- err
	}()
	return p, nil
}

// Lines returns the output channel. It must be drained for the child to
// make progress.
func (p *Process) Lines() <-chan Line {
	return p.lines
}

// Pid returns the child's process id.
func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// Resize changes the pseudo-terminal size. It is a no-op in pipe mode.
func (p *Process) Resize(cols, rows uint16) error {
	if p.tty == nil {
		return nil
	}
	if err := pty.Setsize(p.tty, &pty.Winsize{Cols: cols, Rows: rows}); err != nil {
		return fmt.Errorf("resizing pty: %w", err)
	}
	return nil
}

// Kill stops the child immediately.
func (p *Process) Kill() error {
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("killing pid %d: %w", p.Pid(), err)
	}
	return nil
}

// Wait blocks until the output is fully read and the child has exited.
// A non-zero exit is reported as an *exec.ExitError.
func (p *Process) Wait() error {
	readErr := <-p.done
	waitErr := p.cmd.Wait()
	if p.tty != nil {
		p.tty.Close()
	}
	if waitErr != nil {
		return waitErr
	}
	if readErr != nil {
		return fmt.Errorf("reading output: %w", readErr)
	}
	return nil
}

// scan forwards r line by line until EOF. A line longer than maxLineBytes
// is delivered as several lines so the child never stalls on a full pipe.
func (p *Process) scan(r io.Reader, stream Stream) error {
	br := bufio.NewReaderSize(r, maxLineBytes)
	for {
		chunk, _, err := br.ReadLine()
		if err != nil {
			return readDone(r, err)
		}
		p.lines <- Line{Stream: stream, Text: strings.TrimSuffix(string(chunk), "\r")}
	}
}

// readDone maps the end of a stream to nil. On a real read error the rest
// of r is discarded so the child can still run to completion.
func readDone(r io.Reader, err error) error {
	// The pty master reports EIO once the child side is gone.
	if errors.Is(err, io.EOF) || errors.Is(err, syscall.EIO) || errors.Is(err, os.ErrClosed) {
		return nil
	}
	_, _ = io.Copy(io.Discard, r)
	return err
}

// IsExitError reports whether err is the child exiting unsuccessfully, as
// opposed to a failure to run or read it.
func IsExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// ExitCode extracts the exit status from a Wait error: 0 for nil, the
// child's code for an *exec.ExitError, and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
	}
	return 1
}
