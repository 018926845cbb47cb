// ABOUTME: Output is the sink for composed frames: backpressure gate, write, teardown
// ABOUTME: BlockingOutput writes inline; NonBlockingOutput hands frames to a goroutine

package superconsole

import (
	"fmt"
	"io"
	"sync"
)

// Output receives composed frames. Output takes ownership of buf.
type Output interface {
	// ShouldRender reports whether a frame may be produced now. Render
	// skips the tick entirely when it returns false.
	ShouldRender() bool
	// Output writes one composed frame.
	Output(buf []byte) error
	// Finalize releases the output. It is called exactly once.
	Finalize() error
}

// BlockingOutput writes each frame synchronously.
type BlockingOutput struct {
	w io.Writer
}

// NewBlockingOutput returns an Output writing frames to w.
func NewBlockingOutput(w io.Writer) *BlockingOutput {
	return &BlockingOutput{w: w}
}

// ShouldRender always reports true.
func (o *BlockingOutput) ShouldRender() bool {
	return true
}

// Output writes buf in full.
func (o *BlockingOutput) Output(buf []byte) error {
	if _, err := o.w.Write(buf); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Finalize is a no-op; the writer is owned by the caller.
func (o *BlockingOutput) Finalize() error {
	return nil
}

// NonBlockingOutput writes frames from a background goroutine so a slow
// terminal never stalls the caller. One frame may wait while another is
// being written; ShouldRender reports false while that slot is taken.
// A write error is reported by the next Output call or by Finalize.
type NonBlockingOutput struct {
	frames chan []byte
	done   chan struct{}

	mu  sync.Mutex
	err error
}

// NewNonBlockingOutput starts the writer goroutine for w.
func NewNonBlockingOutput(w io.Writer) *NonBlockingOutput {
	o := &NonBlockingOutput{
		frames: make(chan []byte, 1),
		done:   make(chan struct{}),
	}
	go o.loop(w)
	return o
}

func (o *NonBlockingOutput) loop(w io.Writer) {
	defer close(o.done)
	for buf := range o.frames {
		if o.failed() != nil {
			continue
		}
		if _, err := w.Write(buf); err != nil {
			o.mu.Lock()
			o.err = fmt.Errorf("writing frame: %w", err)
			o.mu.Unlock()
		}
	}
}

func (o *NonBlockingOutput) failed() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.err
}

// ShouldRender reports whether the pending-frame slot is free.
func (o *NonBlockingOutput) ShouldRender() bool {
	return len(o.frames) < cap(o.frames)
}

// Output queues buf for the writer goroutine, blocking if the slot is taken.
func (o *NonBlockingOutput) Output(buf []byte) error {
	if err := o.failed(); err != nil {
		return err
	}
	o.frames <- buf
	return nil
}

// Finalize waits for queued frames to be written and stops the goroutine.
func (o *NonBlockingOutput) Finalize() error {
	close(o.frames)
	<-o.done
	return o.failed()
}

// CaptureOutput records frames in memory. It is meant for tests and for
// callers that want to inspect output before it reaches a terminal.
type CaptureOutput struct {
	frames       [][]byte
	shouldRender bool
	finalized    bool
	outputErr    error
}

// NewCaptureOutput returns a CaptureOutput that allows rendering.
func NewCaptureOutput() *CaptureOutput {
	return &CaptureOutput{shouldRender: true}
}

// ShouldRender returns the value set by SetShouldRender.
func (o *CaptureOutput) ShouldRender() bool {
	return o.shouldRender
}

// Output records buf, or returns the error set by FailOutput.
func (o *CaptureOutput) Output(buf []byte) error {
	if o.outputErr != nil {
		return o.outputErr
	}
	o.frames = append(o.frames, buf)
	return nil
}

// Finalize marks the output finalized.
func (o *CaptureOutput) Finalize() error {
	o.finalized = true
	return nil
}

// SetShouldRender toggles the backpressure gate.
func (o *CaptureOutput) SetShouldRender(v bool) {
	o.shouldRender = v
}

// FailOutput makes Output return err until cleared with nil.
func (o *CaptureOutput) FailOutput(err error) {
	o.outputErr = err
}

// Frames returns the recorded frames.
func (o *CaptureOutput) Frames() [][]byte {
	return o.frames
}

// Last returns the most recent frame, or nil.
func (o *CaptureOutput) Last() []byte {
	if len(o.frames) == 0 {
		return nil
	}
	return o.frames[len(o.frames)-1]
}

// Finalized reports whether Finalize was called.
func (o *CaptureOutput) Finalized() bool {
	return o.finalized
}
