// ABOUTME: Tests for Output implementations: blocking, non-blocking, rate limited, recording
// ABOUTME: Recordings are decoded back with easyjson to check sequence and payload

package superconsole

import (
	"bufio"
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/mailru/easyjson"

	"github.com/mauromedda/superconsole/pkg/superconsole/terminal"
)

// compile-time checks: every sink satisfies Output.
var (
	_ Output = (*BlockingOutput)(nil)
	_ Output = (*NonBlockingOutput)(nil)
	_ Output = (*CaptureOutput)(nil)
	_ Output = (*RateLimitedOutput)(nil)
	_ Output = (*RecordingOutput)(nil)
)

// gatedWriter blocks every Write until release is closed.
type gatedWriter struct {
	release chan struct{}
	started chan struct{}
	once    sync.Once
	buf     bytes.Buffer
}

func newGatedWriter() *gatedWriter {
	return &gatedWriter{release: make(chan struct{}), started: make(chan struct{})}
}

func (w *gatedWriter) Write(p []byte) (int, error) {
	w.once.Do(func() { close(w.started) })
	<-w.release
	return w.buf.Write(p)
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestBlockingOutput(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	out := NewBlockingOutput(vt)
	if !out.ShouldRender() {
		t.Error("ShouldRender() = false, want true")
	}
	if err := out.Output([]byte("frame")); err != nil {
		t.Fatalf("Output: %v", err)
	}
	if vt.Output() != "frame" {
		t.Errorf("written = %q, want %q", vt.Output(), "frame")
	}

	boom := errors.New("broken pipe")
	vt.FailWrites(boom)
	if err := out.Output([]byte("x")); !errors.Is(err, boom) {
		t.Errorf("Output error = %v, want %v", err, boom)
	}
	if err := out.Finalize(); err != nil {
		t.Errorf("Finalize: %v", err)
	}
}

func TestNonBlockingOutput_Backpressure(t *testing.T) {
	t.Parallel()

	w := newGatedWriter()
	out := NewNonBlockingOutput(w)

	if err := out.Output([]byte("one ")); err != nil {
		t.Fatalf("Output: %v", err)
	}
	// The goroutine holds frame one inside Write; the slot is free again.
	<-w.started
	if err := out.Output([]byte("two")); err != nil {
		t.Fatalf("Output: %v", err)
	}
	if out.ShouldRender() {
		t.Error("ShouldRender() = true with a frame waiting, want false")
	}

	close(w.release)
	if err := out.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if w.buf.String() != "one two" {
		t.Errorf("written = %q, want %q", w.buf.String(), "one two")
	}
}

func TestNonBlockingOutput_ReportsWriteError(t *testing.T) {
	t.Parallel()

	boom := errors.New("broken pipe")
	out := NewNonBlockingOutput(failingWriter{err: boom})
	if err := out.Output([]byte("frame")); err != nil {
		t.Fatalf("first Output: %v", err)
	}
	if err := out.Finalize(); !errors.Is(err, boom) {
		t.Errorf("Finalize error = %v, want %v", err, boom)
	}
}

func TestNonBlockingOutput_WithConsole(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	out := NewNonBlockingOutput(&buf)
	vt := terminal.NewVirtualTerminal(40, 10)
	c := NewWithOptions(echo{}, Options{Terminal: vt, Output: out})

	c.Emit(repeatLine("log", 2))
	if err := c.Finalize(msgState("done", 1)); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	got := buf.String()
	if !bytes.Contains([]byte(got), []byte("log")) || !bytes.Contains([]byte(got), []byte("done")) {
		t.Errorf("output = %q, want log and done", got)
	}
}

func TestRateLimitedOutput(t *testing.T) {
	t.Parallel()

	inner := NewCaptureOutput()
	out := NewRateLimitedOutput(inner, 0.001)

	if !out.ShouldRender() {
		t.Fatal("first ShouldRender() = false, want true")
	}
	if out.ShouldRender() {
		t.Error("second ShouldRender() = true within the same interval, want false")
	}

	if err := out.Output([]byte("frame")); err != nil {
		t.Fatalf("Output: %v", err)
	}
	if len(inner.Frames()) != 1 {
		t.Errorf("inner frames = %d, want 1", len(inner.Frames()))
	}
	if err := out.Finalize(); err != nil || !inner.Finalized() {
		t.Errorf("Finalize: err=%v finalized=%v", err, inner.Finalized())
	}
}

func TestRateLimitedOutput_InnerGateKeepsToken(t *testing.T) {
	t.Parallel()

	inner := NewCaptureOutput()
	inner.SetShouldRender(false)
	out := NewRateLimitedOutput(inner, 0.001)

	if out.ShouldRender() {
		t.Fatal("ShouldRender() = true while inner is blocked")
	}
	inner.SetShouldRender(true)
	if !out.ShouldRender() {
		t.Error("token was spent while inner was blocked")
	}
}

func TestRateLimitedOutput_Unlimited(t *testing.T) {
	t.Parallel()

	out := NewRateLimitedOutput(NewCaptureOutput(), 0)
	for i := range 100 {
		if !out.ShouldRender() {
			t.Fatalf("ShouldRender() = false at %d with limiting disabled", i)
		}
	}
}

// A rate limited console defers lines instead of dropping them.
func TestRateLimitedOutput_DefersLines(t *testing.T) {
	t.Parallel()

	inner := NewCaptureOutput()
	vt := terminal.NewVirtualTerminal(80, 24)
	c := NewWithOptions(echo{}, Options{Terminal: vt, Output: NewRateLimitedOutput(inner, 0.001)})
	state := msgState("state", 1)

	if err := c.EmitNow(repeatLine("first", 1), state); err != nil {
		t.Fatalf("EmitNow: %v", err)
	}
	if err := c.EmitNow(repeatLine("second", 1), state); err != nil {
		t.Fatalf("EmitNow: %v", err)
	}
	if len(inner.Frames()) != 1 {
		t.Errorf("frames = %d, want 1", len(inner.Frames()))
	}
	if c.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", c.Pending())
	}
}

func TestRecordingOutput(t *testing.T) {
	t.Parallel()

	inner := NewCaptureOutput()
	var rec bytes.Buffer
	out := NewRecordingOutput(inner, &rec)

	for _, f := range []string{"alpha", "beta\x1b[J"} {
		if err := out.Output([]byte(f)); err != nil {
			t.Fatalf("Output: %v", err)
		}
	}

	var got []FrameRecord
	sc := bufio.NewScanner(&rec)
	for sc.Scan() {
		var r FrameRecord
		if err := easyjson.Unmarshal(sc.Bytes(), &r); err != nil {
			t.Fatalf("decoding %q: %v", sc.Text(), err)
		}
		got = append(got, r)
	}

	if len(got) != 2 {
		t.Fatalf("records = %d, want 2", len(got))
	}
	if got[0].Seq != 0 || string(got[0].Frame) != "alpha" || got[0].Size != 5 {
		t.Errorf("record 0 = %+v", got[0])
	}
	if got[1].Seq != 1 || string(got[1].Frame) != "beta\x1b[J" {
		t.Errorf("record 1 = %+v", got[1])
	}
	if len(inner.Frames()) != 2 {
		t.Errorf("inner frames = %d, want 2", len(inner.Frames()))
	}
}

func TestRecordingOutput_RecordsFailedFrames(t *testing.T) {
	t.Parallel()

	inner := NewCaptureOutput()
	boom := errors.New("broken pipe")
	inner.FailOutput(boom)
	var rec bytes.Buffer
	out := NewRecordingOutput(inner, &rec)

	if err := out.Output([]byte("lost")); !errors.Is(err, boom) {
		t.Fatalf("Output error = %v, want %v", err, boom)
	}
	if !bytes.Contains(rec.Bytes(), []byte(`"seq":0`)) {
		t.Errorf("recording = %q, want a record for the failed frame", rec.String())
	}
}
