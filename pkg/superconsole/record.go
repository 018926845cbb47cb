// ABOUTME: RecordingOutput tees every frame to a JSON-lines recording
// ABOUTME: Recordings can be replayed or asserted on without a terminal

//go:generate easyjson -all record.go

package superconsole

import (
	"fmt"
	"io"

	"github.com/mailru/easyjson"
)

// FrameRecord is one line of a recording.
//
//easyjson:json
type FrameRecord struct {
	Seq   int    `json:"seq"`
	Size  int    `json:"bytes"`
	Frame []byte `json:"frame"`
}

// RecordingOutput forwards frames to inner and appends each one to w.
type RecordingOutput struct {
	inner Output
	w     io.Writer
	seq   int
}

// NewRecordingOutput wraps inner, recording to w.
func NewRecordingOutput(inner Output, w io.Writer) *RecordingOutput {
	return &RecordingOutput{inner: inner, w: w}
}

// ShouldRender delegates to inner.
func (o *RecordingOutput) ShouldRender() bool {
	return o.inner.ShouldRender()
}

// Output records buf and then forwards it. The frame is recorded even if
// inner fails so the recording shows what was attempted.
func (o *RecordingOutput) Output(buf []byte) error {
	rec := FrameRecord{Seq: o.seq, Size: len(buf), Frame: buf}
	o.seq++
	if _, err := easyjson.MarshalToWriter(rec, o.w); err != nil {
		return fmt.Errorf("recording frame %d: %w", rec.Seq, err)
	}
	if _, err := o.w.Write([]byte{'\n'}); err != nil {
		return fmt.Errorf("recording frame %d: %w", rec.Seq, err)
	}
	return o.inner.Output(buf)
}

// Finalize delegates to inner.
func (o *RecordingOutput) Finalize() error {
	return o.inner.Finalize()
}
