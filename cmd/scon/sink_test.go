// ABOUTME: Tests for the log sink that feeds log output into the console queue

package main

import (
	"slices"
	"testing"
)

func TestLogSink_Drain(t *testing.T) {
	t.Parallel()

	var s logSink
	s.Write([]byte("[INFO] one\n[WARN] tw"))

	lines := s.drain()
	if got, want := lines.Strings(), []string{"[INFO] one"}; !slices.Equal(got, want) {
		t.Errorf("first drain = %q, want %q", got, want)
	}

	s.Write([]byte("o\n"))
	lines = s.drain()
	if got, want := lines.Strings(), []string{"[WARN] two"}; !slices.Equal(got, want) {
		t.Errorf("second drain = %q, want %q", got, want)
	}

	if lines := s.drain(); lines != nil {
		t.Errorf("empty drain = %q, want nil", lines.Strings())
	}
}
