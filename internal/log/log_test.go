// ABOUTME: Tests for the level-gated logger
// ABOUTME: Captures output with SetOutput; not parallel because state is global

package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func capture(t *testing.T, l slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	savedLevel := GetLevel()
	SetLevel(l)
	t.Cleanup(func() {
		SetOutput(prev)
		SetLevel(savedLevel)
	})
	return &buf
}

func TestSetLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	buf := capture(t, LevelInfo)

	Debug("this should be suppressed: %s", "test")
	Info("shown: %d", 1)

	got := buf.String()
	if strings.Contains(got, "suppressed") {
		t.Errorf("debug message leaked at info level: %q", got)
	}
	if got != "[INFO] shown: 1\n" {
		t.Errorf("output = %q, want %q", got, "[INFO] shown: 1\n")
	}
}

func TestAllLevelsAtDebug(t *testing.T) {
	buf := capture(t, LevelDebug)

	Debug("debug: %d", 1)
	Info("info: %d", 2)
	Warn("warn: %d", 3)
	Error("error: %d", 4)

	want := "[DEBUG] debug: 1\n[INFO] info: 2\n[WARN] warn: 3\n[ERROR] error: 4\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	buf := capture(t, LevelError)

	Warn("hidden")
	Error("boom")

	if buf.String() != "[ERROR] boom\n" {
		t.Errorf("output = %q, want %q", buf.String(), "[ERROR] boom\n")
	}
}
