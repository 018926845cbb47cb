// ABOUTME: Tests for VirtualTerminal and ProcessTerminal size discovery
// ABOUTME: ProcessTerminal is exercised on a real pty from creack/pty when available

package terminal

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creack/pty"
)

// compile-time checks: both implementations must satisfy Terminal.
var (
	_ Terminal = (*VirtualTerminal)(nil)
	_ Terminal = (*ProcessTerminal)(nil)
)

func TestVirtualTerminal_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		width      int
		height     int
		wantWidth  int
		wantHeight int
	}{
		{name: "standard 80x24", width: 80, height: 24, wantWidth: 80, wantHeight: 24},
		{name: "wide 200x50", width: 200, height: 50, wantWidth: 200, wantHeight: 50},
		{name: "zero dimensions", width: 0, height: 0, wantWidth: 0, wantHeight: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := NewVirtualTerminal(tt.width, tt.height)

			w, h, err := vt.Size()
			if err != nil {
				t.Fatalf("Size() unexpected error: %v", err)
			}
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("Size() = (%d, %d), want (%d, %d)", w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestVirtualTerminal_FailSize(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	boom := errors.New("no tty")
	vt.FailSize(boom)

	if _, _, err := vt.Size(); !errors.Is(err, boom) {
		t.Fatalf("Size() error = %v, want %v", err, boom)
	}

	vt.FailSize(nil)
	vt.SetSize(100, 40)
	w, h, err := vt.Size()
	if err != nil || w != 100 || h != 40 {
		t.Errorf("Size() = (%d, %d, %v), want (100, 40, nil)", w, h, err)
	}
}

func TestVirtualTerminal_WriteCapture(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	if _, err := vt.Write([]byte("hello ")); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if _, err := vt.Write([]byte("world")); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	if got := vt.Output(); got != "hello world" {
		t.Errorf("Output() = %q, want %q", got, "hello world")
	}
	if vt.Writes() != 2 {
		t.Errorf("Writes() = %d, want 2", vt.Writes())
	}

	vt.Reset()
	if vt.Output() != "" || vt.Writes() != 0 {
		t.Errorf("Reset did not clear: %q, %d writes", vt.Output(), vt.Writes())
	}
}

func TestVirtualTerminal_FailWrites(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	boom := errors.New("broken pipe")
	vt.FailWrites(boom)

	if _, err := vt.Write([]byte("x")); !errors.Is(err, boom) {
		t.Errorf("Write error = %v, want %v", err, boom)
	}
	if vt.Output() != "" {
		t.Errorf("failed write captured output %q", vt.Output())
	}
}

func TestProcessTerminal_PtySize(t *testing.T) {
	t.Parallel()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 30, Cols: 100}); err != nil {
		t.Fatalf("Setsize: %v", err)
	}

	pt := NewProcessTerminalFor(tty)
	if !pt.IsTerminal() {
		t.Error("IsTerminal() = false for a pty")
	}
	w, h, err := pt.Size()
	if err != nil {
		t.Fatalf("Size() unexpected error: %v", err)
	}
	if w != 100 || h != 30 {
		t.Errorf("Size() = (%d, %d), want (100, 30)", w, h)
	}
}

func TestProcessTerminal_RegularFile(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	pt := NewProcessTerminalFor(f)
	if pt.IsTerminal() {
		t.Error("IsTerminal() = true for a regular file")
	}
	if _, _, err := pt.Size(); err == nil || !strings.Contains(err.Error(), "getting terminal size") {
		t.Errorf("Size() error = %v, want wrapped size error", err)
	}

	if _, err := pt.Write([]byte("frame")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "frame" {
		t.Errorf("file contents = %q, want %q", data, "frame")
	}
}
