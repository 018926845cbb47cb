// ABOUTME: Terminal interface for size discovery, tty detection, and output
// ABOUTME: Implemented by ProcessTerminal (real fd) and VirtualTerminal (tests)

package terminal

// Terminal abstracts the output side of a terminal: where canvas bytes go
// and how large the visible area is.
type Terminal interface {
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
	IsTerminal() bool
}
