// ABOUTME: RestoreOnPanic recovers from panics, leaves the terminal usable, prints the stack
// ABOUTME: Intended for use as a deferred call in the goroutine that owns the console

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/x/ansi"
)

// RestoreOnPanic should be deferred at the top of main. On panic it
// erases below the cursor, shows the cursor on t, prints the panic value
// and stack trace to stderr, then exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	_, _ = t.Write([]byte(ansi.EraseScreenBelow + ansi.ShowCursor))

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}
