// ABOUTME: Grapheme counting and display width for styled terminal text
// ABOUTME: ASCII fast path; non-ASCII strings are measured once and cached; ANSI counts zero

package width

import (
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const cacheSize = 512

// metrics are the two measurements the console takes of every line: the
// grapheme count for backlog accounting and the cell width for layout.
type metrics struct {
	graphemes int
	width     int
}

// cache keeps metrics for recently measured non-ASCII strings in two
// generations. When the current generation fills up it becomes the old
// one; a hit in the old generation is promoted.
type cache struct {
	mu   sync.Mutex
	cur  map[string]metrics
	old  map[string]metrics
	size int
}

func newCache(size int) *cache {
	return &cache{cur: make(map[string]metrics, size), size: size}
}

func (c *cache) get(key string) (metrics, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.cur[key]; ok {
		return m, true
	}
	m, ok := c.old[key]
	if ok {
		c.putLocked(key, m)
	}
	return m, ok
}

func (c *cache) put(key string, m metrics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.putLocked(key, m)
}

func (c *cache) putLocked(key string, m metrics) {
	if len(c.cur) >= c.size {
		c.old = c.cur
		c.cur = make(map[string]metrics, c.size)
	}
	c.cur[key] = m
}

var measured = newCache(cacheSize)

// measure returns the metrics of a non-ASCII string, walking its grapheme
// clusters once for both values.
func measure(s string) metrics {
	if m, ok := measured.get(s); ok {
		return m
	}
	var m metrics
	rest := StripANSI(s)
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		m.graphemes++
		m.width += graphemeWidth(cluster)
	}
	measured.put(s, m)
	return m
}

// GraphemeCount returns the number of user-perceived characters in s,
// ignoring ANSI escape sequences. This is the unit used for backlog
// accounting, not the display width.
func GraphemeCount(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	return measure(s).graphemes
}

// VisibleWidth returns the number of terminal cells s occupies. Wide
// East Asian characters and emoji count as two cells.
func VisibleWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	return measure(s).width
}

// isPlainASCII reports whether s holds only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// graphemeWidth measures a cluster by its first rune; combining marks and
// variation selectors that follow do not add width.
func graphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
