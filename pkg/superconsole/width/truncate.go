// ABOUTME: Column-based truncation of styled text
// ABOUTME: Keeps escape sequences so styles stay balanced after the cut

package width

import "github.com/rivo/uniseg"

// Truncate cuts s to at most cols visible cells. Escape sequences are kept
// even past the cut so a trailing reset still applies. A wide grapheme that
// would straddle the boundary is dropped.
func Truncate(s string, cols int) string {
	if cols <= 0 {
		return ""
	}
	if VisibleWidth(s) <= cols {
		return s
	}

	out := make([]byte, 0, len(s))
	col := 0
	full := false
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			out = append(out, s[i:end]...)
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		w := graphemeWidth(cluster)
		if !full && col+w <= cols {
			out = append(out, cluster...)
			col += w
		} else {
			full = true
		}
		i += len(s[i:]) - len(rest)
	}
	return string(out)
}
