// ABOUTME: Display width of terminal strings: grapheme-aware, ANSI sequences skipped
// ABOUTME: Truncate fits styled output lines into a column budget

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// VisibleWidth returns the number of terminal cells s occupies. ANSI escape
// sequences count as zero; wide East Asian characters and emoji count as two.
func VisibleWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	forEachCluster(s, func(cluster string, seq bool) bool {
		if !seq {
			w += clusterWidth(cluster)
		}
		return true
	})
	return w
}

// Truncate shortens s to at most maxWidth cells, ending in an ellipsis when
// anything was cut. Escape sequences before the cut are kept, and a reset is
// emitted before the ellipsis so styles do not bleed.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return ellipsis
	}

	var b strings.Builder
	col, target, styled := 0, maxWidth-1, false
	forEachCluster(s, func(cluster string, seq bool) bool {
		if seq {
			b.WriteString(cluster)
			styled = true
			return true
		}
		cw := clusterWidth(cluster)
		if col+cw > target {
			return false
		}
		b.WriteString(cluster)
		col += cw
		return true
	})
	if styled {
		b.WriteString("\x1b[0m")
	}
	b.WriteString(ellipsis)
	return b.String()
}

// StripANSI removes CSI and OSC escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	forEachCluster(s, func(cluster string, seq bool) bool {
		if !seq {
			b.WriteString(cluster)
		}
		return true
	})
	return b.String()
}

// forEachCluster walks s yielding escape sequences and grapheme clusters in
// order until fn returns false.
func forEachCluster(s string, fn func(cluster string, seq bool) bool) {
	state := -1
	for len(s) > 0 {
		if s[0] == '\x1b' {
			end := sequenceEnd(s)
			if !fn(s[:end], true) {
				return
			}
			s = s[end:]
			state = -1
			continue
		}
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		if !fn(cluster, false) {
			return
		}
		s, state = rest, newState
	}
}

// sequenceEnd returns the length of the escape sequence at the start of s.
func sequenceEnd(s string) int {
	if len(s) < 2 {
		return len(s)
	}
	switch s[1] {
	case '[':
		for i := 2; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7e {
				return i + 1
			}
		}
	case ']':
		for i := 2; i < len(s); i++ {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
	default:
		return 2
	}
	return len(s)
}

func clusterWidth(cluster string) int {
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
