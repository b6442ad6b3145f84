// Package textutil provides width-aware text helpers for terminal layout.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most maxWidth columns, ending in Ellipsis when
// anything was removed.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	avail := maxWidth - VisualWidth(Ellipsis)
	if avail < 0 {
		return Ellipsis
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + Ellipsis
}

// PadRightVisual pads s with spaces to width columns, truncating when it is
// already wider.
func PadRightVisual(s string, width int) string {
	w := VisualWidth(s)
	if w >= width {
		return Truncate(s, width)
	}
	return s + runewidth.FillRight("", width-w)
}

// Wrap breaks s into lines of at most width columns at spaces. Words longer
// than width are truncated. Continuation lines are prefixed with indent,
// which counts toward width.
func Wrap(s string, width int, indent string) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	if width <= VisualWidth(indent) {
		indent = ""
	}
	var lines []string
	cur := ""
	prefix := ""
	for _, word := range words {
		limit := width - VisualWidth(prefix)
		if cur == "" {
			cur = Truncate(word, limit)
			continue
		}
		if VisualWidth(cur)+1+VisualWidth(word) <= limit {
			cur += " " + word
			continue
		}
		lines = append(lines, prefix+cur)
		prefix = indent
		cur = Truncate(word, width-VisualWidth(prefix))
	}
	return append(lines, prefix+cur)
}
