package util

import "strings"

// CleanText collapses runs of whitespace (including non-breaking spaces,
// which the guest pages are full of) into single spaces.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// TruncateRunes shortens s to at most n runes, appending "..." when it cut
// anything. Used for the description preview column.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
