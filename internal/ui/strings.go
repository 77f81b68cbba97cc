package ui

import (
	"strings"
	"unicode/utf8"
)

// ellipsis marks truncated dish lists.
const ellipsis = "..."

// truncate limits value to limit runes. Longer values keep limit-3 leading
// runes followed by an ellipsis.
func truncate(value string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= len(ellipsis) {
		return ellipsis[:limit]
	}
	return string(runes[:limit-len(ellipsis)]) + ellipsis
}

// padLeft right-aligns s in a column of width runes.
func padLeft(s string, width int) string {
	return spaces(width-runeLen(s)) + s
}

// spaces returns n spaces, or nothing for n <= 0.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
