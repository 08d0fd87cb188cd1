package utils

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// TruncateString shortens s to at most width terminal cells, marking the cut
// with an ellipsis.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// FitCell truncates or pads s to exactly width cells.
func FitCell(s string, width int) string {
	return runewidth.FillRight(TruncateString(s, width), width)
}

// Pluralize renders "1 employee" or "3 employees".
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
