// Package testutil provides helpers for testing Bubble Tea components.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output compares as text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// ContainsLine reports whether any line of output contains substr, ignoring
// styling.
func ContainsLine(output, substr string) bool {
	_, _, ok := Locate(output, substr)
	return ok
}

// FindLine returns the first unstyled line containing substr, or "".
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// Locate returns the cell column and row where substr first appears in
// output. Columns count display cells, so wide characters before the match
// are measured correctly.
func Locate(output, substr string) (col, row int, ok bool) {
	for i, line := range strings.Split(StripANSI(output), "\n") {
		if idx := strings.Index(line, substr); idx >= 0 {
			return ansi.StringWidth(line[:idx]), i, true
		}
	}
	return 0, 0, false
}

// CountLines returns the number of non-blank lines in output.
func CountLines(output string) int {
	count := 0
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// Widths returns the display width of each line of output.
func Widths(output string) []int {
	lines := strings.Split(output, "\n")
	widths := make([]int, len(lines))
	for i, line := range lines {
		widths[i] = ansi.StringWidth(line)
	}
	return widths
}
