// Package overlay composites rendered blocks on top of a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws block on top of base with its top-left corner at column x,
// row y. Every cell the block covers replaces the base, spaces included,
// so styled backgrounds survive. Block rows outside the base are dropped;
// base lines are padded to width first. ANSI-aware.
func Place(base, block string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		baseLines[row] = PlaceLine(baseLines[row], line, x, width)
	}
	return strings.Join(baseLines, "\n")
}

// PlaceLine replaces the cells of baseLine starting at column x with
// segment, clipping anything that falls outside [0, width).
func PlaceLine(baseLine, segment string, x, width int) string {
	segWidth := ansi.StringWidth(segment)
	if segWidth == 0 || x >= width || x+segWidth <= 0 {
		return baseLine
	}

	// Clip the segment to the visible columns.
	if x < 0 {
		segment = ansi.TruncateLeft(segment, -x, "")
		segWidth += x
		x = 0
	}
	if x+segWidth > width {
		segment = ansi.Truncate(segment, width-x, "")
		segWidth = width - x
	}

	baseWidth := ansi.StringWidth(baseLine)
	if baseWidth < width {
		baseLine += strings.Repeat(" ", width-baseWidth)
	}

	// Cutting through a wide character can leave fewer cells than asked
	// for; pad so the segment lands on its column.
	prefix := ansi.Truncate(baseLine, x, "")
	if w := ansi.StringWidth(prefix); w < x {
		prefix += strings.Repeat(" ", x-w)
	}

	end := x + segWidth
	suffix := ""
	if end < width {
		suffix = ansi.TruncateLeft(baseLine, end, "")
		suffix = ansi.Truncate(suffix, width-end, "")
		if w := ansi.StringWidth(suffix); w < width-end {
			suffix = strings.Repeat(" ", width-end-w) + suffix
		}
	}

	// Reset between parts so open styles don't bleed across the seams.
	return prefix + ansi.ResetStyle + segment + ansi.ResetStyle + suffix
}

// Fill returns a width×height block of spaces.
func Fill(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Normalize pads or trims base to exactly height lines.
func Normalize(base string, height int) string {
	lines := strings.Split(base, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
