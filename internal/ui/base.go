package ui

import "github.com/llehouerou/slidemenu/internal/ui/layout"

// Base carries the size, cell metrics and focus flag every component
// needs. Embed it in component models.
//
//	type Model struct {
//	    ui.Base
//	    items []Item
//	}
type Base struct {
	width, height int
	metrics       layout.Metrics
	focused       bool
}

// SetFocused sets whether the component has input focus.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused reports whether the component has input focus.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize records the terminal area in cells. Negative sizes become 0.
func (b *Base) SetSize(width, height int) {
	b.width = max(width, 0)
	b.height = max(height, 0)
}

// SetMetrics records the logical size of one cell.
func (b *Base) SetMetrics(m layout.Metrics) {
	b.metrics = m
}

// Width returns the width in columns.
func (b Base) Width() int {
	return b.width
}

// Height returns the height in rows.
func (b Base) Height() int {
	return b.height
}

// Viewport returns the component area together with its cell metrics.
func (b Base) Viewport() layout.Viewport {
	return layout.Viewport{Columns: b.width, Rows: b.height, Metrics: b.metrics}
}

// Sized reports whether a size has been received yet.
func (b Base) Sized() bool {
	return b.width > 0 && b.height > 0
}
