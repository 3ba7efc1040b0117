// Package layout provides pure functions for menu geometry. Sizes are in
// logical units; Metrics converts them to terminal cells.
package layout

import "math"

// Responsive item typography bounds.
const (
	ItemFontFactor  = 0.065
	MinItemFontSize = 36
	MaxItemFontSize = 52

	// LineHeightFactor relates a font size to the height of its text line.
	LineHeightFactor = 1.2
)

// Metrics is the size of one terminal cell in logical units.
type Metrics struct {
	CellWidth  float64
	CellHeight float64
}

// Columns converts a logical width to whole columns.
func (m Metrics) Columns(logical float64) int {
	if m.CellWidth <= 0 {
		return 0
	}
	return int(math.Round(logical / m.CellWidth))
}

// Rows converts a logical height to whole rows.
func (m Metrics) Rows(logical float64) int {
	if m.CellHeight <= 0 {
		return 0
	}
	return int(math.Round(logical / m.CellHeight))
}

// Width converts columns to a logical width.
func (m Metrics) Width(columns int) float64 {
	return float64(columns) * m.CellWidth
}

// Height converts rows to a logical height.
func (m Metrics) Height(rows int) float64 {
	return float64(rows) * m.CellHeight
}

// Viewport is the terminal area available to the menu.
type Viewport struct {
	Columns int
	Rows    int
	Metrics Metrics
}

// LogicalWidth returns the viewport width in logical units.
func (v Viewport) LogicalWidth() float64 {
	return v.Metrics.Width(v.Columns)
}

// PanelOpts are the panel sizing settings.
type PanelOpts struct {
	MobileBreakpoint float64
	WidthFraction    float64
	MinWidth         float64
	MaxWidth         float64
}

// PanelWidth returns the panel width for a viewport width. Below the mobile
// breakpoint the panel takes the whole viewport; otherwise a fraction of
// it, clamped to [MinWidth, MaxWidth].
func PanelWidth(viewport float64, opts PanelOpts) float64 {
	if viewport < opts.MobileBreakpoint {
		return viewport
	}
	w := viewport * opts.WidthFraction
	w = math.Max(w, opts.MinWidth)
	w = math.Min(w, opts.MaxWidth)
	return w
}

// PanelColumns is PanelWidth in cells, never wider than the viewport.
func PanelColumns(v Viewport, opts PanelOpts) int {
	cols := v.Metrics.Columns(PanelWidth(v.LogicalWidth(), opts))
	return min(max(cols, 0), v.Columns)
}

// IsMobile reports whether the viewport is below the breakpoint.
func IsMobile(viewport, breakpoint float64) bool {
	return viewport < breakpoint
}

// ItemFontSize returns the responsive menu item font size for a viewport
// width. It ignores any configured base size.
func ItemFontSize(viewport float64) float64 {
	size := viewport * ItemFontFactor
	return math.Min(math.Max(size, MinItemFontSize), MaxItemFontSize)
}

// LineHeight returns the line height for a font size.
func LineHeight(fontSize float64) float64 {
	return fontSize * LineHeightFactor
}
