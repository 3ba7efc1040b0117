package menu

import (
	"math"

	"github.com/llehouerou/slidemenu/internal/theme"
	"github.com/llehouerou/slidemenu/internal/timeline"
	"github.com/llehouerou/slidemenu/internal/ui/layout"
)

// Item entrance motion: items fall into place from ItemDrop logical units
// below while un-tilting from ItemTilt degrees.
const (
	ItemDrop = 44.0
	ItemTilt = 10.0
)

// Typography thresholds for mapping the responsive font size onto
// terminal text.
const (
	BoldFontSize   = 40.0
	SpacedFontSize = 48.0
)

// Slide is the horizontal placement of a layer or the panel.
type Slide struct {
	Progress float64 // local progress
	Offset   float64 // logical units from the resting position
	Shift    int     // Offset in columns
}

// ItemTransform is the entrance transform of one item.
type ItemTransform struct {
	Progress       float64
	DY             float64 // logical units, downward
	Angle          float64 // degrees about the bottom-leading corner
	RowShift       int
	ColShift       int
	Opacity        float64
	OrdinalOpacity float64
}

// Scene is everything needed to draw one frame of the menu.
type Scene struct {
	Progress     float64
	Position     Position
	Viewport     layout.Viewport
	Mobile       bool
	PanelWidth   float64 // logical units
	PanelColumns int
	ItemFontSize float64
	LineHeight   float64
	Bold         bool
	Spaced       bool

	Layers  []Slide
	Panel   Slide
	Items   []ItemTransform
	Socials float64 // opacity
}

// Compose computes the scene for global progress p. Pure: it depends only
// on its arguments, and every element reads the same progress snapshot.
func Compose(t theme.Theme, vp layout.Viewport, pos Position, items int, p float64) Scene {
	width := vp.LogicalWidth()
	opts := layout.PanelOpts{
		MobileBreakpoint: t.MobileBreakpoint,
		WidthFraction:    t.WidthFraction,
		MinWidth:         t.MinWidth,
		MaxWidth:         t.MaxWidth,
	}
	panelWidth := layout.PanelWidth(width, opts)
	fontSize := layout.ItemFontSize(width)
	lineHeight := layout.LineHeight(fontSize)

	frame := timeline.New(t, len(t.LayerColors), items).At(p)

	sc := Scene{
		Progress:     frame.Progress,
		Position:     pos,
		Viewport:     vp,
		Mobile:       layout.IsMobile(width, t.MobileBreakpoint),
		PanelWidth:   panelWidth,
		PanelColumns: layout.PanelColumns(vp, opts),
		ItemFontSize: fontSize,
		LineHeight:   lineHeight,
		Bold:         fontSize >= BoldFontSize,
		Spaced:       fontSize >= SpacedFontSize,
		Layers:       make([]Slide, len(frame.Layers)),
		Panel:        slide(frame.Panel, panelWidth, pos, vp.Metrics),
		Items:        make([]ItemTransform, len(frame.Items)),
		Socials:      frame.Socials,
	}
	for i, v := range frame.Layers {
		sc.Layers[i] = slide(v, panelWidth, pos, vp.Metrics)
	}
	for i, v := range frame.Items {
		sc.Items[i] = itemTransform(v, lineHeight, vp.Metrics)
	}
	return sc
}

// slide places an element v of the way from fully off-screen to rest.
// Left panels come from the left (negative offsets), right ones from the
// right.
func slide(v, width float64, pos Position, m layout.Metrics) Slide {
	offset := (1 - v) * width
	if pos == Left {
		offset = -offset
	}
	return Slide{Progress: v, Offset: offset, Shift: m.Columns(offset)}
}

func itemTransform(v, lineHeight float64, m layout.Metrics) ItemTransform {
	dy := (1 - v) * ItemDrop
	angle := (1 - v) * ItemTilt
	colShift := 0
	if m.CellWidth > 0 {
		colShift = int(math.Round(math.Tan(angle*math.Pi/180) * lineHeight / m.CellWidth))
	}
	return ItemTransform{
		Progress:       v,
		DY:             dy,
		Angle:          angle,
		RowShift:       m.Rows(dy),
		ColShift:       colShift,
		Opacity:        v,
		OrdinalOpacity: v,
	}
}

// rest returns the first column of the panel when fully open.
func (sc Scene) rest() int {
	if sc.Position == Left {
		return 0
	}
	return sc.Viewport.Columns - sc.PanelColumns
}

// span returns the visible columns [x0, x1) of an element shifted by
// shift, and its unclipped first column.
func (sc Scene) span(shift int) (x0, x1, origin int) {
	origin = sc.rest() + shift
	x0 = max(origin, 0)
	x1 = min(origin+sc.PanelColumns, sc.Viewport.Columns)
	return x0, x1, origin
}
