// Package timeline maps one global progress value onto staggered, eased
// local progress values for every animated element of the menu.
package timeline

import (
	"math"

	"github.com/llehouerou/slidemenu/internal/ease"
	"github.com/llehouerou/slidemenu/internal/theme"
)

// Interval is a sub-range of global progress shaped by a curve.
type Interval struct {
	Start float64
	End   float64
	Curve ease.Curve
}

// Transform returns the eased local progress of p within the interval,
// always in [0,1]. An empty interval yields 0.
func (iv Interval) Transform(p float64) float64 {
	if iv.End <= iv.Start {
		return 0
	}
	local := clamp((p-iv.Start)/(iv.End-iv.Start), 0, 1)
	return clamp(iv.Curve.Transform(local), 0, 1)
}

// Stagger places sequential elements on the timeline: element i starts at
// Base + i*Step (capped at Cap) and lasts Span.
type Stagger struct {
	Base float64
	Span float64
	Cap  float64
	Step float64
}

// Start returns the start offset of element i.
func (s Stagger) Start(i int) float64 {
	return clamp(s.Base+float64(i)*s.Step, 0, s.Cap)
}

// Interval returns the interval of element i.
func (s Stagger) Interval(i int, c ease.Curve) Interval {
	start := s.Start(i)
	return Interval{
		Start: start,
		End:   clamp(start+s.Span, 0, 1),
		Curve: c,
	}
}

// Element timing constants.
const (
	LayerSpan = 0.45
	LayerCap  = 0.8

	PanelStart = 0.18
	PanelEnd   = 1.0

	ItemBase = 0.28
	ItemSpan = 0.50
	ItemCap  = 0.9

	SocialsStart = 0.55
	SocialsEnd   = 0.95
)

// Timeline holds the per-element intervals for one theme and element count.
type Timeline struct {
	Layers  []Interval
	Panel   Interval
	Items   []Interval
	Socials Interval
}

// New builds the timeline for the given theme, decorative layer count and
// item count.
func New(t theme.Theme, layers, items int) Timeline {
	layerStagger := Stagger{Span: LayerSpan, Cap: LayerCap, Step: t.LayerStagger}
	itemStagger := Stagger{Base: ItemBase, Span: ItemSpan, Cap: ItemCap, Step: t.ItemStagger}

	tl := Timeline{
		Layers:  make([]Interval, max(layers, 0)),
		Panel:   Interval{Start: PanelStart, End: PanelEnd, Curve: t.PanelCurve},
		Items:   make([]Interval, max(items, 0)),
		Socials: Interval{Start: SocialsStart, End: SocialsEnd, Curve: t.ItemCurve},
	}
	for i := range tl.Layers {
		tl.Layers[i] = layerStagger.Interval(i, t.LayerCurve)
	}
	for i := range tl.Items {
		tl.Items[i] = itemStagger.Interval(i, t.ItemCurve)
	}
	return tl
}

// Frame is every element's local progress for one global progress value.
type Frame struct {
	Progress float64
	Layers   []float64
	Panel    float64
	Items    []float64
	Socials  float64
}

// At evaluates every element against the same progress snapshot.
func (tl Timeline) At(p float64) Frame {
	p = clamp(p, 0, 1)
	f := Frame{
		Progress: p,
		Layers:   make([]float64, len(tl.Layers)),
		Panel:    tl.Panel.Transform(p),
		Items:    make([]float64, len(tl.Items)),
		Socials:  tl.Socials.Transform(p),
	}
	for i, iv := range tl.Layers {
		f.Layers[i] = iv.Transform(p)
	}
	for i, iv := range tl.Items {
		f.Items[i] = iv.Transform(p)
	}
	return f
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
