// Package theme defines the menu's immutable settings and how explicit,
// inherited and default settings are merged into one.
package theme

import (
	"math"
	"reflect"
	"slices"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/slidemenu/internal/ease"
)

// Insets are padding amounts in logical units.
type Insets struct {
	Top    float64 `koanf:"top"`
	Right  float64 `koanf:"right"`
	Bottom float64 `koanf:"bottom"`
	Left   float64 `koanf:"left"`
}

// TextStyle describes text appearance. Size is in logical units; the
// terminal renderer maps it onto weight and letter spacing.
type TextStyle struct {
	Color     lipgloss.Color `koanf:"color"`
	Size      float64        `koanf:"size"`
	Bold      bool           `koanf:"bold"`
	Italic    bool           `koanf:"italic"`
	Underline bool           `koanf:"underline"`
}

// Theme is the resolved, immutable configuration consumed by the menu.
// Treat it as a value: use WithOverrides to derive a modified copy.
type Theme struct {
	// Decorative layers, bottom-most first.
	LayerColors []lipgloss.Color

	// Panel appearance
	PanelColor       lipgloss.Color
	PanelOpacity     float64
	BlurRadius       float64
	MinWidth         float64
	MaxWidth         float64
	WidthFraction    float64
	MobileBreakpoint float64
	Padding          Insets

	// Accent and toggle
	AccentColor       lipgloss.Color
	ToggleClosedColor lipgloss.Color
	ToggleOpenColor   lipgloss.Color
	IconSize          float64
	IconRotation      float64 // degrees

	// Typography
	ItemStyle         TextStyle
	ItemHoverStyle    TextStyle
	NumberStyle       TextStyle
	SocialsTitleStyle TextStyle
	SocialStyle       TextStyle
	SocialHoverStyle  TextStyle

	// Feature flags
	ShowNumbers      bool
	EnableHover      bool
	CloseOnClickAway bool

	// Motion
	Duration     time.Duration
	PanelCurve   ease.Curve
	LayerCurve   ease.Curve
	ItemCurve    ease.Curve
	LayerStagger float64
	ItemStagger  float64

	// Terminal mapping
	BackgroundColor lipgloss.Color
	CellWidth       float64 // logical units per column
	CellHeight      float64 // logical units per row
	SocialsTitle    string
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		LayerColors: []lipgloss.Color{"#2e1065", "#5b21b6", "#a78bfa"},

		PanelColor:       "#1a1a1a",
		PanelOpacity:     0.92,
		BlurRadius:       12,
		MinWidth:         260,
		MaxWidth:         420,
		WidthFraction:    0.38,
		MobileBreakpoint: 640,
		Padding:          Insets{Top: 24, Right: 32, Bottom: 24, Left: 32},

		AccentColor:       "#a78bfa",
		ToggleClosedColor: "#c0c0c0",
		ToggleOpenColor:   "#a78bfa",
		IconSize:          24,
		IconRotation:      45,

		ItemStyle:         TextStyle{Color: "#c0c0c0", Size: 40, Bold: true},
		ItemHoverStyle:    TextStyle{Color: "#a78bfa", Size: 40, Bold: true},
		NumberStyle:       TextStyle{Color: "#808080", Size: 12},
		SocialsTitleStyle: TextStyle{Color: "#585858", Size: 12, Bold: true},
		SocialStyle:       TextStyle{Color: "#c0c0c0", Size: 14},
		SocialHoverStyle:  TextStyle{Color: "#a78bfa", Size: 14, Underline: true},

		ShowNumbers:      true,
		EnableHover:      true,
		CloseOnClickAway: true,

		Duration:     700 * time.Millisecond,
		PanelCurve:   ease.EaseOutCubic,
		LayerCurve:   ease.EaseInOutCubic,
		ItemCurve:    ease.EaseOutCubic,
		LayerStagger: 0.08,
		ItemStagger:  0.07,

		BackgroundColor: "#000000",
		CellWidth:       8,
		CellHeight:      16,
		SocialsTitle:    "Socials",
	}
}

// Normalize returns a copy with every field forced into its valid range.
// Malformed values degrade to something renderable rather than failing.
func (t Theme) Normalize() Theme {
	d := Default()

	t.LayerColors = slices.Clone(t.LayerColors)

	t.PanelOpacity = clamp01(t.PanelOpacity)
	t.BlurRadius = nonNegative(t.BlurRadius)
	t.MinWidth = nonNegative(t.MinWidth)
	t.MaxWidth = nonNegative(t.MaxWidth)
	if t.MinWidth > t.MaxWidth {
		t.MaxWidth = t.MinWidth
	}
	t.WidthFraction = clamp01(t.WidthFraction)
	t.MobileBreakpoint = nonNegative(t.MobileBreakpoint)
	t.Padding = Insets{
		Top:    nonNegative(t.Padding.Top),
		Right:  nonNegative(t.Padding.Right),
		Bottom: nonNegative(t.Padding.Bottom),
		Left:   nonNegative(t.Padding.Left),
	}

	if t.IconSize <= 0 || math.IsNaN(t.IconSize) {
		t.IconSize = d.IconSize
	}
	if math.IsNaN(t.IconRotation) || math.IsInf(t.IconRotation, 0) {
		t.IconRotation = d.IconRotation
	}

	if t.Duration <= 0 {
		t.Duration = d.Duration
	}
	if !t.PanelCurve.Valid() {
		t.PanelCurve = d.PanelCurve
	}
	if !t.LayerCurve.Valid() {
		t.LayerCurve = d.LayerCurve
	}
	if !t.ItemCurve.Valid() {
		t.ItemCurve = d.ItemCurve
	}
	t.LayerStagger = clamp01(t.LayerStagger)
	t.ItemStagger = clamp01(t.ItemStagger)

	if t.CellWidth <= 0 || math.IsNaN(t.CellWidth) {
		t.CellWidth = d.CellWidth
	}
	if t.CellHeight <= 0 || math.IsNaN(t.CellHeight) {
		t.CellHeight = d.CellHeight
	}
	if t.SocialsTitle == "" {
		t.SocialsTitle = d.SocialsTitle
	}
	return t
}

// Equal reports whether two themes hold the same values.
func (t Theme) Equal(o Theme) bool {
	if !slices.Equal(t.LayerColors, o.LayerColors) {
		return false
	}
	a, b := t, o
	a.LayerColors, b.LayerColors = nil, nil
	return reflect.DeepEqual(a, b)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
