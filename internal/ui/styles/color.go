package styles

import (
	"image/color"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Blend returns the color t of the way from a to b, blended in HCL space
// for perceptually even steps. t is clamped to [0,1].
func Blend(a, b lipgloss.Color, t float64) lipgloss.Color {
	t = clamp01(t)
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	c1, _ := colorful.MakeColor(toColor(a))
	c2, _ := colorful.MakeColor(toColor(b))
	return lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
}

// Fade returns fg drawn at the given opacity over bg. Blending happens in
// RGB, which is how translucent paint composites.
func Fade(fg, bg lipgloss.Color, opacity float64) lipgloss.Color {
	opacity = clamp01(opacity)
	switch opacity {
	case 1:
		return fg
	case 0:
		return bg
	}
	f, _ := colorful.MakeColor(toColor(fg))
	b, _ := colorful.MakeColor(toColor(bg))
	return lipgloss.Color(b.BlendRgb(f, opacity).Clamped().Hex())
}

// toColor converts a lipgloss.Color to a color.Color.
func toColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		col, err := colorful.Hex(hex)
		if err == nil {
			return col
		}
	}
	// Fallback for ANSI colors - return a neutral gray
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

// colorToHex converts a color.Color to a hex string.
func colorToHex(c color.Color) string {
	cf, ok := c.(colorful.Color)
	if ok {
		return cf.Hex()
	}
	r, g, b, _ := c.RGBA()
	return colorful.Color{
		R: float64(r) / 65535.0,
		G: float64(g) / 65535.0,
		B: float64(b) / 65535.0,
	}.Hex()
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
