package theme

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/slidemenu/internal/ease"
)

func TestResolve_DefaultsWhenNothingGiven(t *testing.T) {
	got := Resolve(Overrides{}, nil)
	assert.True(t, got.Equal(Default().Normalize()))
}

func TestResolve_Precedence(t *testing.T) {
	inherited := Default()
	inherited.PanelOpacity = 0.5
	inherited.ItemStagger = 0.2

	got := Resolve(Overrides{ItemStagger: Ptr(0.1)}, &inherited)

	assert.InDelta(t, 0.1, got.ItemStagger, 1e-9, "explicit wins over inherited")
	assert.InDelta(t, 0.5, got.PanelOpacity, 1e-9, "inherited wins over default")
	assert.Equal(t, Default().Duration, got.Duration, "default fills the rest")
}

func TestResolve_IsPure(t *testing.T) {
	o := Overrides{
		LayerColors: []lipgloss.Color{"#111111"},
		Duration:    Ptr(time.Second),
	}
	a := Resolve(o, nil)
	b := Resolve(o, nil)
	assert.True(t, a.Equal(b))

	// Mutating the input afterwards must not leak into resolved themes.
	o.LayerColors[0] = "#222222"
	assert.Equal(t, lipgloss.Color("#111111"), a.LayerColors[0])
}

func TestWithOverrides_OnlyNamedFields(t *testing.T) {
	base := Default()
	got := base.WithOverrides(Overrides{
		ShowNumbers: Ptr(false),
		PanelCurve:  Ptr(ease.Linear),
	})

	assert.False(t, got.ShowNumbers)
	assert.Equal(t, ease.Linear, got.PanelCurve)
	assert.True(t, base.ShowNumbers, "receiver unchanged")

	got.ShowNumbers = base.ShowNumbers
	got.PanelCurve = base.PanelCurve
	assert.True(t, got.Equal(base))
}

func TestWithOverrides_CopiesLayerColors(t *testing.T) {
	base := Default()
	got := base.WithOverrides(Overrides{})
	got.LayerColors[0] = "#ffffff"
	assert.NotEqual(t, lipgloss.Color("#ffffff"), base.LayerColors[0])
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		in    Overrides
		check func(t *testing.T, got Theme)
	}{
		{
			name: "opacity clamped",
			in:   Overrides{PanelOpacity: Ptr(1.7)},
			check: func(t *testing.T, got Theme) {
				assert.InDelta(t, 1.0, got.PanelOpacity, 1e-9)
			},
		},
		{
			name: "negative fractions clamped",
			in:   Overrides{WidthFraction: Ptr(-0.2), ItemStagger: Ptr(-1.0), LayerStagger: Ptr(3.0)},
			check: func(t *testing.T, got Theme) {
				assert.Zero(t, got.WidthFraction)
				assert.Zero(t, got.ItemStagger)
				assert.InDelta(t, 1.0, got.LayerStagger, 1e-9)
			},
		},
		{
			name: "negative widths",
			in:   Overrides{MinWidth: Ptr(-10.0), MaxWidth: Ptr(-5.0)},
			check: func(t *testing.T, got Theme) {
				assert.Zero(t, got.MinWidth)
				assert.Zero(t, got.MaxWidth)
			},
		},
		{
			name: "min greater than max",
			in:   Overrides{MinWidth: Ptr(500.0), MaxWidth: Ptr(300.0)},
			check: func(t *testing.T, got Theme) {
				assert.InDelta(t, 500.0, got.MinWidth, 1e-9)
				assert.InDelta(t, 500.0, got.MaxWidth, 1e-9)
			},
		},
		{
			name: "non-positive duration",
			in:   Overrides{Duration: Ptr(-time.Second)},
			check: func(t *testing.T, got Theme) {
				assert.Equal(t, Default().Duration, got.Duration)
			},
		},
		{
			name: "unknown curve",
			in:   Overrides{ItemCurve: Ptr(ease.Curve("wobble"))},
			check: func(t *testing.T, got Theme) {
				assert.Equal(t, Default().ItemCurve, got.ItemCurve)
			},
		},
		{
			name: "NaN blur",
			in:   Overrides{BlurRadius: Ptr(math.NaN())},
			check: func(t *testing.T, got Theme) {
				assert.Zero(t, got.BlurRadius)
			},
		},
		{
			name: "negative padding",
			in:   Overrides{Padding: &Insets{Top: -1, Right: 4, Bottom: -3, Left: 2}},
			check: func(t *testing.T, got Theme) {
				assert.Equal(t, Insets{Right: 4, Left: 2}, got.Padding)
			},
		},
		{
			name: "zero cell metrics",
			in:   Overrides{CellWidth: Ptr(0.0), CellHeight: Ptr(-2.0)},
			check: func(t *testing.T, got Theme) {
				assert.InDelta(t, Default().CellWidth, got.CellWidth, 1e-9)
				assert.InDelta(t, Default().CellHeight, got.CellHeight, 1e-9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Resolve(tt.in, nil))
		})
	}
}

func TestContextLookup(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	outer := Default()
	outer.AccentColor = "#ff0000"
	inner := Default()
	inner.AccentColor = "#00ff00"

	ctx := NewContext(context.Background(), outer)
	ctx = NewContext(ctx, inner)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#00ff00"), got.AccentColor, "nearest theme wins")

	resolved := ResolveContext(ctx, Overrides{AccentColor: Ptr(lipgloss.Color("#0000ff"))})
	assert.Equal(t, lipgloss.Color("#0000ff"), resolved.AccentColor)

	fallback := ResolveContext(context.Background(), Overrides{})
	assert.True(t, fallback.Equal(Default().Normalize()))
}

func TestOverridesIsZero(t *testing.T) {
	assert.True(t, Overrides{}.IsZero())
	assert.False(t, Overrides{SocialsTitle: Ptr("Links")}.IsZero())
}
