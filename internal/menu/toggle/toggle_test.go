package toggle

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/slidemenu/internal/theme"
)

func TestFrameAt_Endpoints(t *testing.T) {
	th := theme.Default()

	closed := FrameAt(th, 0, false)
	assert.Zero(t, closed.Rotation)
	assert.Equal(t, th.ToggleClosedColor, closed.Color)
	assert.Zero(t, closed.LabelOffset)
	assert.InDelta(t, 1.0, closed.Opacity, 1e-9)
	assert.Equal(t, "+", closed.Glyph())
	assert.Equal(t, "Menu", closed.Label(th.CellHeight))

	open := FrameAt(th, 1, false)
	assert.InDelta(t, th.IconRotation, open.Rotation, 1e-9)
	assert.Equal(t, th.ToggleOpenColor, open.Color)
	assert.InDelta(t, LabelTravel, open.LabelOffset, 1e-9)
	assert.Equal(t, "×", open.Glyph())
	assert.Equal(t, "Close", open.Label(th.CellHeight))
}

func TestFrameAt_ColorHoldsUntilInterval(t *testing.T) {
	th := theme.Default()
	assert.Equal(t, th.ToggleClosedColor, FrameAt(th, 0.15, false).Color)
	assert.NotEqual(t, th.ToggleClosedColor, FrameAt(th, 0.5, false).Color)
}

func TestFrameAt_RotationOvershoots(t *testing.T) {
	th := theme.Default()
	peak := 0.0
	for i := range 101 {
		peak = max(peak, FrameAt(th, float64(i)/100, false).Rotation)
	}
	assert.Greater(t, peak, th.IconRotation)
}

func TestFrameAt_LabelOffsetIsLinear(t *testing.T) {
	th := theme.Default()
	assert.InDelta(t, LabelTravel/4, FrameAt(th, 0.25, false).LabelOffset, 1e-9)
}

func TestFrameAt_Hover(t *testing.T) {
	assert.InDelta(t, HoverOpacity, FrameAt(theme.Default(), 0.5, true).Opacity, 1e-9)
}

func TestGlyph_Steps(t *testing.T) {
	tests := []struct {
		rotation float64
		want     string
	}{
		{0, "+"},
		{20, "+"},
		{23, "×"},
		{45, "×"},
		{90, "+"},
		{-45, "×"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Frame{Rotation: tt.rotation}.Glyph(), "rotation %v", tt.rotation)
	}
}

func TestModel_OpenClose(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	m := New(theme.Default())
	m.SetClock(func() time.Time { return now })

	require.NotNil(t, m.Open())
	m.Update(m.Driver().Frame(now.Add(Duration)))
	assert.Equal(t, "×", m.Frame().Glyph())

	now = now.Add(Duration)
	require.NotNil(t, m.Close())
	m.Update(m.Driver().Frame(now.Add(Duration / 2)))
	assert.InDelta(t, 0.5, m.Driver().Value(), 1e-9)

	m.Dispose()
	assert.Nil(t, m.Open())
}

func TestModel_View(t *testing.T) {
	m := New(theme.Default())
	out := m.View("#000000")
	assert.Equal(t, Width, lipgloss.Width(out))
	assert.Contains(t, out, "Menu")

	m.SetHovered(true)
	assert.True(t, m.Hovered())
	assert.InDelta(t, HoverOpacity, m.Frame().Opacity, 1e-9)
}
