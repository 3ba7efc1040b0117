// Package toggle implements the menu's open/close button: a "+" that turns
// into "×" while a two-line "Menu"/"Close" label slides past.
package toggle

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/slidemenu/internal/anim"
	"github.com/llehouerou/slidemenu/internal/ease"
	"github.com/llehouerou/slidemenu/internal/theme"
	"github.com/llehouerou/slidemenu/internal/timeline"
	"github.com/llehouerou/slidemenu/internal/ui/styles"
)

// Duration is the toggle's own animation length, independent of the
// menu's.
const Duration = 400 * time.Millisecond

// LabelTravel is how far, in logical units, the label slides over a full
// run.
const LabelTravel = 18.0

// HoverOpacity is the toggle's opacity under the pointer.
const HoverOpacity = 0.7

// Width is the rendered width of the toggle in columns.
const Width = 9

var (
	rotationCurve = ease.EaseOutBack
	colorInterval = timeline.Interval{Start: 0.2, End: 1.0, Curve: ease.Decelerate}
	labels        = [2]string{"Menu", "Close"}
	glyphs        = [2]string{"+", "×"}
)

// Frame is the toggle's appearance at one driver value.
type Frame struct {
	Rotation    float64 // degrees, may overshoot the configured rotation
	Color       lipgloss.Color
	LabelOffset float64 // logical units
	Opacity     float64
}

// FrameAt computes the frame for driver value v. Pure.
func FrameAt(t theme.Theme, v float64, hovered bool) Frame {
	v = math.Min(math.Max(v, 0), 1)
	f := Frame{
		Rotation:    rotationCurve.Transform(v) * t.IconRotation,
		Color:       styles.Blend(t.ToggleClosedColor, t.ToggleOpenColor, colorInterval.Transform(v)),
		LabelOffset: v * LabelTravel,
		Opacity:     1,
	}
	if hovered {
		f.Opacity = HoverOpacity
	}
	return f
}

// Glyph returns the icon for a rotation, snapped to 45° steps: even steps
// draw "+", odd steps "×".
func (f Frame) Glyph() string {
	step := int(math.Abs(math.Round(f.Rotation / 45)))
	return glyphs[step%2]
}

// Label returns the line of the two-line label the offset has slid to.
func (f Frame) Label(cellHeight float64) string {
	if cellHeight <= 0 {
		cellHeight = 1
	}
	row := int(math.Round(f.LabelOffset / cellHeight))
	return labels[min(max(row, 0), 1)]
}

// Model is the toggle control. Drive it with Open/Close and route frame
// messages to Update.
type Model struct {
	driver  *anim.Driver
	theme   theme.Theme
	hovered bool
}

// New creates a closed toggle.
func New(t theme.Theme) *Model {
	return &Model{
		driver: anim.New(Duration),
		theme:  t,
	}
}

// SetTheme replaces the colors and rotation. The duration stays fixed.
func (m *Model) SetTheme(t theme.Theme) {
	m.theme = t
}

// SetClock replaces the driver's time source.
func (m *Model) SetClock(now func() time.Time) {
	m.driver.SetClock(now)
}

// Driver exposes the toggle's progress driver.
func (m *Model) Driver() *anim.Driver {
	return m.driver
}

// Open animates toward the open look.
func (m *Model) Open() tea.Cmd {
	return m.driver.Forward()
}

// Close animates back toward the closed look.
func (m *Model) Close() tea.Cmd {
	return m.driver.Reverse()
}

// Update advances the driver on its frame messages.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	return m.driver.Update(msg)
}

// SetHovered sets the pointer hover flag.
func (m *Model) SetHovered(hovered bool) {
	m.hovered = hovered
}

// Hovered reports the pointer hover flag.
func (m *Model) Hovered() bool {
	return m.hovered
}

// Frame returns the current appearance.
func (m *Model) Frame() Frame {
	return FrameAt(m.theme, m.driver.Value(), m.hovered)
}

// View renders the toggle on background bg, Width columns wide.
func (m *Model) View(bg lipgloss.Color) string {
	f := m.Frame()
	style := lipgloss.NewStyle().
		Background(bg).
		Foreground(styles.Fade(f.Color, bg, f.Opacity))

	content := " " + f.Glyph() + " " + f.Label(m.theme.CellHeight)
	content += strings.Repeat(" ", max(Width-lipgloss.Width(content), 0))
	return style.Bold(true).Render(content)
}

// Dispose stops the driver. Safe to call more than once.
func (m *Model) Dispose() {
	m.driver.Dispose()
}
