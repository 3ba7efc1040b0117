package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/slidemenu/internal/theme"
)

// Text converts a theme text style to a lipgloss style, with the foreground
// drawn at opacity over bg.
func Text(ts theme.TextStyle, bg lipgloss.Color, opacity float64) lipgloss.Style {
	s := lipgloss.NewStyle().
		Background(bg).
		Bold(ts.Bold).
		Italic(ts.Italic).
		Underline(ts.Underline)
	if ts.Color != "" {
		s = s.Foreground(Fade(ts.Color, bg, opacity))
	}
	return s
}
