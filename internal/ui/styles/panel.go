package styles

import "github.com/charmbracelet/lipgloss"

// PageStyle returns the border style for the host page. The page loses its
// focus color while an overlay holds input.
func PageStyle(focused bool) lipgloss.Style {
	color := T().Border
	if focused {
		color = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}
