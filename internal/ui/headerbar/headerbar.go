// Package headerbar renders the page tabs at the top of the demo host.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/slidemenu/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// MinWidth is the narrowest bar that is drawn at all.
const MinWidth = 20

// Tab is one page shown in the bar.
type Tab struct {
	ID   string
	Name string
}

// Render returns the header bar string for the given width, with the tab
// whose ID is current highlighted. Tabs are centered so the menu toggle in
// either top corner never covers them.
func Render(tabs []Tab, current string, width int) string {
	if width < MinWidth || len(tabs) == 0 {
		return ""
	}

	p := styles.T()
	activeStyle := lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(p.FgMuted)
	separator := lipgloss.NewStyle().Foreground(p.FgSubtle).Render(" │ ")

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		style := inactiveStyle
		if t.ID == current {
			style = activeStyle
		}
		parts = append(parts, style.Render(t.Name))
	}

	content := strings.Join(parts, separator)

	// Center the content
	contentWidth := lipgloss.Width(content)
	if contentWidth < width {
		padLeft := (width - contentWidth) / 2
		content = strings.Repeat(" ", padLeft) + content
	}

	return content
}
