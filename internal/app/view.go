package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/slidemenu/internal/errmsg"
	"github.com/llehouerou/slidemenu/internal/keymap"
	"github.com/llehouerou/slidemenu/internal/ui"
	"github.com/llehouerou/slidemenu/internal/ui/headerbar"
	"github.com/llehouerou/slidemenu/internal/ui/render"
	"github.com/llehouerou/slidemenu/internal/ui/styles"
)

// pageBorder is the rows and columns taken by the page frame.
const pageBorder = 2

// View renders the application UI with the menu drawn on top.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.renderPageFrame(),
		m.status.Line(m.width),
		m.help.View(m.helpKeys()),
	}
	lines := strings.Split(strings.Join(sections, "\n"), "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, m.width, "")
	}
	return m.menu.Overlay(strings.Join(lines, "\n"))
}

func (m Model) renderHeader() string {
	tabs := make([]headerbar.Tab, len(m.routes))
	for i, r := range m.routes {
		tabs[i] = headerbar.Tab{ID: r.ID, Name: r.Label}
	}
	sep := styles.T().S().Subtle.Render(render.Separator(m.width))
	return headerbar.Render(tabs, m.current, m.width) + "\n" + sep
}

func (m Model) renderPageFrame() string {
	return styles.PageStyle(!m.menu.CapturesInput()).
		Padding(0, ui.PagePadding).
		Width(m.page.Width + 2*ui.PagePadding).
		Render(m.page.View())
}

func (m Model) helpKeys() keymap.Help {
	if m.menu.CapturesInput() {
		return keymap.NewHelp(keymap.ContextGlobal, keymap.ContextMenu)
	}
	return keymap.NewHelp(keymap.ContextGlobal, keymap.ContextPage)
}

// layout sizes the page to what the header, footer and frame leave over.
// Help is measured in both contexts so opening the menu never reflows
// the page.
func (m *Model) layout() {
	m.help.Width = m.width
	helpHeight := max(
		lipgloss.Height(m.help.View(keymap.NewHelp(keymap.ContextGlobal, keymap.ContextPage))),
		lipgloss.Height(m.help.View(keymap.NewHelp(keymap.ContextGlobal, keymap.ContextMenu))),
	)
	chrome := ui.HeaderHeight + 1 + helpHeight + pageBorder

	m.page.Width = max(m.width-pageBorder-2*ui.PagePadding, 0)
	m.page.Height = max(m.height-chrome, 0)
}

func (m *Model) renderPage() {
	if m.page.Width <= 0 {
		return
	}
	r, ok := m.route(m.current)
	if !ok {
		m.page.SetContent(styles.T().S().Error.Render(
			errmsg.FormatWith(errmsg.OpNavigate, m.current, errUnknownRoute)))
		return
	}
	content, err := m.pages.Render(r, m.page.Width)
	if err != nil {
		m.page.SetContent(styles.T().S().Error.Render(errmsg.Format(errmsg.OpPageRender, err)))
		return
	}
	m.page.SetContent(content)
}
