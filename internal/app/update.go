package app

import (
	"errors"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/slidemenu/internal/config"
	"github.com/llehouerou/slidemenu/internal/errmsg"
	"github.com/llehouerou/slidemenu/internal/keymap"
	"github.com/llehouerou/slidemenu/internal/menu"
	"github.com/llehouerou/slidemenu/internal/ui/action"
)

var errUnknownRoute = errors.New("no such page")

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case TickMsg:
		return m, TickCmd()

	case NavigateMsg:
		return m.navigate(msg.ID)

	case LinkMsg:
		m.status.SetMessage(msg.Label + ": " + msg.URL)
		return m, nil

	case action.Msg:
		if msg.Source == menu.Source {
			m.handleMenuAction(msg.Action)
		}
		return m, nil

	case config.ReloadedMsg:
		return m.handleReload(msg)
	}

	// Animation frames and controller requests.
	_, cmd := m.menu.Update(msg)
	return m, cmd
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	_, cmd := m.menu.Update(msg)
	m.layout()
	m.renderPage()
	return m, cmd
}

// handleKey gives the menu first claim on its own keys while it holds
// input; global keys work either way and page keys only while it is closed.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.menu.CapturesInput() && m.menuKeys.Handles(key) {
		_, cmd := m.menu.Update(msg)
		return m, cmd
	}

	switch m.keys.Resolve(key) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionToggleMenu:
		return m, m.menu.Toggle()
	case keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	if m.menu.CapturesInput() {
		return m, nil
	}

	switch m.keys.Resolve(key) {
	case keymap.ActionScrollUp:
		m.page.ScrollUp(1)
	case keymap.ActionScrollDown:
		m.page.ScrollDown(1)
	case keymap.ActionPageUp:
		m.page.ScrollUp(max(m.page.Height-1, 1))
	case keymap.ActionPageDown:
		m.page.ScrollDown(max(m.page.Height-1, 1))
	}
	return m, nil
}

// handleMouse always lets the menu see the pointer so the toggle can track
// hover. The page only gets events the menu did not claim.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	claimed := m.menu.CapturesInput() || m.menu.HitTest(msg.X, msg.Y)
	_, cmd := m.menu.Update(msg)
	if claimed {
		return m, cmd
	}
	var pageCmd tea.Cmd
	m.page, pageCmd = m.page.Update(msg)
	return m, tea.Batch(cmd, pageCmd)
}

func (m Model) handleMenuAction(a action.Action) {
	switch a := a.(type) {
	case menu.Opened:
		m.log.Debug("menu opened", zap.Int("opens", m.status.Opens()))
	case menu.Closed:
		m.log.Debug("menu closed")
	case menu.Selected:
		m.log.Info("item selected", zap.Int("index", a.Index), zap.String("label", a.Label))
	case menu.SocialSelected:
		m.log.Info("link selected", zap.Int("index", a.Index), zap.String("label", a.Label))
	}
}

func (m Model) navigate(id string) (tea.Model, tea.Cmd) {
	r, ok := m.route(id)
	if !ok {
		m.status.SetError(errmsg.FormatWith(errmsg.OpNavigate, id, errUnknownRoute))
		return m, nil
	}
	m.current = r.ID
	m.menu.SetItems(m.items())
	m.renderPage()
	m.page.GotoTop()
	m.status.SetMessage("")
	m.log.Debug("navigated", zap.String("route", r.ID))
	return m, nil
}

func (m Model) handleReload(msg config.ReloadedMsg) (tea.Model, tea.Cmd) {
	next := m.waitForReload()
	if msg.Err != nil {
		m.status.SetError(errmsg.Format(errmsg.OpConfigReload, msg.Err))
		return m, next
	}
	m.apply(msg.Config)
	m.status.SetMessage("Config reloaded")
	return m, next
}

// apply swaps in a new configuration. The menu reconfigures its animation
// only when the resolved theme actually changed.
func (m *Model) apply(cfg *config.Config) {
	m.cfg = cfg
	m.routes = slices.Clone(cfg.Routes)
	if _, ok := m.route(m.current); !ok {
		m.current = cfg.CurrentRoute
	}

	m.menu.SetTheme(cfg.ResolveTheme())
	m.menu.SetPosition(m.menuPosition(cfg))
	m.menu.SetHeader(cfg.Header)
	m.menu.SetItems(m.items())
	m.menu.SetSocials(socials(cfg.Socials))

	m.pages.Reset()
	m.renderPage()
}
