package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// NavigateCmd returns a command that asks the host to show route id.
func NavigateCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{ID: id}
	}
}

// LinkCmd returns a command reporting an activated social link.
func LinkCmd(label, url string) tea.Cmd {
	return func() tea.Msg {
		return LinkMsg{Label: label, URL: url}
	}
}

func (m Model) waitForReload() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Wait()
}
