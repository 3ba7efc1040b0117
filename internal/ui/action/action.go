// Package action defines the envelope components use to notify the host.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a component reports. ActionType names it for logs.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that raised it.
type Msg struct {
	Source string // component name: "menu", "toggle", ...
	Action Action
}

var _ tea.Msg = Msg{}

// Emit returns a command delivering a as a Msg from source.
func Emit(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
