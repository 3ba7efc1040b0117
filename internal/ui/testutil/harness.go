package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component is the shape shared by the repo's Bubble Tea components:
// Update returns the (possibly new) component and a command.
type Component[T any] interface {
	Update(msg tea.Msg) (T, tea.Cmd)
	View() string
}

// Harness drives a component for tests, collecting the commands it returns.
type Harness[T Component[T]] struct {
	c    T
	cmds []tea.Cmd
}

// NewHarness wraps c.
func NewHarness[T Component[T]](c T) *Harness[T] {
	return &Harness[T]{c: c}
}

// Component returns the current component value.
func (h *Harness[T]) Component() T {
	return h.c
}

// View renders the component.
func (h *Harness[T]) View() string {
	return h.c.View()
}

// Send delivers msg and returns the resulting command.
func (h *Harness[T]) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.c, cmd = h.c.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Press sends the key named like tea.KeyMsg.String() reports it.
func (h *Harness[T]) Press(name string) tea.Cmd {
	return h.Send(Key(name))
}

// Click sends a left-button press at column x, row y.
func (h *Harness[T]) Click(x, y int) tea.Cmd {
	return h.Send(Click(x, y))
}

// Hover sends pointer motion to column x, row y.
func (h *Harness[T]) Hover(x, y int) tea.Cmd {
	return h.Send(Motion(x, y))
}

// Commands returns every non-nil command collected so far.
func (h *Harness[T]) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands forgets collected commands.
func (h *Harness[T]) ClearCommands() {
	h.cmds = nil
}

// ViewContains reports whether the unstyled view contains substr.
func (h *Harness[T]) ViewContains(substr string) bool {
	return ContainsLine(h.View(), substr)
}

var keyNames = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	" ":         tea.KeySpace,
	"space":     tea.KeySpace,
	"ctrl+c":    tea.KeyCtrlC,
}

// Key builds the key message whose String() is name. Unknown names become
// rune input.
func Key(name string) tea.KeyMsg {
	if t, ok := keyNames[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// Click builds a left-button press at column x, row y.
func Click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
}

// Motion builds a pointer motion event at column x, row y.
func Motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionMotion,
		Button: tea.MouseButtonNone,
	}
}

// Exec runs cmd and returns its message, or nil for a nil command.
// Batches are flattened one level; commands inside them are run in order.
// Never pass commands that block, such as a controller wait.
func Exec(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, Exec(c)...)
	}
	return msgs
}
