package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyLabel returns how a key is shown in help text.
func KeyLabel(k string) string {
	switch k {
	case " ":
		return "space"
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return k
}

// HelpBinding converts a binding to a bubbles key binding for help views.
func (b Binding) HelpBinding() key.Binding {
	labels := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		labels[i] = KeyLabel(k)
	}
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(strings.Join(labels, "/"), strings.ToLower(b.Description)),
	)
}

// Help implements help.KeyMap over a set of bindings: the short view shows
// the first binding of each context, the full view one column per context.
type Help struct {
	bindings []Binding
}

// NewHelp builds help for the given contexts.
func NewHelp(contexts ...string) Help {
	return Help{bindings: ByContext(contexts...)}
}

// ShortHelp returns the most important bindings.
func (h Help) ShortHelp() []key.Binding {
	var out []key.Binding
	seen := make(map[string]bool)
	for _, b := range h.bindings {
		if b.Context == ContextGlobal || !seen[b.Context] {
			out = append(out, b.HelpBinding())
			seen[b.Context] = true
		}
	}
	return out
}

// FullHelp returns every binding, grouped by context.
func (h Help) FullHelp() [][]key.Binding {
	var groups [][]key.Binding
	index := make(map[string]int)
	for _, b := range h.bindings {
		i, ok := index[b.Context]
		if !ok {
			i = len(groups)
			index[b.Context] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], b.HelpBinding())
	}
	return groups
}
