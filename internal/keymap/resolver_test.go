package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
		{ActionSelect, []string{"enter", " "}, "Activate", ContextMenu},
		{ActionMoveUp, []string{"k", "up"}, "Previous item", ContextMenu},
		{ActionMoveDown, []string{"j", "down"}, "Next item", ContextMenu},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionSelect},
		{"enter", ActionSelect},
		{"k", ActionMoveUp},
		{"up", ActionMoveUp},
		{"j", ActionMoveDown},
		{"down", ActionMoveDown},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.Resolve(tt.key); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestResolver_LaterBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionScrollDown, []string{"j"}, "Scroll down", ContextPage},
		{ActionMoveDown, []string{"j"}, "Next item", ContextMenu},
	})
	if got := r.Resolve("j"); got != ActionMoveDown {
		t.Errorf("Resolve(j) = %q, want %q", got, ActionMoveDown)
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionClose, []string{"esc"}, "Close menu", ContextMenu},
		{ActionClose, []string{"esc", "q"}, "Close menu", ContextMenu},
	})

	keys := r.KeysFor(ActionClose)
	if !slices.Equal(keys, []string{"esc", "q"}) {
		t.Errorf("KeysFor(close) = %v, want [esc q]", keys)
	}
	if r.KeysFor(ActionHelp) != nil {
		t.Error("unbound action should have no keys")
	}
}

func TestMenuResolver(t *testing.T) {
	r := MenuResolver()

	tests := map[string]Action{
		"esc":       ActionClose,
		"tab":       ActionFocusNext,
		"shift+tab": ActionFocusPrev,
		"enter":     ActionSelect,
		" ":         ActionSelect,
		"j":         ActionMoveDown,
		"m":         "",
	}
	for key, want := range tests {
		if got := r.Resolve(key); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestResolver_Handles(t *testing.T) {
	r := MenuResolver()
	if !r.Handles("esc") {
		t.Error("menu resolver should handle esc")
	}
	if r.Handles("?") {
		t.Error("menu resolver should not handle the global help key")
	}
}
