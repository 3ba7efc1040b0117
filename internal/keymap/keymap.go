package keymap

// Contexts a binding can belong to.
const (
	ContextGlobal = "global"
	ContextMenu   = "menu"
	ContextPage   = "page"
)

// Binding maps keys to an action within a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings contains every key binding, in help order.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionToggleMenu, []string{"m"}, "Open/close menu", ContextGlobal},
	{ActionHelp, []string{"?"}, "Toggle help", ContextGlobal},

	// Menu
	{ActionClose, []string{"esc"}, "Close menu", ContextMenu},
	{ActionFocusNext, []string{"tab"}, "Next element", ContextMenu},
	{ActionFocusPrev, []string{"shift+tab"}, "Previous element", ContextMenu},
	{ActionMoveUp, []string{"k", "up"}, "Previous item", ContextMenu},
	{ActionMoveDown, []string{"j", "down"}, "Next item", ContextMenu},
	{ActionJumpStart, []string{"g", "home"}, "First item", ContextMenu},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", ContextMenu},
	{ActionSelect, []string{"enter", " "}, "Activate", ContextMenu},

	// Page
	{ActionScrollUp, []string{"k", "up"}, "Scroll up", ContextPage},
	{ActionScrollDown, []string{"j", "down"}, "Scroll down", ContextPage},
	{ActionPageUp, []string{"pgup", "b"}, "Page up", ContextPage},
	{ActionPageDown, []string{"pgdown", "f"}, "Page down", ContextPage},
}

// ByContext returns the bindings belonging to any of the given contexts.
func ByContext(contexts ...string) []Binding {
	var result []Binding
	for _, b := range Bindings {
		for _, c := range contexts {
			if b.Context == c {
				result = append(result, b)
				break
			}
		}
	}
	return result
}
