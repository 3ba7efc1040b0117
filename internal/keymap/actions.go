// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionToggleMenu Action = "toggle_menu"
	ActionHelp       Action = "help"

	// Menu actions, active while the menu holds input
	ActionClose     Action = "close"      // esc
	ActionFocusNext Action = "focus_next" // tab
	ActionFocusPrev Action = "focus_prev" // shift+tab
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionSelect    Action = "select" // enter/space - activate focused element

	// Page actions
	ActionScrollUp   Action = "scroll_up"
	ActionScrollDown Action = "scroll_down"
	ActionPageUp     Action = "page_up"
	ActionPageDown   Action = "page_down"
)
